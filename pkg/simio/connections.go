package simio

import (
	"strconv"
	"strings"
)

const connMinFields = 4

// ConnectionFormat selects which columns of a connection file carry the
// adjacency key and value, and how file ids translate to node ids. The
// legacy file families disagree on which column is the key, so the direction
// is always explicit configuration, never inferred from the data.
type ConnectionFormat struct {
	KeyField   int // 0-indexed column holding the adjacency key
	ValueField int // 0-indexed column holding the appended value
	IDOffset   int // subtracted from both parsed ids (files store id+1)
}

// The two legacy connection-file conventions. Out-network files list the
// sending neuron in column 1 and the receiving neuron in column 3;
// in-network files are keyed the other way around.
var (
	OutNetworkFormat = ConnectionFormat{KeyField: 1, ValueField: 3, IDOffset: 1}
	InNetworkFormat  = ConnectionFormat{KeyField: 3, ValueField: 1, IDOffset: 1}
)

// FormatFor returns the connection format matching a network file direction.
func FormatFor(dir Direction) ConnectionFormat {
	if dir == DirectionIn {
		return InNetworkFormat
	}
	return OutNetworkFormat
}

// Adjacency maps a node id to the ordered sequence of node ids it connects
// to. Both the per-key target order and the key order are insertion order,
// so flattening the adjacency is deterministic and reproduces file order.
//
// A key that never appeared in the file is absent, which means "no edges",
// not an error.
type Adjacency struct {
	keys    []int
	targets map[int][]int
}

// NewAdjacency creates an empty adjacency.
func NewAdjacency() *Adjacency {
	return &Adjacency{targets: make(map[int][]int)}
}

// Add appends value to key's target list, creating the list on first use.
func (a *Adjacency) Add(key, value int) {
	if _, ok := a.targets[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.targets[key] = append(a.targets[key], value)
}

// Targets returns the ordered target list for key and whether the key exists.
func (a *Adjacency) Targets(key int) ([]int, bool) {
	t, ok := a.targets[key]
	return t, ok
}

// Keys returns all keys in first-seen order.
func (a *Adjacency) Keys() []int {
	return a.keys
}

// Len returns the number of distinct keys.
func (a *Adjacency) Len() int {
	return len(a.keys)
}

// EdgeCount returns the total number of (key, target) pairs, counting
// parallel entries.
func (a *Adjacency) EdgeCount() int {
	n := 0
	for _, t := range a.targets {
		n += len(t)
	}
	return n
}

// ParseConnections reads a connection file into an adjacency. Lines that are
// blank after trimming, or whose first byte is '#', are skipped. Every other
// line needs at least four whitespace-separated fields; the columns named by
// the format hold 1-based node ids which are shifted by the format's offset.
// Columns other than the key and value columns carry per-synapse metadata
// and are ignored.
//
// Parallel pairs and self-loops are preserved verbatim. The first malformed
// line aborts the whole parse with a ParseError.
func ParseConnections(path string, format ConnectionFormat) (*Adjacency, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	adj := NewAdjacency()
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if isComment(line) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < connMinFields {
			return nil, parseError(path, i+1, "", ErrMalformedLine)
		}
		if format.KeyField >= len(fields) || format.ValueField >= len(fields) {
			return nil, parseError(path, i+1, "", ErrMalformedLine)
		}

		key, err := parseNodeID(fields[format.KeyField], format.IDOffset)
		if err != nil {
			return nil, parseError(path, i+1, fields[format.KeyField], err)
		}
		value, err := parseNodeID(fields[format.ValueField], format.IDOffset)
		if err != nil {
			return nil, parseError(path, i+1, fields[format.ValueField], err)
		}

		adj.Add(key, value)
	}
	return adj, nil
}

func parseNodeID(token string, offset int) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, ErrBadNodeID
	}
	return n - offset, nil
}
