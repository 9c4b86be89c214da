package simio

import (
	"strconv"
	"strings"
)

// Position file column layout, 0-indexed after whitespace splitting.
const (
	posFieldID   = 0 // external id, ignored: node ids are assigned by parse order
	posFieldX    = 1
	posFieldY    = 2
	posFieldZ    = 3
	posFieldArea = 4

	posMinFields = 5
)

// areaPrefixSep separates the textual prefix from the numeric area id in
// compound labels such as "area_7".
const areaPrefixSep = "_"

// PositionRecord is one parsed line of a positions file.
type PositionRecord struct {
	X, Y, Z float64
	Area    int // populated only when area extraction was requested
}

// ParsePositions reads a positions file into parse-order records. The record
// at index i becomes node i downstream, so the returned order is exactly the
// file order of non-comment lines.
//
// Lines whose first byte is '#' are skipped. Every other line must carry at
// least five whitespace-separated fields: external id, x, y, z, and a
// compound area label. The external id field is ignored. The area label is
// only consumed when withAreas is true.
//
// The first malformed line aborts the whole parse with a ParseError.
func ParsePositions(path string, withAreas bool) ([]PositionRecord, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	var records []PositionRecord
	for i, line := range lines {
		if isComment(line) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < posMinFields {
			return nil, parseError(path, i+1, "", ErrMalformedLine)
		}

		var rec PositionRecord
		coords := []*float64{&rec.X, &rec.Y, &rec.Z}
		for j, dst := range coords {
			token := fields[posFieldX+j]
			v, err := strconv.ParseFloat(token, 64)
			if err != nil {
				return nil, parseError(path, i+1, token, ErrBadCoordinate)
			}
			*dst = v
		}

		if withAreas {
			area, err := parseAreaLabel(fields[posFieldArea])
			if err != nil {
				return nil, parseError(path, i+1, fields[posFieldArea], err)
			}
			rec.Area = area
		}

		records = append(records, rec)
	}
	return records, nil
}

// parseAreaLabel extracts the integer from a compound label of the form
// "<prefix>_<int>". It is the left-inverse of formatting: "area_7" yields 7.
func parseAreaLabel(label string) (int, error) {
	parts := strings.Split(label, areaPrefixSep)
	if len(parts) < 2 {
		return 0, ErrBadAreaLabel
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, ErrBadAreaLabel
	}
	return n, nil
}
