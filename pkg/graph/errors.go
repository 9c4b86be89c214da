package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrEdgeOutOfRange     = errors.New("edge references node id out of range")
	ErrUnsupportedMapping = errors.New("unsupported mapping mode")
	ErrNoAreas            = errors.New("graph carries no area labels")
	ErrUnknownMapping     = errors.New("unknown mapping mode")
)

// ConsistencyError reports an edge whose endpoint falls outside the known
// node range. Only strict assembly produces it; the legacy pipeline trusted
// the connection file and deferred the failure to the renderer.
type ConsistencyError struct {
	NodeID    int // offending endpoint id
	NodeCount int // valid ids are [0, NodeCount)
	EdgeIndex int // position of the edge in assembly order
}

// Error implements the error interface.
func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("edge %d: node id %d outside [0, %d): %v",
		e.EdgeIndex, e.NodeID, e.NodeCount, ErrEdgeOutOfRange)
}

// Unwrap returns the sentinel for error chain support.
func (e *ConsistencyError) Unwrap() error {
	return ErrEdgeOutOfRange
}
