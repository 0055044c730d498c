package geom

import "errors"

var (
	ErrEdgeOutOfRange = errors.New("geom: edge index out of range")
	ErrDegenerateEdge = errors.New("geom: edge joins a vertex to itself")
	ErrNonFinite      = errors.New("geom: non-finite coordinate")
)
