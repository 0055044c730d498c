package meshio

import (
	"fmt"

	"github.com/qmuntal/gltf"

	"wireframe/internal/geom"
)

// edgeSet collects unordered edges without duplicates, in first-seen order.
type edgeSet struct {
	seen map[geom.Edge]struct{}
	list []geom.Edge
}

func newEdgeSet() *edgeSet {
	return &edgeSet{seen: make(map[geom.Edge]struct{})}
}

func (s *edgeSet) add(a, b int) {
	if a == b {
		return
	}
	if a > b {
		a, b = b, a
	}
	e := geom.Edge{a, b}
	if _, ok := s.seen[e]; ok {
		return
	}
	s.seen[e] = struct{}{}
	s.list = append(s.list, e)
}

func (s *edgeSet) addPrimitive(mode gltf.PrimitiveMode, indices []uint32, base int) error {
	at := func(i int) int { return base + int(indices[i]) }
	n := len(indices)

	switch mode {
	case gltf.PrimitiveTriangles:
		for i := 0; i+2 < n; i += 3 {
			s.add(at(i), at(i+1))
			s.add(at(i+1), at(i+2))
			s.add(at(i+2), at(i))
		}
	case gltf.PrimitiveTriangleStrip:
		for i := 0; i+2 < n; i++ {
			s.add(at(i), at(i+1))
			s.add(at(i+1), at(i+2))
			s.add(at(i+2), at(i))
		}
	case gltf.PrimitiveTriangleFan:
		for i := 1; i+1 < n; i++ {
			s.add(at(0), at(i))
			s.add(at(i), at(i+1))
			s.add(at(i+1), at(0))
		}
	case gltf.PrimitiveLines:
		for i := 0; i+1 < n; i += 2 {
			s.add(at(i), at(i+1))
		}
	case gltf.PrimitiveLineStrip, gltf.PrimitiveLineLoop:
		for i := 0; i+1 < n; i++ {
			s.add(at(i), at(i+1))
		}
		if mode == gltf.PrimitiveLineLoop && n > 2 {
			s.add(at(n-1), at(0))
		}
	case gltf.PrimitivePoints:
		// points carry no edges
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedPrimitive, mode)
	}
	return nil
}
