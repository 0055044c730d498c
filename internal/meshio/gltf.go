// Package meshio imports wireframe bodies from glTF 2.0 files.
package meshio

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"wireframe/internal/geom"
)

var (
	ErrNoMesh               = errors.New("meshio: document has no meshes")
	ErrUnsupportedPrimitive = errors.New("meshio: unsupported primitive mode")
	ErrNoPositions          = errors.New("meshio: primitive has no POSITION attribute")
	ErrBadAccessor          = errors.New("meshio: accessor index out of range")
)

// LoadGLTF opens a .gltf or .glb file and returns one body per mesh. See
// Decode for how coordinates are mapped.
func LoadGLTF(path string, scale float64, offset mgl64.Vec3) ([]*geom.Body, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	bodies, err := Decode(doc, scale, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bodies, nil
}

// Decode converts every mesh of doc into a body. Positions are scaled,
// flipped from glTF's y-up into the screen's y-down convention and moved by
// offset, which also becomes the body location. Node transforms are ignored.
// Triangle and line primitives contribute their distinct edges.
func Decode(doc *gltf.Document, scale float64, offset mgl64.Vec3) ([]*geom.Body, error) {
	if len(doc.Meshes) == 0 {
		return nil, ErrNoMesh
	}

	bodies := make([]*geom.Body, 0, len(doc.Meshes))
	for i, mesh := range doc.Meshes {
		name := mesh.Name
		if name == "" {
			name = fmt.Sprintf("mesh%d", i)
		}

		var vertices []mgl64.Vec3
		edges := newEdgeSet()
		for j, prim := range mesh.Primitives {
			base := len(vertices)
			positions, err := readPositions(doc, prim)
			if err != nil {
				return nil, fmt.Errorf("mesh %s primitive %d: %w", name, j, err)
			}
			for _, p := range positions {
				v := mgl64.Vec3{float64(p[0]), -float64(p[1]), float64(p[2])}
				vertices = append(vertices, v.Mul(scale).Add(offset))
			}

			indices, err := readIndices(doc, prim, len(positions))
			if err != nil {
				return nil, fmt.Errorf("mesh %s primitive %d: %w", name, j, err)
			}
			if err := edges.addPrimitive(prim.Mode, indices, base); err != nil {
				return nil, fmt.Errorf("mesh %s primitive %d: %w", name, j, err)
			}
		}

		b, err := geom.NewBody(name, vertices, edges.list, offset)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, b)
	}
	return bodies, nil
}

func readPositions(doc *gltf.Document, prim *gltf.Primitive) ([][3]float32, error) {
	idx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, ErrNoPositions
	}
	acc, err := accessor(doc, idx)
	if err != nil {
		return nil, fmt.Errorf("POSITION: %w", err)
	}
	return modeler.ReadPosition(doc, acc, nil)
}

// readIndices returns the primitive's index buffer, or 0..count-1 for
// non-indexed primitives.
func readIndices(doc *gltf.Document, prim *gltf.Primitive, count int) ([]uint32, error) {
	if prim.Indices == nil {
		out := make([]uint32, count)
		for i := range out {
			out[i] = uint32(i)
		}
		return out, nil
	}
	acc, err := accessor(doc, *prim.Indices)
	if err != nil {
		return nil, fmt.Errorf("indices: %w", err)
	}
	indices, err := modeler.ReadIndices(doc, acc, nil)
	if err != nil {
		return nil, err
	}
	for i, idx := range indices {
		if int(idx) >= count {
			return nil, fmt.Errorf("index %d = %d with %d positions: %w", i, idx, count, geom.ErrEdgeOutOfRange)
		}
	}
	return indices, nil
}

func accessor(doc *gltf.Document, idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("%w: %d of %d", ErrBadAccessor, idx, len(doc.Accessors))
	}
	acc := doc.Accessors[idx]
	if acc == nil {
		return nil, fmt.Errorf("%w: %d is empty", ErrBadAccessor, idx)
	}
	if bv := acc.BufferView; bv != nil {
		if *bv < 0 || *bv >= len(doc.BufferViews) || doc.BufferViews[*bv] == nil {
			return nil, fmt.Errorf("%w: accessor %d buffer view %d", ErrBadAccessor, idx, *bv)
		}
		if buf := doc.BufferViews[*bv].Buffer; buf < 0 || buf >= len(doc.Buffers) {
			return nil, fmt.Errorf("%w: accessor %d buffer %d", ErrBadAccessor, idx, buf)
		}
	}
	return acc, nil
}
