package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Edge joins two vertices by index.
type Edge [2]int

// Body is a rigid wireframe mesh. Vertices are absolute world positions;
// location is the body's reference point and need not be the vertex centroid.
type Body struct {
	name        string
	vertices    []mgl64.Vec3
	edges       []Edge
	location    mgl64.Vec3
	frame       Frame
	axesVisible bool
}

// NewBody validates the buffers and builds a body whose local frame is the
// canonical basis placed at location. The slices are copied.
func NewBody(name string, vertices []mgl64.Vec3, edges []Edge, location mgl64.Vec3) (*Body, error) {
	if !finite(location) {
		return nil, fmt.Errorf("body %q location: %w", name, ErrNonFinite)
	}
	for i, v := range vertices {
		if !finite(v) {
			return nil, fmt.Errorf("body %q vertex %d: %w", name, i, ErrNonFinite)
		}
	}
	for i, e := range edges {
		for _, idx := range e {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("body %q edge %d (%d-%d) with %d vertices: %w",
					name, i, e[0], e[1], len(vertices), ErrEdgeOutOfRange)
			}
		}
		if e[0] == e[1] {
			return nil, fmt.Errorf("body %q edge %d (%d-%d): %w", name, i, e[0], e[1], ErrDegenerateEdge)
		}
	}

	return &Body{
		name:     name,
		vertices: append([]mgl64.Vec3(nil), vertices...),
		edges:    append([]Edge(nil), edges...),
		location: location,
		frame:    FrameAt(location),
	}, nil
}

func (b *Body) Name() string { return b.name }

// Vertices returns the live vertex buffer. Callers must not modify it.
func (b *Body) Vertices() []mgl64.Vec3 { return b.vertices }

// Edges returns the live edge list. Callers must not modify it.
func (b *Body) Edges() []Edge { return b.edges }

func (b *Body) Location() mgl64.Vec3 { return b.location }

func (b *Body) Frame() Frame { return b.frame }

func (b *Body) AxesVisible() bool { return b.axesVisible }

func (b *Body) SetAxesVisible(visible bool) { b.axesVisible = visible }

// Rotate turns every vertex, the location and the local frame by angle
// radians around axis through pivot. A zero axis is a no-op.
func (b *Body) Rotate(pivot, axis mgl64.Vec3, angle float64) {
	q, ok := Rotation(axis, angle)
	if !ok {
		return
	}
	for i, v := range b.vertices {
		b.vertices[i] = RotateAbout(q, pivot, v)
	}
	b.location = RotateAbout(q, pivot, b.location)
	b.frame.rotate(q, pivot)
}

// Translate moves every vertex, the location and the local frame distance
// units along direction. A zero direction is a no-op.
func (b *Body) Translate(direction mgl64.Vec3, distance float64) {
	delta, ok := Step(direction, distance)
	if !ok {
		return
	}
	for i, v := range b.vertices {
		b.vertices[i] = v.Add(delta)
	}
	b.location = b.location.Add(delta)
	b.frame.Translate(direction, distance)
}

// Clone returns a deep copy that shares no buffers with b.
func (b *Body) Clone() *Body {
	c := *b
	c.vertices = append([]mgl64.Vec3(nil), b.vertices...)
	c.edges = append([]Edge(nil), b.edges...)
	return &c
}

// offset moves the raw geometry by delta without touching the frame
// orientation. Factories use it to place vertices given relative to the origin.
func (b *Body) offset(delta mgl64.Vec3) {
	for i, v := range b.vertices {
		b.vertices[i] = v.Add(delta)
	}
}
