package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Frame is an orientation basis plus a location. The world and every body
// each own their own Frame value.
type Frame struct {
	X, Y, Z  mgl64.Vec3
	Location mgl64.Vec3
}

// DefaultFrame is the canonical frame: +X, +Y, +Z at the origin.
func DefaultFrame() Frame {
	return Frame{X: UnitX, Y: UnitY, Z: UnitZ}
}

// NewFrame builds a frame from an explicit basis and location. The basis is
// stored as given; it is not normalized.
func NewFrame(x, y, z, location mgl64.Vec3) Frame {
	return Frame{X: x, Y: y, Z: z, Location: location}
}

// FrameAt is the canonical basis placed at location.
func FrameAt(location mgl64.Vec3) Frame {
	return Frame{X: UnitX, Y: UnitY, Z: UnitZ, Location: location}
}

// Rotate turns the frame by angle radians around axis through pivot. The
// basis vectors are directions and ignore the pivot. A zero axis is a no-op.
func (f *Frame) Rotate(pivot, axis mgl64.Vec3, angle float64) {
	q, ok := Rotation(axis, angle)
	if !ok {
		return
	}
	f.rotate(q, pivot)
}

func (f *Frame) rotate(q mgl64.Quat, pivot mgl64.Vec3) {
	f.X = q.Rotate(f.X)
	f.Y = q.Rotate(f.Y)
	f.Z = q.Rotate(f.Z)
	f.Location = RotateAbout(q, pivot, f.Location)
}

// Translate moves the location distance units along direction. A zero
// direction is a no-op. The basis is unaffected.
func (f *Frame) Translate(direction mgl64.Vec3, distance float64) {
	delta, ok := Step(direction, distance)
	if !ok {
		return
	}
	f.Location = f.Location.Add(delta)
}

// Basis returns the three basis vectors in x, y, z order.
func (f Frame) Basis() [3]mgl64.Vec3 {
	return [3]mgl64.Vec3{f.X, f.Y, f.Z}
}

// ApproxEqual reports whether every component of f is within threshold of
// the matching component of o. The comparison is absolute.
func (f Frame) ApproxEqual(o Frame, threshold float64) bool {
	return near(f.X, o.X, threshold) &&
		near(f.Y, o.Y, threshold) &&
		near(f.Z, o.Z, threshold) &&
		near(f.Location, o.Location, threshold)
}

func near(a, b mgl64.Vec3, threshold float64) bool {
	for i := range a {
		if !(math.Abs(a[i]-b[i]) <= threshold) {
			return false
		}
	}
	return true
}
