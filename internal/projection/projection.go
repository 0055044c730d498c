// Package projection maps world points onto the 2D drawing surface.
package projection

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is a position on the drawing surface, in pixels from the top-left.
type Point struct {
	X, Y float64
}

// Projector maps a world point onto a viewport of the given size. The size
// is passed on every call so a resized window takes effect on the next frame.
type Projector interface {
	Project(p mgl64.Vec3, width, height float64) Point
}

// Func adapts a plain function to Projector.
type Func func(p mgl64.Vec3, width, height float64) Point

func (f Func) Project(p mgl64.Vec3, width, height float64) Point {
	return f(p, width, height)
}

// Orthographic drops z and centres the origin in the viewport.
func Orthographic(p mgl64.Vec3, width, height float64) Point {
	return Point{X: p.X() + width/2, Y: p.Y() + height/2}
}

// WeakPerspective scales a point by its distance from the origin over its
// depth. Points with no depth are drawn orthographically.
type WeakPerspective struct{}

func (WeakPerspective) Project(p mgl64.Vec3, width, height float64) Point {
	if math.Abs(p.Z()) > 1e-9 {
		p = p.Mul(p.Len() / p.Z())
	}
	return Orthographic(p, width, height)
}

// Perspective divides by depth measured from a viewer sitting ViewerDistance
// in front of the z = 0 plane. Points at or behind the viewer are culled:
// they project to Culled.
// FOV is a scale factor (e.g. 200-400), not an angle.
type Perspective struct {
	FOV            float64
	ViewerDistance float64
}

// Culled is the point returned for positions that cannot be projected.
var Culled = Point{X: math.Inf(1), Y: math.Inf(1)}

// Visible reports whether p is a finite surface position.
func (p Point) Visible() bool {
	return !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0) && !math.IsNaN(p.X) && !math.IsNaN(p.Y)
}

func (c Perspective) Project(p mgl64.Vec3, width, height float64) Point {
	depth := c.ViewerDistance + p.Z()
	if depth <= 1e-9 {
		return Culled
	}
	factor := c.FOV / depth
	return Point{X: p.X()*factor + width/2, Y: p.Y()*factor + height/2}
}

// Names lists the strategies ByName understands.
var Names = []string{"orthographic", "weak", "perspective"}

// ByName returns the projector registered under name.
func ByName(name string, fov, viewerDistance float64) (Projector, error) {
	switch name {
	case "", "orthographic":
		return Func(Orthographic), nil
	case "weak":
		return WeakPerspective{}, nil
	case "perspective":
		return Perspective{FOV: fov, ViewerDistance: viewerDistance}, nil
	default:
		return nil, fmt.Errorf("unknown projection %q", name)
	}
}
