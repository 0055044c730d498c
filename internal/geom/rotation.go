// Package geom holds the rigid geometry of the viewer: coordinate frames,
// wireframe bodies and the pivot-relative rotation they share.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the tolerance used for the zero-length and unit-length tests.
const Epsilon = 1e-9

var (
	UnitX = mgl64.Vec3{1, 0, 0}
	UnitY = mgl64.Vec3{0, 1, 0}
	UnitZ = mgl64.Vec3{0, 0, 1}
)

// IsZero reports whether v has (near) zero length.
func IsZero(v mgl64.Vec3) bool {
	return v.Len() <= Epsilon
}

// IsUnit reports whether v has (near) unit length.
func IsUnit(v mgl64.Vec3) bool {
	return math.Abs(v.Len()-1) <= Epsilon
}

// Direction normalizes v unless it is zero or already unit length.
func Direction(v mgl64.Vec3) mgl64.Vec3 {
	if IsZero(v) || IsUnit(v) {
		return v
	}
	return v.Normalize()
}

// Rotation builds the unit quaternion turning vectors by angle radians
// around axis. ok is false for a zero axis, in which case no rotation applies.
func Rotation(axis mgl64.Vec3, angle float64) (q mgl64.Quat, ok bool) {
	if IsZero(axis) {
		return mgl64.QuatIdent(), false
	}
	return mgl64.QuatRotate(angle, axis.Normalize()), true
}

// RotateAbout applies q to p around pivot: pivot + q(p - pivot).
func RotateAbout(q mgl64.Quat, pivot, p mgl64.Vec3) mgl64.Vec3 {
	return pivot.Add(q.Rotate(p.Sub(pivot)))
}

// Step returns the displacement of distance along direction. ok is false
// for a zero direction.
func Step(direction mgl64.Vec3, distance float64) (delta mgl64.Vec3, ok bool) {
	if IsZero(direction) {
		return mgl64.Vec3{}, false
	}
	return direction.Normalize().Mul(distance), true
}

func finite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
