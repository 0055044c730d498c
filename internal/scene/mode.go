package scene

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"wireframe/internal/geom"
)

// Mode selects the pivot used for body rotations and whether the world
// frame moves with the scene.
type Mode uint8

const (
	// Local rotates each body about its own location.
	Local Mode = iota
	// Global rotates every body about the world frame's location.
	Global
	// CoordSystem pivots like Global and also moves the world frame.
	CoordSystem

	numModes
)

var modeNames = [numModes]string{"local", "global", "coord_system"}

func (m Mode) String() string {
	if m < numModes {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode accepts the names printed by String, case-insensitively.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "local":
		return Local, nil
	case "global":
		return Global, nil
	case "coord_system", "coordsystem", "coord":
		return CoordSystem, nil
	}
	return 0, fmt.Errorf("unknown rotation mode %q", name)
}

func (m Mode) pivot(b *geom.Body, world geom.Frame) mgl64.Vec3 {
	if m == Local {
		return b.Location()
	}
	return world.Location
}

func (m Mode) movesWorld() bool { return m == CoordSystem }

func (m Mode) next() Mode { return (m + 1) % numModes }
