package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Phi is the golden ratio.
var Phi = (1 + math.Sqrt(5)) / 2

// solid builds a hard-coded body; the data is known good so any validation
// failure is a programming error.
func solid(name string, vertices []mgl64.Vec3, edges []Edge, location mgl64.Vec3) *Body {
	b, err := NewBody(name, vertices, edges, location)
	if err != nil {
		panic(err)
	}
	b.offset(location)
	return b
}

// Tetrahedron returns a tetrahedron inscribed in the cube of half-size scale
// centred on location.
func Tetrahedron(scale float64, location mgl64.Vec3) *Body {
	s := scale
	return solid("tetrahedron", []mgl64.Vec3{
		{s, s, s},
		{-s, -s, s},
		{-s, s, -s},
		{s, -s, -s},
	}, []Edge{
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	}, location)
}

// Cube returns an axis-aligned cube of half-size scale centred on location.
func Cube(scale float64, location mgl64.Vec3) *Body {
	s := scale
	return solid("cube", []mgl64.Vec3{
		{s, s, s},
		{s, s, -s},
		{s, -s, s},
		{s, -s, -s},
		{-s, s, s},
		{-s, s, -s},
		{-s, -s, s},
		{-s, -s, -s},
	}, []Edge{
		{0, 1}, {0, 2}, {0, 4},
		{1, 3}, {1, 5},
		{2, 3}, {2, 6},
		{3, 7},
		{4, 5}, {4, 6},
		{5, 7},
		{6, 7},
	}, location)
}

// Octahedron returns an octahedron with vertices scale units along each axis.
func Octahedron(scale float64, location mgl64.Vec3) *Body {
	s := scale
	return solid("octahedron", []mgl64.Vec3{
		{s, 0, 0},
		{-s, 0, 0},
		{0, s, 0},
		{0, -s, 0},
		{0, 0, s},
		{0, 0, -s},
	}, []Edge{
		{0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 4}, {2, 5},
		{3, 4}, {3, 5},
	}, location)
}

func Dodecahedron(scale float64, location mgl64.Vec3) *Body {
	s, a, b := scale, scale/Phi, scale*Phi
	return solid("dodecahedron", []mgl64.Vec3{
		{s, s, s},
		{s, s, -s},
		{s, -s, s},
		{s, -s, -s},
		{-s, s, s},
		{-s, s, -s},
		{-s, -s, s},
		{-s, -s, -s},
		{0, a, b},
		{0, a, -b},
		{0, -a, b},
		{0, -a, -b},
		{a, b, 0},
		{a, -b, 0},
		{-a, b, 0},
		{-a, -b, 0},
		{b, 0, a},
		{b, 0, -a},
		{-b, 0, a},
		{-b, 0, -a},
	}, []Edge{
		{0, 8}, {0, 12}, {0, 16}, {1, 9}, {1, 12}, {1, 17},
		{2, 10}, {2, 13}, {2, 16}, {3, 11}, {3, 13}, {3, 17},
		{4, 8}, {4, 14}, {4, 18}, {5, 9}, {5, 14}, {5, 19},
		{6, 10}, {6, 15}, {6, 18}, {7, 11}, {7, 15}, {7, 19},
		{8, 10}, {9, 11}, {12, 14}, {13, 15}, {16, 17}, {18, 19},
	}, location)
}

func Icosahedron(scale float64, location mgl64.Vec3) *Body {
	s, b := scale, scale*Phi
	return solid("icosahedron", []mgl64.Vec3{
		{0, s, b},
		{0, s, -b},
		{0, -s, b},
		{0, -s, -b},
		{s, b, 0},
		{s, -b, 0},
		{-s, b, 0},
		{-s, -b, 0},
		{b, 0, s},
		{b, 0, -s},
		{-b, 0, s},
		{-b, 0, -s},
	}, []Edge{
		{0, 2}, {0, 4}, {0, 6}, {0, 8}, {0, 10},
		{1, 3}, {1, 4}, {1, 6}, {1, 9}, {1, 11},
		{2, 5}, {2, 7}, {2, 8}, {2, 10},
		{3, 5}, {3, 7}, {3, 9}, {3, 11},
		{4, 6}, {4, 8}, {4, 9},
		{5, 7}, {5, 8}, {5, 9},
		{6, 10}, {6, 11},
		{7, 10}, {7, 11},
		{8, 9},
		{10, 11},
	}, location)
}

// PlatonicSolids is the canonical scene: the five solids laid out in a cross
// on the z = 100 plane.
func PlatonicSolids(scale float64) []*Body {
	return []*Body{
		Cube(scale, mgl64.Vec3{0, 0, 100}),
		Tetrahedron(scale, mgl64.Vec3{200, 0, 100}),
		Octahedron(scale*1.25, mgl64.Vec3{-200, 0, 100}),
		Dodecahedron(scale*0.75, mgl64.Vec3{0, 200, 100}),
		Icosahedron(scale*0.75, mgl64.Vec3{0, -200, 100}),
	}
}
