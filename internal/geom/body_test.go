package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func distances(b *Body) []float64 {
	vs := b.Vertices()
	var out []float64
	for i := range vs {
		out = append(out, vs[i].Sub(b.Location()).Len())
		for j := i + 1; j < len(vs); j++ {
			out = append(out, vs[i].Sub(vs[j]).Len())
		}
	}
	return out
}

func TestNewBody_Validation(t *testing.T) {
	verts := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	tests := []struct {
		name    string
		verts   []mgl64.Vec3
		edges   []Edge
		loc     mgl64.Vec3
		wantErr error
	}{
		{name: "valid", verts: verts, edges: []Edge{{0, 1}, {1, 2}, {2, 0}}},
		{name: "no geometry", verts: nil, edges: nil},
		{name: "index past end", verts: verts, edges: []Edge{{0, 3}}, wantErr: ErrEdgeOutOfRange},
		{name: "negative index", verts: verts, edges: []Edge{{-1, 2}}, wantErr: ErrEdgeOutOfRange},
		{name: "edges without vertices", verts: nil, edges: []Edge{{0, 1}}, wantErr: ErrEdgeOutOfRange},
		{name: "self loop", verts: verts, edges: []Edge{{1, 1}}, wantErr: ErrDegenerateEdge},
		{name: "nan vertex", verts: []mgl64.Vec3{{math.NaN(), 0, 0}}, wantErr: ErrNonFinite},
		{name: "infinite location", verts: verts, loc: mgl64.Vec3{math.Inf(1), 0, 0}, wantErr: ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBody(tt.name, tt.verts, tt.edges, tt.loc)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.verts), len(b.Vertices()))
			assert.Equal(t, FrameAt(tt.loc), b.Frame())
		})
	}
}

func TestNewBody_CopiesBuffers(t *testing.T) {
	verts := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}}
	b, err := NewBody("segment", verts, []Edge{{0, 1}}, mgl64.Vec3{})
	require.NoError(t, err)

	verts[1] = mgl64.Vec3{9, 9, 9}
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, b.Vertices()[1])
}

func TestBody_Rigidity(t *testing.T) {
	for _, b := range PlatonicSolids(50) {
		t.Run(b.Name(), func(t *testing.T) {
			want := distances(b)
			axes := []mgl64.Vec3{UnitX, {1, 1, 0}, {0, -2, 5}, UnitZ}
			dirs := []mgl64.Vec3{UnitY, {-1, 0, 1}, {3, 2, 1}}
			for i := 0; i < 3000; i++ {
				pivot := b.Location()
				if i%2 == 1 {
					pivot = mgl64.Vec3{}
				}
				b.Rotate(pivot, axes[i%len(axes)], 0.05)
				b.Translate(dirs[i%len(dirs)], 5)
			}
			got := distances(b)
			require.Len(t, got, len(want))
			for i := range want {
				assert.InDelta(t, want[i], got[i], 1e-6)
			}
			assert.InDelta(t, 0, b.Frame().Location.Sub(b.Location()).Len(), 1e-6)
		})
	}
}

func TestBody_Identities(t *testing.T) {
	b := Cube(50, mgl64.Vec3{10, 20, 30})
	before := b.Clone()

	b.Rotate(mgl64.Vec3{100, 0, 0}, mgl64.Vec3{}, 2.5)
	assert.Equal(t, before.Vertices(), b.Vertices())
	assert.Equal(t, before.Frame(), b.Frame())

	b.Translate(mgl64.Vec3{}, 42)
	assert.Equal(t, before.Vertices(), b.Vertices())
	assert.Equal(t, before.Location(), b.Location())
}

func TestBody_Invertibility(t *testing.T) {
	b := Icosahedron(40, mgl64.Vec3{-50, 20, 100})
	before := b.Clone()
	pivot := mgl64.Vec3{7, -3, 11}
	axis := mgl64.Vec3{1, 2, -1}

	b.Rotate(pivot, axis, 0.9)
	b.Rotate(pivot, axis, -0.9)

	for i, v := range b.Vertices() {
		assertVec(t, before.Vertices()[i], v, 1e-9)
	}
	assertVec(t, before.Location(), b.Location(), 1e-9)
	assert.True(t, before.Frame().ApproxEqual(b.Frame(), 1e-9))
}

func TestBody_RotateAboutOwnLocation(t *testing.T) {
	b := Cube(50, mgl64.Vec3{0, 0, 100})
	for _, axis := range []mgl64.Vec3{UnitX, UnitY, UnitZ, {1, -1, 2}} {
		b.Rotate(b.Location(), axis, 0.7)
		assertVec(t, mgl64.Vec3{0, 0, 100}, b.Location(), 1e-9)
	}
}

func TestBody_RotateAboutSharedPivot(t *testing.T) {
	b := Tetrahedron(50, mgl64.Vec3{200, 0, 100})
	b.Rotate(mgl64.Vec3{}, UnitZ, math.Pi/2)

	assertVec(t, mgl64.Vec3{0, 200, 100}, b.Location(), 1e-9)
	assertVec(t, mgl64.Vec3{0, 200, 100}, b.Frame().Location, 1e-9)
	assertVec(t, UnitY, b.Frame().X, 1e-9)
	// first vertex starts at location + (50, 50, 50)
	assertVec(t, mgl64.Vec3{-50, 250, 150}, b.Vertices()[0], 1e-9)
}

func TestBody_Clone(t *testing.T) {
	b := Octahedron(10, mgl64.Vec3{1, 2, 3})
	c := b.Clone()
	c.Translate(UnitX, 5)
	c.SetAxesVisible(true)

	assert.Equal(t, mgl64.Vec3{1, 2, 3}, b.Location())
	assert.Equal(t, mgl64.Vec3{11, 2, 3}, b.Vertices()[0])
	assert.False(t, b.AxesVisible())
	assert.Equal(t, mgl64.Vec3{6, 2, 3}, c.Location())
}
