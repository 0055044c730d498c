package scene

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl64"

	"wireframe/internal/geom"
)

// Digest hashes the complete scene state. Two worlds with bit-identical
// geometry, frames, mode and axes flag have equal digests.
func (w *World) Digest() uint64 {
	h := xxhash.New()
	var buf [8]byte

	putVec := func(v mgl64.Vec3) {
		for _, c := range v {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(c))
			_, _ = h.Write(buf[:])
		}
	}
	putFrame := func(f geom.Frame) {
		for _, v := range f.Basis() {
			putVec(v)
		}
		putVec(f.Location)
	}

	_, _ = h.Write([]byte{byte(w.mode), boolByte(w.axesVisible)})
	putFrame(w.frame)
	for _, b := range w.bodies {
		_, _ = h.WriteString(b.Name())
		putVec(b.Location())
		putFrame(b.Frame())
		for _, v := range b.Vertices() {
			putVec(v)
		}
		for _, e := range b.Edges() {
			binary.LittleEndian.PutUint64(buf[:], uint64(e[0])<<32|uint64(uint32(e[1])))
			_, _ = h.Write(buf[:])
		}
	}
	return h.Sum64()
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
