package system

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/younwookim/sidescroller/internal/domain/world"
)

// Digest hashes the hitbox of every dynamic entity in list order. Two runs
// fed the same inputs produce the same digest.
func Digest(scene *world.Scene) uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 32)
	for _, e := range scene.Dynamics() {
		if !e.HasHitbox() {
			continue
		}
		b := e.HitBox().Bounds()
		buf = buf[:0]
		for _, v := range []float64{b.X(), b.Y(), b.W(), b.H()} {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
		}
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}
