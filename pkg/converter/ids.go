package converter

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// IDGenerator produces fresh block ids. The assembler owns its generator, so
// callers can inject a deterministic one for reproducible output.
type IDGenerator func() string

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

// RandomIDs returns a generator of short lowercase alphanumeric ids drawn
// from the process RNG. Collisions are improbable but not guarded against;
// use UUIDs when strict uniqueness matters.
func RandomIDs() IDGenerator {
	return func() string {
		buf := make([]byte, idLength)
		for i := range buf {
			buf[i] = idAlphabet[rand.IntN(len(idAlphabet))]
		}
		return string(buf)
	}
}

// UUIDs returns a collision-resistant generator backed by random UUIDs.
func UUIDs() IDGenerator {
	return uuid.NewString
}

// SequentialIDs returns a deterministic generator producing prefix1, prefix2,
// and so on. Intended for tests and reproducible conversions.
func SequentialIDs(prefix string) IDGenerator {
	var n int
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}
