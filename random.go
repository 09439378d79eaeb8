package lcsviz

import (
	"math/rand/v2"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomSequence returns n letters drawn uniformly from A–Z.
// A nil r uses the global source.
func RandomSequence(r *rand.Rand, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		var k int
		if r != nil {
			k = r.IntN(len(alphabet))
		} else {
			k = rand.IntN(len(alphabet))
		}
		buf[i] = alphabet[k]
	}
	return string(buf)
}
