package words

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a stable hex digest of the given lists. Lists are
// separated so ([a b], [c]) and ([a], [b c]) hash differently.
func Fingerprint(lists ...[]Word) string {
	h, _ := blake2b.New256(nil) // unkeyed; cannot fail
	for _, list := range lists {
		for _, w := range list {
			_, _ = h.Write(w[:])
		}
		_, _ = h.Write([]byte{'|'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
