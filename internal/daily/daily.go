// internal/daily/daily.go
//
// Deterministic "word of the day" selection, used as the self-play target
// when none is given on the command line.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle/apps/guesser/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Target picks the day's word from solutions. ok is false for an empty list.
func Target(date time.Time, salt string, solutions []words.Word) (w words.Word, ok bool) {
	if len(solutions) == 0 {
		return w, false
	}
	return solutions[WordIndex(date, salt, len(solutions))], true
}
