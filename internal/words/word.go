// internal/words/word.go
//
// The Word value type shared by the scorer, filter and ranker.
//
// Constraints:
//   • Exactly Length ASCII letters, stored lowercase.
//   • Immutable: a Word is a fixed-size array and copies by value.

package words

import (
	"errors"
	"fmt"
	"strings"
)

// Length is the fixed number of letters in every word.
const Length = 5

// ErrInputMismatch reports a word or feedback code that does not have the
// fixed length or uses a symbol outside its alphabet.
var ErrInputMismatch = errors.New("input mismatch")

// Word is a five-letter lowercase word.
type Word [Length]byte

// Parse normalizes s (trim + lowercase) and validates it as a Word.
func Parse(s string) (Word, error) {
	var w Word
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != Length {
		return w, fmt.Errorf("%w: %q is not exactly %d letters", ErrInputMismatch, s, Length)
	}
	if !isAlpha(s) {
		return w, fmt.Errorf("%w: %q must contain only letters a-z", ErrInputMismatch, s)
	}
	copy(w[:], s)
	return w, nil
}

// MustParse is Parse for literals; it panics on invalid input.
func MustParse(s string) Word {
	w, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return w
}

// MustParseAll parses every string in list with MustParse.
func MustParseAll(list ...string) []Word {
	out := make([]Word, len(list))
	for i, s := range list {
		out[i] = MustParse(s)
	}
	return out
}

func (w Word) String() string { return string(w[:]) }

// Compare orders words lexicographically.
func Compare(a, b Word) int {
	for i := 0; i < Length; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Strings renders a list of words, preserving order.
func Strings(list []Word) []string {
	out := make([]string, len(list))
	for i, w := range list {
		out[i] = w.String()
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
