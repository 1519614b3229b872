// internal/feedback/code.go
//
// Feedback codes: the per-position marks a guess receives against a solution.
// Defines:
//   - Mark: Absent / Present / Exact.
//   - Code: one Mark per letter, usable as a map key or packed to an index.
//
// Textual form (one char per mark):
//   .  absent   (also accepted: - _)
//   y  present, wrong place (Y accepted)
//   G  exact, right place   (g accepted)

package feedback

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/guesser/internal/words"
)

// Mark is the evaluation of a single guess letter.
type Mark uint8

const (
	Absent  Mark = iota // letter not available in the solution
	Present             // letter in the solution, different position
	Exact               // letter in the solution at this position
)

// NumCodes is the number of distinct codes (3^Length).
const NumCodes = 243

// Code is an ordered sequence of marks aligned to the guess letters.
type Code [words.Length]Mark

// AllExact is the code of a guess equal to the solution.
var AllExact = Code{Exact, Exact, Exact, Exact, Exact}

func (m Mark) Rune() rune {
	switch m {
	case Exact:
		return 'G'
	case Present:
		return 'y'
	default:
		return '.'
	}
}

func (m Mark) String() string {
	switch m {
	case Exact:
		return "exact"
	case Present:
		return "present"
	default:
		return "absent"
	}
}

// String renders c as ".y.GG".
func (c Code) String() string {
	var b strings.Builder
	b.Grow(words.Length)
	for _, m := range c {
		b.WriteRune(m.Rune())
	}
	return b.String()
}

// Solved reports whether every mark is Exact.
func (c Code) Solved() bool { return c == AllExact }

// Index packs c as a base-3 number with the first letter in the lowest digit.
func (c Code) Index() int {
	n, mult := 0, 1
	for _, m := range c {
		n += int(m) * mult
		mult *= 3
	}
	return n
}

// FromIndex is the inverse of Code.Index. Out-of-range input is reduced
// modulo NumCodes.
func FromIndex(n int) Code {
	var c Code
	n %= NumCodes
	if n < 0 {
		n += NumCodes
	}
	for i := range c {
		c[i] = Mark(n % 3)
		n /= 3
	}
	return c
}

// Parse reads a textual code such as ".y.GG".
// Length or symbol errors wrap words.ErrInputMismatch.
func Parse(s string) (Code, error) {
	var c Code
	s = strings.TrimSpace(s)
	if len(s) != words.Length {
		return c, fmt.Errorf("%w: score %q must be exactly %d characters", words.ErrInputMismatch, s, words.Length)
	}
	for i := 0; i < words.Length; i++ {
		switch s[i] {
		case '.', '-', '_':
			c[i] = Absent
		case 'y', 'Y':
			c[i] = Present
		case 'g', 'G':
			c[i] = Exact
		default:
			return c, fmt.Errorf("%w: score %q has unknown symbol %q", words.ErrInputMismatch, s, s[i])
		}
	}
	return c, nil
}
