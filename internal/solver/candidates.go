// internal/solver/candidates.go
//
// Candidates is the solution-candidate set: the words still consistent with
// every (guess, feedback) pair seen so far.
//
// Representation:
//   - A shared, immutable universe (the starting solution list + index).
//   - A bitset of members over that universe; filtering produces a new
//     bitset, so sets handed to the ranker are never mutated.

package solver

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/robalobadob/wordle/apps/guesser/internal/feedback"
	"github.com/robalobadob/wordle/apps/guesser/internal/words"
)

type universe struct {
	list  []words.Word
	index map[words.Word]uint
}

// Candidates is an immutable set of solution words.
type Candidates struct {
	u    *universe
	bits *bitset.BitSet
}

// NewCandidates returns the set holding every word of list.
// Duplicates in list are kept once.
func NewCandidates(list []words.Word) *Candidates {
	u := &universe{index: make(map[words.Word]uint, len(list))}
	for _, w := range list {
		if _, dup := u.index[w]; dup {
			continue
		}
		u.index[w] = uint(len(u.list))
		u.list = append(u.list, w)
	}
	bits := bitset.New(uint(len(u.list)))
	for i := range u.list {
		bits.Set(uint(i))
	}
	return &Candidates{u: u, bits: bits}
}

// Len is the number of members.
func (c *Candidates) Len() int { return int(c.bits.Count()) }

// Empty reports whether no member remains.
func (c *Candidates) Empty() bool { return c.bits.None() }

// Contains reports whether w is a member.
func (c *Candidates) Contains(w words.Word) bool {
	i, ok := c.u.index[w]
	return ok && c.bits.Test(i)
}

// Words lists the members in starting-list order.
func (c *Candidates) Words() []words.Word {
	out := make([]words.Word, 0, c.Len())
	for i, ok := c.bits.NextSet(0); ok; i, ok = c.bits.NextSet(i + 1) {
		out = append(out, c.u.list[i])
	}
	return out
}

// Equal reports whether c and o hold the same words.
func (c *Candidates) Equal(o *Candidates) bool {
	if c.u == o.u {
		return c.bits.Equal(o.bits)
	}
	if c.Len() != o.Len() {
		return false
	}
	for _, w := range c.Words() {
		if !o.Contains(w) {
			return false
		}
	}
	return true
}

// retain builds the subset of c whose members satisfy keep.
func (c *Candidates) retain(keep func(words.Word) bool) *Candidates {
	bits := bitset.New(c.bits.Len())
	for i, ok := c.bits.NextSet(0); ok; i, ok = c.bits.NextSet(i + 1) {
		if keep(c.u.list[i]) {
			bits.Set(i)
		}
	}
	return &Candidates{u: c.u, bits: bits}
}

// Filter keeps exactly the members w for which Score(guess, w) == observed.
func Filter(c *Candidates, guess words.Word, observed feedback.Code) *Candidates {
	return c.retain(func(w words.Word) bool {
		return feedback.Score(guess, w) == observed
	})
}

// FilterText parses a textual guess and score, then filters. Malformed input
// returns an error wrapping ErrInputMismatch and no set.
func FilterText(c *Candidates, guess, observed string) (*Candidates, error) {
	g, code, err := parsePlay(guess, observed)
	if err != nil {
		return nil, err
	}
	return Filter(c, g, code), nil
}

// FilterWords is Filter for a plain word list (used to narrow the guess list
// in hard mode). Order is preserved.
func FilterWords(list []words.Word, guess words.Word, observed feedback.Code) []words.Word {
	out := make([]words.Word, 0, len(list))
	for _, w := range list {
		if feedback.Score(guess, w) == observed {
			out = append(out, w)
		}
	}
	return out
}

func parsePlay(guess, observed string) (words.Word, feedback.Code, error) {
	g, err := words.Parse(guess)
	if err != nil {
		return g, feedback.Code{}, err
	}
	code, err := feedback.Parse(observed)
	if err != nil {
		return g, code, err
	}
	return g, code, nil
}
