package solver

import (
	"errors"
	"testing"

	"github.com/robalobadob/wordle/apps/guesser/internal/feedback"
	"github.com/robalobadob/wordle/apps/guesser/internal/words"
)

var testSolutions = []string{
	"abbey", "alley", "amity", "caddy", "cheer", "crane", "slate", "geese",
	"eerie", "llama", "sassy", "fluff", "puppy", "array", "cigar", "shine",
}

func mustCode(t *testing.T, s string) feedback.Code {
	t.Helper()
	c, err := feedback.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return c
}

func TestFilterKeepsMatchingWords(t *testing.T) {
	c := NewCandidates(words.MustParseAll("abbey", "alley", "amity"))
	got := Filter(c, words.MustParse("alley"), mustCode(t, "G..GG"))
	if got.Len() != 1 || !got.Contains(words.MustParse("abbey")) {
		t.Fatalf("Filter = %v, want [abbey]", words.Strings(got.Words()))
	}
	if c.Len() != 3 {
		t.Errorf("input set changed: len %d", c.Len())
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	c := NewCandidates(words.MustParseAll(testSolutions...))
	guess := words.MustParse("slate")
	code := mustCode(t, "...y.")
	once := Filter(c, guess, code)
	twice := Filter(once, guess, code)
	if !once.Equal(twice) {
		t.Errorf("second Filter changed set: %v -> %v", words.Strings(once.Words()), words.Strings(twice.Words()))
	}
}

func TestFilterNeverGrows(t *testing.T) {
	list := words.MustParseAll(testSolutions...)
	c := NewCandidates(list)
	for _, g := range list {
		for _, s := range list {
			code := feedback.Score(g, s)
			got := Filter(c, g, code)
			if got.Len() > c.Len() {
				t.Fatalf("Filter(%s, %s) grew the set", g, code)
			}
			if !got.Contains(s) {
				t.Fatalf("Filter(%s, %s) dropped %s, which produced that code", g, code, s)
			}
			for _, w := range got.Words() {
				if feedback.Score(g, w) != code {
					t.Fatalf("Filter(%s, %s) kept inconsistent %s", g, code, w)
				}
			}
		}
	}
}

func TestFilterEqualSizeOnlyWhenConsistent(t *testing.T) {
	c := NewCandidates(words.MustParseAll("abbey", "alley"))
	// "dough" scores "....." against both.
	if got := Filter(c, words.MustParse("dough"), feedback.Code{}); got.Len() != 2 {
		t.Errorf("Filter len = %d, want 2", got.Len())
	}
	if got := Filter(c, words.MustParse("dough"), mustCode(t, "G....")); got.Len() != 0 {
		t.Errorf("Filter len = %d, want 0", got.Len())
	}
}

func TestFilterTextRejectsMalformedInput(t *testing.T) {
	c := NewCandidates(words.MustParseAll("abbey", "alley"))
	cases := []struct{ guess, code string }{
		{"alle", "G..GG"},
		{"alleys", "G..GG"},
		{"al1ey", "G..GG"},
		{"alley", "G..G"},
		{"alley", "G..GX"},
	}
	for _, tc := range cases {
		got, err := FilterText(c, tc.guess, tc.code)
		if !errors.Is(err, ErrInputMismatch) {
			t.Errorf("FilterText(%q, %q) error = %v, want ErrInputMismatch", tc.guess, tc.code, err)
		}
		if got != nil {
			t.Errorf("FilterText(%q, %q) returned a set on error", tc.guess, tc.code)
		}
	}
	got, err := FilterText(c, " ALLEY ", "g..gg")
	if err != nil {
		t.Fatalf("FilterText: %v", err)
	}
	if got.Len() != 1 {
		t.Errorf("FilterText len = %d, want 1", got.Len())
	}
}

func TestFilterWordsPreservesOrder(t *testing.T) {
	list := words.MustParseAll("slate", "abbey", "crane", "alley")
	got := FilterWords(list, words.MustParse("dough"), feedback.Code{})
	if len(got) != 4 {
		t.Fatalf("FilterWords len = %d, want 4", len(got))
	}
	for i := range list {
		if got[i] != list[i] {
			t.Errorf("FilterWords[%d] = %s, want %s", i, got[i], list[i])
		}
	}
}

func TestNewCandidatesDropsDuplicates(t *testing.T) {
	c := NewCandidates(words.MustParseAll("abbey", "alley", "abbey"))
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
	if c.Contains(words.MustParse("crane")) {
		t.Error("Contains(crane) = true")
	}
}
