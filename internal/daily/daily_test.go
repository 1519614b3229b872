package daily

import (
	"testing"
	"time"

	"github.com/robalobadob/wordle/apps/guesser/internal/words"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	d := time.Date(2026, 10, 20, 5, 0, 0, 0, loc)
	if got := DateKey(d); got != "2026-10-19" {
		t.Errorf("DateKey = %s, want 2026-10-19", got)
	}
}

func TestWordIndexDeterministic(t *testing.T) {
	d := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	a := WordIndex(d, "salt", 100)
	if a < 0 || a >= 100 {
		t.Fatalf("WordIndex = %d out of range", a)
	}
	if b := WordIndex(d.Add(time.Hour), "salt", 100); b != a {
		t.Errorf("same day gave %d and %d", a, b)
	}
	if WordIndex(d, "salt", 0) != 0 {
		t.Error("WordIndex with n=0 should be 0")
	}
}

func TestWordIndexVariesWithSaltAndDay(t *testing.T) {
	d := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for i := 0; i < 30; i++ {
		seen[WordIndex(d.AddDate(0, 0, i), "salt", 1000)] = true
	}
	if len(seen) < 20 {
		t.Errorf("only %d distinct indices over 30 days", len(seen))
	}
}

func TestTarget(t *testing.T) {
	list := words.MustParseAll("abbey", "alley", "amity")
	d := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	w, ok := Target(d, "salt", list)
	if !ok || w != list[WordIndex(d, "salt", 3)] {
		t.Errorf("Target = %s, %v", w, ok)
	}
	if _, ok := Target(d, "salt", nil); ok {
		t.Error("Target on empty list reported ok")
	}
}
