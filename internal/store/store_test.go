package store

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/robalobadob/wordle/apps/guesser/internal/solver"
	"github.com/robalobadob/wordle/apps/guesser/internal/words"
)

func sampleRanking(t *testing.T) []solver.GuessStats {
	t.Helper()
	list := words.MustParseAll("abbey", "alley", "amity", "caddy", "crane", "slate")
	stats, err := (&solver.Ranker{Workers: 2}).Rank(list, solver.NewCandidates(list[:4]))
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	return stats
}

func exerciseCache(t *testing.T, c solver.Cache) {
	t.Helper()
	ctx := context.Background()
	want := sampleRanking(t)

	if _, ok, err := c.Load(ctx, "missing"); err != nil || ok {
		t.Fatalf("Load(missing) = %v, %v", ok, err)
	}
	if err := c.Save(ctx, "k1", want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, ok, err := c.Load(ctx, "k1")
	if err != nil || !ok {
		t.Fatalf("Load(k1) = %v, %v", ok, err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Load(k1) = %+v\nwant %+v", got, want)
	}

	// Overwrite with a shorter ranking.
	if err := c.Save(ctx, "k1", want[:2]); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, _, _ = c.Load(ctx, "k1")
	if len(got) != 2 {
		t.Errorf("Load after overwrite len = %d, want 2", len(got))
	}
}

func TestMemoryCache(t *testing.T) {
	exerciseCache(t, NewMemory())
}

func TestMemoryCacheCopies(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	stats := sampleRanking(t)
	first := stats[0].Guess
	if err := c.Save(ctx, "k", stats); err != nil {
		t.Fatalf("Save: %v", err)
	}
	stats[0].Guess = words.MustParse("zzzzz")
	got, _, _ := c.Load(ctx, "k")
	if got[0].Guess != first {
		t.Errorf("stored entry aliased caller slice")
	}
}

func TestSQLiteCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "rankings.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	exerciseCache(t, db)
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopening re-runs migrations as no-ops and keeps the data.
	db, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()
	got, ok, err := db.Load(context.Background(), "k1")
	if err != nil || !ok || len(got) != 2 {
		t.Errorf("Load after reopen = %d entries, %v, %v", len(got), ok, err)
	}
}
