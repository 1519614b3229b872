package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testConfig(t *testing.T) config {
	t.Helper()
	dir := t.TempDir()
	sols := filepath.Join(dir, "solutions.txt")
	guesses := filepath.Join(dir, "guesses.txt")
	if err := os.WriteFile(sols, []byte("abbey\nalley\namity\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(guesses, []byte("caddy\ncrane\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := loadConfig()
	cfg.Words.SolutionsFile = sols
	cfg.Words.GuessesFile = guesses
	cfg.Workers = 2
	cfg.NoColor = true
	cfg.CachePath = ""
	return cfg
}

func run(t *testing.T, cfg config, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(cfg)
	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestScoreCommand(t *testing.T) {
	out, err := run(t, testConfig(t), "", "score", "CADDY", "abbey")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if strings.TrimSpace(out) != ".y..G  .a..Y" {
		t.Errorf("score output = %q", out)
	}
	if _, err := run(t, testConfig(t), "", "score", "cad", "abbey"); err == nil {
		t.Error("score accepted a short word")
	}
}

func TestPlayCommand(t *testing.T) {
	out, err := run(t, testConfig(t), "", "play", "amity")
	if err != nil {
		t.Fatalf("play: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Solved amity in") {
		t.Errorf("play output:\n%s", out)
	}
}

func TestPlayCommandWordOfTheDay(t *testing.T) {
	out, err := run(t, testConfig(t), "", "play", "--date", "2026-10-19")
	if err != nil {
		t.Fatalf("play: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Solved ") {
		t.Errorf("play output:\n%s", out)
	}
	if _, err := run(t, testConfig(t), "", "play", "--date", "19/10/2026"); err == nil {
		t.Error("play accepted a malformed date")
	}
}

func TestInteractiveSolves(t *testing.T) {
	out, err := run(t, testConfig(t), "alley\nG..GG\n")
	if err != nil {
		t.Fatalf("interactive: %v", err)
	}
	if !strings.Contains(out, "The word is: abbey") {
		t.Errorf("interactive output:\n%s", out)
	}
}

func TestInteractiveContradiction(t *testing.T) {
	_, err := run(t, testConfig(t), "amity\nG...G\nabbey\n.....\n")
	if !errors.Is(err, errContradiction) {
		t.Errorf("interactive error = %v, want errContradiction", err)
	}
}

func TestInteractiveHardModeWithSQLiteCache(t *testing.T) {
	cfg := testConfig(t)
	cfg.CachePath = filepath.Join(t.TempDir(), "rankings.db")
	for i := 0; i < 2; i++ {
		out, err := run(t, cfg, "amity\nG...G\nalley\nG..GG\n", "--hard")
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if !strings.Contains(out, "The word is: abbey") {
			t.Errorf("run %d output:\n%s", i, out)
		}
	}
}
