package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/robalobadob/wordle/apps/guesser/internal/words"
)

func TestSolveFindsEveryTarget(t *testing.T) {
	for _, target := range testSolutions {
		s := newTestSession(t, testSolutions, nil)
		rounds, err := Solve(context.Background(), s, words.MustParse(target), 6)
		if err != nil {
			t.Fatalf("Solve(%s): %v after %d rounds", target, err, len(rounds))
		}
		last := rounds[len(rounds)-1]
		if last.Guess.String() != target || !last.Code.Solved() {
			t.Errorf("Solve(%s) ended with %s %s", target, last.Guess, last.Code)
		}
	}
}

func TestSolveUnknownTarget(t *testing.T) {
	s := newTestSession(t, []string{"abbey", "alley", "amity"}, nil)
	_, err := Solve(context.Background(), s, words.MustParse("crane"), 6)
	if !errors.Is(err, ErrEmptyCandidateSet) {
		t.Errorf("Solve error = %v, want ErrEmptyCandidateSet", err)
	}
}

func TestSolveRoundLimit(t *testing.T) {
	s := newTestSession(t, testSolutions, nil)
	_, err := Solve(context.Background(), s, words.MustParse("puppy"), 0)
	if !errors.Is(err, ErrRoundLimit) {
		t.Errorf("Solve error = %v, want ErrRoundLimit", err)
	}
}
