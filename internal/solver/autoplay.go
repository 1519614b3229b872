package solver

import (
	"context"
	"errors"

	"github.com/robalobadob/wordle/apps/guesser/internal/feedback"
	"github.com/robalobadob/wordle/apps/guesser/internal/words"
)

var (
	// ErrRoundLimit is returned by Solve when the target was not found in time.
	ErrRoundLimit = errors.New("round limit reached")

	errNoGuesses = errors.New("guess list is empty")
)

// Solve plays s against a known target, always taking the top suggestion
// (or the last candidate once solved) and scoring it with feedback.Score.
// It returns the rounds played; on success the last one scores all exact.
func Solve(ctx context.Context, s *Session, target words.Word, maxRounds int) ([]Round, error) {
	for len(s.History()) < maxRounds {
		var pick words.Word
		switch s.State() {
		case Solved:
			pick = s.Candidates().Words()[0]
		case Contradiction:
			return s.History(), ErrEmptyCandidateSet
		default:
			ranking, err := s.Ranking(ctx)
			if err != nil {
				return s.History(), err
			}
			if len(ranking) == 0 {
				return s.History(), errNoGuesses
			}
			pick = ranking[0].Guess
		}

		code := feedback.Score(pick, target)
		s.apply(pick, code)
		if code.Solved() {
			return s.History(), nil
		}
	}
	return s.History(), ErrRoundLimit
}
