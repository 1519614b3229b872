package console

import (
	"context"

	"github.com/robalobadob/wordle/apps/guesser/internal/solver"
)

// Play runs the read-guess/read-score loop until the session is solved,
// contradictory, or input ends. Only I/O lives here; every transition goes
// through the session.
func Play(ctx context.Context, s *solver.Session, r *Renderer, p *Prompter) (solver.State, error) {
	for {
		switch s.State() {
		case solver.Solved:
			r.Solved(s.Candidates().Words()[0])
			return solver.Solved, nil
		case solver.Contradiction:
			r.Contradiction()
			return solver.Contradiction, nil
		}

		r.Candidates(s.Candidates().Words())
		ranking, err := s.Ranking(ctx)
		if err != nil {
			return s.State(), err
		}
		r.Ranking(ranking)

		guess, code, err := p.ReadPlay()
		if err != nil {
			return s.State(), err
		}
		if _, err := s.Play(guess, code); err != nil {
			return s.State(), err
		}
	}
}
