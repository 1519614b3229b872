// internal/solver/session.go
//
// Session drives the refinement loop for one game.
// Responsibilities:
//   - Own the candidate set for the lifetime of the game.
//   - Rank guesses against the current candidates (optionally via a Cache).
//   - Apply a played guess and its observed code, shrinking the candidates
//     (and, in hard mode, the guess list).
//
// States: Active → Solved (one candidate) or Contradiction (none).
// The session performs no I/O; callers supply guesses and scores.

package solver

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/guesser/internal/feedback"
	"github.com/robalobadob/wordle/apps/guesser/internal/words"
)

// State is the coarse position of a session.
type State int

const (
	Active State = iota
	Solved
	Contradiction
)

func (s State) String() string {
	switch s {
	case Solved:
		return "solved"
	case Contradiction:
		return "contradiction"
	default:
		return "active"
	}
}

// Round records one applied guess.
type Round struct {
	Guess  words.Word
	Code   feedback.Code
	Before int // candidates before filtering
	After  int // candidates after filtering
}

// Option configures a Session.
type Option func(*Session)

// WithRanker sets the ranker used by Ranking.
func WithRanker(r *Ranker) Option { return func(s *Session) { s.ranker = r } }

// WithCache stores and reuses rankings keyed by the guess list and candidates.
func WithCache(c Cache) Option { return func(s *Session) { s.cache = c } }

// WithHardMode also narrows the guess list with every played score.
func WithHardMode(on bool) Option { return func(s *Session) { s.hard = on } }

// WithCommon limits the starting solutions to the first n words (0 = all).
func WithCommon(n int) Option { return func(s *Session) { s.common = n } }

// Session holds the state of one game.
type Session struct {
	guesses    []words.Word
	candidates *Candidates
	ranker     *Ranker
	cache      Cache
	hard       bool
	common     int
	history    []Round
}

// NewSession starts a game over vocab.
func NewSession(vocab words.Vocabulary, opts ...Option) (*Session, error) {
	s := &Session{}
	for _, o := range opts {
		o(s)
	}
	vocab = vocab.Common(s.common)
	if len(vocab.Solutions) == 0 {
		return nil, words.ErrNoSolutions
	}
	if s.ranker == nil {
		s.ranker = &Ranker{}
	}
	s.guesses = append([]words.Word(nil), vocab.Guesses...)
	s.candidates = NewCandidates(vocab.Solutions)
	return s, nil
}

// State derives the session state from the candidate count.
func (s *Session) State() State {
	switch s.candidates.Len() {
	case 0:
		return Contradiction
	case 1:
		return Solved
	default:
		return Active
	}
}

// Candidates returns the current candidate set.
func (s *Session) Candidates() *Candidates { return s.candidates }

// Guesses returns the current guess list (narrowed in hard mode).
func (s *Session) Guesses() []words.Word { return s.guesses }

// History returns the rounds played so far.
func (s *Session) History() []Round { return s.history }

// HardMode reports whether the guess list is narrowed each round.
func (s *Session) HardMode() bool { return s.hard }

// Ranking returns the ranked guesses for the current candidates.
// It fails with ErrEmptyCandidateSet once the session is contradictory.
func (s *Session) Ranking(ctx context.Context) ([]GuessStats, error) {
	if s.candidates.Empty() {
		return nil, ErrEmptyCandidateSet
	}

	var key string
	if s.cache != nil {
		key = s.cacheKey()
		stats, ok, err := s.cache.Load(ctx, key)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("ranking cache load")
		case ok:
			log.Debug().Str("key", key[:12]).Int("entries", len(stats)).Msg("ranking cache hit")
			return stats, nil
		}
	}

	stats, err := s.ranker.Rank(s.guesses, s.candidates)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Save(ctx, key, stats); err != nil {
			log.Warn().Err(err).Msg("ranking cache save")
		}
	}
	return stats, nil
}

// Play applies a played guess and the score the game gave it. Any valid
// word is accepted, listed or not.
func (s *Session) Play(guess words.Word, code feedback.Code) (State, error) {
	if st := s.State(); st != Active {
		return st, fmt.Errorf("%w: %s", ErrSessionOver, st)
	}
	return s.apply(guess, code), nil
}

func (s *Session) apply(guess words.Word, code feedback.Code) State {
	before := s.candidates.Len()
	s.candidates = Filter(s.candidates, guess, code)
	if s.hard {
		s.guesses = FilterWords(s.guesses, guess, code)
	}
	s.history = append(s.history, Round{Guess: guess, Code: code, Before: before, After: s.candidates.Len()})

	st := s.State()
	log.Debug().
		Str("guess", guess.String()).
		Str("code", code.String()).
		Int("before", before).
		Int("after", s.candidates.Len()).
		Stringer("state", st).
		Msg("round applied")
	return st
}

// PlayText parses a textual guess and score, then plays them. On malformed
// input the session is unchanged and the error wraps ErrInputMismatch.
func (s *Session) PlayText(guess, code string) (State, error) {
	g, c, err := parsePlay(guess, code)
	if err != nil {
		return s.State(), err
	}
	return s.Play(g, c)
}

func (s *Session) cacheKey() string {
	return words.Fingerprint(s.guesses, s.candidates.Words()) + ":" + strconv.Itoa(s.ranker.sampleSize())
}
