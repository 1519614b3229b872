package solver

import (
	"errors"

	"github.com/robalobadob/wordle/apps/guesser/internal/words"
)

var (
	// ErrInputMismatch: a played word or score has the wrong length or an
	// unknown symbol. Session state is left unchanged.
	ErrInputMismatch = words.ErrInputMismatch

	// ErrEmptyCandidateSet: the feedback history rules out every solution,
	// most likely because a score was mistyped.
	ErrEmptyCandidateSet = errors.New("no candidate solutions remain")

	// ErrSessionOver: Play was called after the session reached a terminal state.
	ErrSessionOver = errors.New("session is over")
)
