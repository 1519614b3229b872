// internal/words/vocabulary.go
//
// Word list management for the advisor.
//
// Responsibilities:
//   - Load solution and guess lists from configured files or fall back to the
//     embedded defaults in the assets package.
//   - Normalize entries (trim, lowercase, five letters a–z) and drop duplicates
//     while keeping list order (lists are ordered most-common first).
//   - Provide set lookups for guesses (solutions ∪ guesses) and solutions.
//
// Initialization behavior (Load):
//   1. If both SolutionsFile and GuessesFile are set,
//      load solutions from the first and guesses from the second.
//   2. If only GuessesFile is set,
//      load that file and use it for both solutions and guesses.
//   3. If neither is set,
//      fall back to the embedded solutions.txt and guesses.txt.
//
// The Vocabulary is plain data handed to each session; nothing here is
// process-wide state.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/guesser/assets"
)

// ErrNoSolutions is returned when loading produces an empty solution list.
var ErrNoSolutions = errors.New("words: solution list is empty")

// Sources names the word-list files to load. Empty fields fall back as
// described in the package comment.
type Sources struct {
	SolutionsFile string
	GuessesFile   string
}

// Vocabulary holds the two immutable word lists.
type Vocabulary struct {
	Solutions []Word // candidate solutions, most common first
	Guesses   []Word // allowed guesses; always includes every solution

	solutionSet mapset.Set[Word]
	guessSet    mapset.Set[Word]
}

// NewVocabulary builds a Vocabulary from already-parsed lists.
// Solutions missing from guesses are appended to the guess list.
func NewVocabulary(solutions, guesses []Word) Vocabulary {
	solutions = dedupe(solutions)
	guesses = dedupe(guesses)

	v := Vocabulary{
		Solutions:   solutions,
		solutionSet: mapset.NewThreadUnsafeSet(solutions...),
		guessSet:    mapset.NewThreadUnsafeSet(guesses...),
	}
	// Ensure all solutions are also allowed guesses.
	for _, w := range solutions {
		if v.guessSet.Add(w) {
			guesses = append(guesses, w)
		}
	}
	v.Guesses = guesses
	return v
}

// Load reads the configured lists.
func Load(src Sources) (Vocabulary, error) {
	var solList, guessList []Word

	switch {
	// Case 1: both lists provided
	case src.SolutionsFile != "" && src.GuessesFile != "":
		var err error
		if solList, err = readWordFile(src.SolutionsFile); err != nil {
			return Vocabulary{}, err
		}
		if guessList, err = readWordFile(src.GuessesFile); err != nil {
			return Vocabulary{}, err
		}

	// Case 2: only the guess file provided → use for both
	case src.SolutionsFile == "" && src.GuessesFile != "":
		var err error
		if guessList, err = readWordFile(src.GuessesFile); err != nil {
			return Vocabulary{}, err
		}
		solList = guessList

	// Case 3: fallback to embedded defaults
	default:
		sols, err := assets.SolutionsList()
		if err != nil {
			return Vocabulary{}, fmt.Errorf("embedded solutions: %w", err)
		}
		gs, err := assets.GuessesList()
		if err != nil {
			return Vocabulary{}, fmt.Errorf("embedded guesses: %w", err)
		}
		solList = normalize(sols)
		guessList = normalize(gs)
	}

	if len(solList) == 0 {
		return Vocabulary{}, ErrNoSolutions
	}
	v := NewVocabulary(solList, guessList)
	log.Debug().
		Int("solutions", len(v.Solutions)).
		Int("guesses", len(v.Guesses)).
		Msg("word lists loaded")
	return v, nil
}

// IsGuess reports whether w is in the guess list.
func (v Vocabulary) IsGuess(w Word) bool {
	return v.guessSet != nil && v.guessSet.Contains(w)
}

// IsSolution reports whether w is in the solution list.
func (v Vocabulary) IsSolution(w Word) bool {
	return v.solutionSet != nil && v.solutionSet.Contains(w)
}

// Common returns a copy of v whose solution list is cut to the first n
// entries. n <= 0 or n >= len(Solutions) keeps every solution.
func (v Vocabulary) Common(n int) Vocabulary {
	if n <= 0 || n >= len(v.Solutions) {
		return v
	}
	return NewVocabulary(v.Solutions[:n], v.Guesses)
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	out, err := ReadList(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

// ReadList parses a word list, one word per line. Blank lines and lines
// starting with '#' are skipped, as are entries that are not five letters.
func ReadList(r io.Reader) ([]Word, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return normalize(lines), nil
}

// normalize keeps the valid five-letter entries of lines.
func normalize(lines []string) []Word {
	out := make([]Word, 0, len(lines))
	skipped := 0
	for _, line := range lines {
		s := strings.TrimSpace(line)
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		w, err := Parse(s)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, w)
	}
	if skipped > 0 {
		log.Debug().Int("skipped", skipped).Msg("ignored malformed word-list entries")
	}
	return out
}

// dedupe drops repeated words, keeping the first occurrence.
func dedupe(list []Word) []Word {
	seen := mapset.NewThreadUnsafeSetWithSize[Word](len(list))
	out := make([]Word, 0, len(list))
	for _, w := range list {
		if seen.Add(w) {
			out = append(out, w)
		}
	}
	return out
}
