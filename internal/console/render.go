// internal/console/render.go
//
// Plain-text rendering of sessions for the terminal.
// Renders:
//   - the remaining candidate words, wrapped to the terminal width;
//   - the ranked suggestion table;
//   - feedback codes as colored tiles (green exact, yellow present, gray absent);
//   - self-play transcripts.
//
// Listing rules for the ranking table:
//   - the first Top rows are always shown;
//   - later rows are shown only for viable guesses (marked '*'), with an
//     "(N words omitted)" marker for the skipped stretch;
//   - listing stops once enough viable guesses have been shown.

package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/TwiN/go-color"
	"github.com/mitchellh/go-wordwrap"

	"github.com/robalobadob/wordle/apps/guesser/internal/feedback"
	"github.com/robalobadob/wordle/apps/guesser/internal/solver"
	"github.com/robalobadob/wordle/apps/guesser/internal/words"
)

const (
	DefaultTop      = 15
	DefaultWidth    = 80
	maxListed       = 200 // candidate words printed before "..."
	maxViableListed = 4
)

// Renderer writes human-readable output to Out.
type Renderer struct {
	Out        io.Writer
	Color      bool // ANSI colors for tiles
	Top        int  // rows always shown; 0 means DefaultTop
	SampleSize int  // sample words shown per row; 0 means solver.DefaultSampleSize
	Width      int  // wrap width; 0 means DefaultWidth
}

func (r *Renderer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.Out, format, args...)
}

// Candidates prints the remaining solution words.
func (r *Renderer) Candidates(list []words.Word) {
	shown := list
	if len(shown) > maxListed {
		shown = shown[:maxListed]
	}
	text := strings.Join(words.Strings(shown), " ")
	if len(list) > maxListed {
		text += "..."
	}
	r.printf("There are %d possibilities for the word.\n\n%s\n", len(list), wordwrap.WrapString(text, uint(r.width())))
}

// Ranking prints the suggestion table.
func (r *Renderer) Ranking(stats []solver.GuessStats) {
	r.printf("\nSUGGESTED GUESSES (sorted by sqrt(average * max) remaining)\n%s\n", strings.Repeat("=", min(r.width(), 100)))

	top := r.Top
	if top <= 0 {
		top = DefaultTop
	}
	viable, skipped := 0, 0
	for i, st := range stats {
		if i < top || st.Viable {
			if skipped > 0 {
				r.printf("   ... (%d words omitted) ...\n", skipped)
				skipped = 0
			}
			r.printf("%s\n", r.Row(st))
		} else {
			skipped++
		}
		if st.Viable {
			viable++
		}
		if viable > maxViableListed && i >= top {
			break
		}
	}
}

// Row formats one ranking entry.
func (r *Renderer) Row(st solver.GuessStats) string {
	mark := ' '
	if st.Viable {
		mark = '*'
	}
	n := r.SampleSize
	if n <= 0 {
		n = solver.DefaultSampleSize
	}
	sample := st.WorstSample
	if len(sample) > n {
		sample = sample[:n]
	}
	more := ""
	if st.WorstCase > len(sample) {
		more = "..."
	}
	return fmt.Sprintf("%c %s | average %.1f left, max %d left with %s => %s%s",
		mark, st.Guess, st.Expected, st.WorstCase, r.Code(st.WorstCode),
		strings.Join(words.Strings(sample), " "), more)
}

// Code renders a code as ".y.GG", colored when enabled.
func (r *Renderer) Code(c feedback.Code) string {
	if !r.Color {
		return c.String()
	}
	var b strings.Builder
	for _, m := range c {
		b.WriteString(color.Colorize(markColor(m), string(m.Rune())))
	}
	return b.String()
}

// Tiles renders the guess letters colored by their marks. Without color the
// letters of exact marks are uppercased, present ones left lowercase and
// absent ones replaced with '.'.
func (r *Renderer) Tiles(guess words.Word, c feedback.Code) string {
	var b strings.Builder
	for i, m := range c {
		l := string(guess[i])
		switch {
		case r.Color:
			b.WriteString(color.Colorize(markColor(m), strings.ToUpper(l)))
		case m == feedback.Exact:
			b.WriteString(strings.ToUpper(l))
		case m == feedback.Present:
			b.WriteString(l)
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Rounds prints a transcript of played rounds.
func (r *Renderer) Rounds(rounds []solver.Round) {
	for i, rd := range rounds {
		r.printf("%d. %s  %s  %s  (%d -> %d)\n", i+1, rd.Guess, r.Code(rd.Code), r.Tiles(rd.Guess, rd.Code), rd.Before, rd.After)
	}
}

// Solved announces the answer.
func (r *Renderer) Solved(w words.Word) {
	r.printf("The word is: %s\n", w)
}

// Contradiction explains an empty candidate set.
func (r *Renderer) Contradiction() {
	r.printf("Somehow, there are no possible words remaining. Did you enter your guesses and scores correctly?\n")
}

func (r *Renderer) width() int {
	if r.Width > 0 {
		return r.Width
	}
	return DefaultWidth
}

func markColor(m feedback.Mark) string {
	switch m {
	case feedback.Exact:
		return color.Green
	case feedback.Present:
		return color.Yellow
	default:
		return color.Gray
	}
}
