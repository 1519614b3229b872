package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wordle/apps/guesser/internal/feedback"
	"github.com/robalobadob/wordle/apps/guesser/internal/words"
)

// Prompter reads played guesses and scores, asking again on bad input.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadPlay asks for a guess and its score. It returns io.EOF when input ends.
func (p *Prompter) ReadPlay() (words.Word, feedback.Code, error) {
	var guess words.Word
	for {
		line, err := p.ask("\nPlease enter the guess you'll use: ")
		if err != nil {
			return guess, feedback.Code{}, err
		}
		if guess, err = words.Parse(line); err == nil {
			break
		}
		fmt.Fprintf(p.out, "\nYour guess of '%s' was not exactly %d letters.\n", strings.TrimSpace(line), words.Length)
	}

	for {
		line, err := p.ask("Enter the score you got for that word, in \".y.GG\" format: ")
		if err != nil {
			return guess, feedback.Code{}, err
		}
		code, err := feedback.Parse(line)
		if err == nil {
			return guess, code, nil
		}
		fmt.Fprintf(p.out, "\nScores should be entered as %d characters, with this code:\n", words.Length)
		fmt.Fprintln(p.out, "  . = letter that did not match anything")
		fmt.Fprintln(p.out, "  y = (yellow) letter that's in the word but in the wrong place")
		fmt.Fprintln(p.out, "  G = (GREEN) the right letter in the right place")
		fmt.Fprintln(p.out)
	}
}

// ask prints prompt and returns the next line. A final line without a
// newline is returned; EOF with nothing read is io.EOF.
func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}
