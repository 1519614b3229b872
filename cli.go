// cli.go
//
// Command-line surface.
//   guesser                      interactive advisor: shows ranked guesses,
//                                reads the played guess and its score, repeats.
//   guesser play [target]        self-play against a target (default: the
//                                word of the day) and print the transcript.
//   guesser score GUESS SOLUTION print the score GUESS gets against SOLUTION.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/robalobadob/wordle/apps/guesser/internal/console"
	"github.com/robalobadob/wordle/apps/guesser/internal/daily"
	"github.com/robalobadob/wordle/apps/guesser/internal/feedback"
	"github.com/robalobadob/wordle/apps/guesser/internal/solver"
	"github.com/robalobadob/wordle/apps/guesser/internal/store"
	"github.com/robalobadob/wordle/apps/guesser/internal/words"
)

// errContradiction makes the interactive command exit non-zero after the
// contradiction message has been shown.
var errContradiction = errors.New("feedback history is inconsistent")

func newRootCmd(cfg config) *cobra.Command {
	root := &cobra.Command{
		Use:           "guesser",
		Short:         "Suggest good Wordle guesses by simulating every feedback outcome",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	f := root.PersistentFlags()
	f.BoolVar(&cfg.Hard, "hard", cfg.Hard, "hard mode: only suggest guesses consistent with every score so far")
	f.IntVar(&cfg.Common, "common", cfg.Common, "use only the N most common solutions (0 = all)")
	f.StringVar(&cfg.Words.SolutionsFile, "solutions", cfg.Words.SolutionsFile, "solution word-list file")
	f.StringVar(&cfg.Words.GuessesFile, "guesses", cfg.Words.GuessesFile, "guess word-list file")
	f.StringVar(&cfg.CachePath, "cache", cfg.CachePath, "SQLite ranking cache path (empty = memory)")
	f.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel ranking workers")
	f.IntVar(&cfg.SampleSize, "sample", cfg.SampleSize, "worst-case words shown per suggestion")
	f.IntVar(&cfg.Top, "top", cfg.Top, "suggestions always shown")
	f.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored tiles")

	root.AddCommand(newPlayCmd(&cfg), newScoreCmd(&cfg))
	return root
}

func newPlayCmd(cfg *config) *cobra.Command {
	var (
		date   string
		rounds int
	)
	cmd := &cobra.Command{
		Use:   "play [target]",
		Short: "Let the advisor play against a target word",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vocab, err := words.Load(cfg.Words)
			if err != nil {
				return fmt.Errorf("load word lists: %w", err)
			}

			var target words.Word
			if len(args) == 1 {
				if target, err = words.Parse(args[0]); err != nil {
					return err
				}
			} else {
				day := time.Now()
				if date != "" {
					if day, err = time.Parse("2006-01-02", date); err != nil {
						return fmt.Errorf("--date: %w", err)
					}
				}
				var ok bool
				if target, ok = daily.Target(day, cfg.DailySalt, vocab.Common(cfg.Common).Solutions); !ok {
					return words.ErrNoSolutions
				}
				log.Debug().Str("date", daily.DateKey(day)).Msg("using word of the day")
			}

			cache, closeCache, err := openCache(cfg.CachePath)
			if err != nil {
				return err
			}
			defer closeCache()

			s, err := newSession(*cfg, vocab, cache, nil)
			if err != nil {
				return err
			}
			played, err := solver.Solve(cmd.Context(), s, target, rounds)
			r := newRenderer(*cfg, cmd.OutOrStdout())
			r.Rounds(played)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Solved %s in %d guesses.\n", target, len(played))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "pick the word of the day for YYYY-MM-DD instead of today")
	cmd.Flags().IntVar(&rounds, "rounds", 10, "give up after this many guesses")
	return cmd
}

func newScoreCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "score GUESS SOLUTION",
		Short: "Print the score GUESS receives when the answer is SOLUTION",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			guess, err := words.Parse(args[0])
			if err != nil {
				return err
			}
			solution, err := words.Parse(args[1])
			if err != nil {
				return err
			}
			code := feedback.Score(guess, solution)
			r := newRenderer(*cfg, cmd.OutOrStdout())
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", r.Code(code), r.Tiles(guess, code))
			return nil
		},
	}
}

func runInteractive(ctx context.Context, cfg config, in io.Reader, out io.Writer) error {
	vocab, err := words.Load(cfg.Words)
	if err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}
	cache, closeCache, err := openCache(cfg.CachePath)
	if err != nil {
		return err
	}
	defer closeCache()

	var progress solver.Progress
	if term.IsTerminal(int(os.Stderr.Fd())) {
		progress = &barProgress{out: os.Stderr}
	}
	s, err := newSession(cfg, vocab, cache, progress)
	if err != nil {
		return err
	}

	st, err := console.Play(ctx, s, newRenderer(cfg, out), console.NewPrompter(in, out))
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	if st == solver.Contradiction {
		return errContradiction
	}
	return nil
}

func newSession(cfg config, vocab words.Vocabulary, cache solver.Cache, progress solver.Progress) (*solver.Session, error) {
	ranker := &solver.Ranker{Workers: cfg.Workers, SampleSize: cfg.SampleSize, Progress: progress}
	return solver.NewSession(vocab,
		solver.WithRanker(ranker),
		solver.WithCache(cache),
		solver.WithHardMode(cfg.Hard),
		solver.WithCommon(cfg.Common),
	)
}

// openCache returns the SQLite cache at path, or an in-memory cache when
// path is empty.
func openCache(path string) (solver.Cache, func(), error) {
	if path == "" {
		return store.NewMemory(), func() {}, nil
	}
	db, err := store.OpenSQLite(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open ranking cache: %w", err)
	}
	log.Debug().Str("path", path).Msg("ranking cache opened")
	return db, func() {
		if err := db.Close(); err != nil {
			log.Warn().Err(err).Msg("close ranking cache")
		}
	}, nil
}

func newRenderer(cfg config, out io.Writer) *console.Renderer {
	width := console.DefaultWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	return &console.Renderer{
		Out:        out,
		Color:      !cfg.NoColor && term.IsTerminal(int(os.Stdout.Fd())),
		Top:        cfg.Top,
		SampleSize: cfg.SampleSize,
		Width:      width,
	}
}
