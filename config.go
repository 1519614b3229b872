// config.go
//
// Environment-driven configuration. A .env file in the working directory is
// loaded first (see main); command-line flags override these values.
//
// Environment variables:
//   LOG_LEVEL=info
//   WORDS_SOLUTIONS_FILE=/path/to/solutions.txt
//   WORDS_GUESSES_FILE=/path/to/guesses.txt
//   WORDS_COMMON=0            # keep only the first N solutions (0 = all)
//   HARD_MODE=false
//   RANKING_CACHE=            # SQLite path; empty keeps the cache in memory
//   RANK_WORKERS=<NumCPU>
//   SAMPLE_SIZE=10
//   SHOW_TOP=15
//   DAILY_SALT=local_dev_salt
//   NO_COLOR=                 # any value disables colored tiles

package main

import (
	"os"
	"runtime"
	"strconv"

	"github.com/robalobadob/wordle/apps/guesser/internal/console"
	"github.com/robalobadob/wordle/apps/guesser/internal/solver"
	"github.com/robalobadob/wordle/apps/guesser/internal/words"
)

type config struct {
	LogLevel   string
	Words      words.Sources
	Common     int
	Hard       bool
	CachePath  string
	Workers    int
	SampleSize int
	Top        int
	DailySalt  string
	NoColor    bool
}

func loadConfig() config {
	return config{
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Words: words.Sources{
			SolutionsFile: os.Getenv("WORDS_SOLUTIONS_FILE"),
			GuessesFile:   os.Getenv("WORDS_GUESSES_FILE"),
		},
		Common:     envInt("WORDS_COMMON", 0),
		Hard:       envBool("HARD_MODE", false),
		CachePath:  os.Getenv("RANKING_CACHE"),
		Workers:    envInt("RANK_WORKERS", runtime.NumCPU()),
		SampleSize: envInt("SAMPLE_SIZE", solver.DefaultSampleSize),
		Top:        envInt("SHOW_TOP", console.DefaultTop),
		DailySalt:  getEnv("DAILY_SALT", "local_dev_salt"),
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
