// internal/solver/rank.go
//
// Guess ranking.
// For each guess the candidate set is partitioned by the feedback code the
// guess would receive; the partition sizes give:
//   - Expected: Σ count² / N, the probability-weighted remaining size.
//   - WorstCase: the largest partition, with its code and a member sample.
// Guesses are ordered by sqrt(Expected * WorstCase), then Expected, then
// alphabetically.
//
// Work is split over the guess list with an errgroup worker pool. Each task
// writes only its own result slots, and the final sort fixes the order, so
// the output does not depend on scheduling.

package solver

import (
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/guesser/internal/feedback"
	"github.com/robalobadob/wordle/apps/guesser/internal/words"
)

const (
	DefaultSampleSize = 10
	chunkSize         = 64
)

// GuessStats summarizes how well one guess splits the candidate set.
type GuessStats struct {
	Guess       words.Word
	Expected    float64       // expected remaining candidates
	WorstCase   int           // largest possible remaining candidates
	WorstCode   feedback.Code // code that leaves WorstCase candidates
	WorstSample []words.Word  // first SampleSize members of that partition
	Viable      bool          // the guess itself is still a candidate
}

// Score is the geometric mean of Expected and WorstCase. Lower is better.
func (s GuessStats) Score() float64 {
	return math.Sqrt(s.Expected * float64(s.WorstCase))
}

// Ranker computes GuessStats. The zero value is usable.
type Ranker struct {
	Workers    int // concurrent tasks; <= 0 means runtime.NumCPU()
	SampleSize int // worst-case sample length; 0 means DefaultSampleSize, < 0 disables

	Progress Progress // optional
}

// Progress observes a Rank call. Add may be called from several goroutines
// at once.
type Progress interface {
	Start(total int)
	Add(done int)
	Finish()
}

// Rank scores every guess against the candidate set and returns the stats
// sorted best first. It fails with ErrEmptyCandidateSet when c is empty.
func (r *Ranker) Rank(guesses []words.Word, c *Candidates) ([]GuessStats, error) {
	if c == nil || c.Empty() {
		return nil, ErrEmptyCandidateSet
	}
	out := make([]GuessStats, len(guesses))
	if len(guesses) == 0 {
		return out, nil
	}
	targets := c.Words()
	sample := r.sampleSize()
	if r.Progress != nil {
		r.Progress.Start(len(guesses))
		defer r.Progress.Finish()
	}

	var g errgroup.Group
	g.SetLimit(r.workers())
	for start := 0; start < len(guesses); start += chunkSize {
		start, end := start, min(start+chunkSize, len(guesses))
		g.Go(func() error {
			var hist [feedback.NumCodes]int
			for i := start; i < end; i++ {
				out[i] = evaluate(guesses[i], targets, &hist, sample)
				out[i].Viable = c.Contains(guesses[i])
			}
			if r.Progress != nil {
				r.Progress.Add(end - start)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortStats(out)
	return out, nil
}

// evaluate builds the partition histogram for one guess. hist is scratch
// space reused across calls by the same worker.
func evaluate(guess words.Word, targets []words.Word, hist *[feedback.NumCodes]int, sample int) GuessStats {
	*hist = [feedback.NumCodes]int{}
	for _, t := range targets {
		hist[feedback.Score(guess, t).Index()]++
	}

	worst, worstIdx, sumSq := 0, 0, 0
	for code, n := range hist {
		if n > worst {
			worst, worstIdx = n, code
		}
		sumSq += n * n
	}

	st := GuessStats{
		Guess:     guess,
		Expected:  float64(sumSq) / float64(len(targets)),
		WorstCase: worst,
		WorstCode: feedback.FromIndex(worstIdx),
	}
	if sample > 0 {
		st.WorstSample = make([]words.Word, 0, min(sample, worst))
		for _, t := range targets {
			if len(st.WorstSample) == sample {
				break
			}
			if feedback.Score(guess, t) == st.WorstCode {
				st.WorstSample = append(st.WorstSample, t)
			}
		}
	}
	return st
}

// sortStats orders by Score, then Expected, then the guess word.
func sortStats(list []GuessStats) {
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if sa, sb := a.Score(), b.Score(); sa != sb {
			return sa < sb
		}
		if a.Expected != b.Expected {
			return a.Expected < b.Expected
		}
		return words.Compare(a.Guess, b.Guess) < 0
	})
}

func (r *Ranker) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.NumCPU()
}

func (r *Ranker) sampleSize() int {
	switch {
	case r.SampleSize < 0:
		return 0
	case r.SampleSize == 0:
		return DefaultSampleSize
	default:
		return r.SampleSize
	}
}
