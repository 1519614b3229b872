// internal/store/memory.go
//
// In-memory implementation of solver.Cache.
// Used when no RANKING_CACHE path is configured, and in tests.
//
// Characteristics:
//   - Stores rankings keyed by cache key in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Stored and returned slices are copies, so callers cannot alias entries.
//   - State is lost when the process exits.

package store

import (
	"context"
	"sync"

	"github.com/robalobadob/wordle/apps/guesser/internal/solver"
	"github.com/robalobadob/wordle/apps/guesser/internal/words"
)

// memory is an in-memory map-based cache.
type memory struct {
	mu       sync.RWMutex                   // guards rankings map
	rankings map[string][]solver.GuessStats // keyed by cache key
}

// NewMemory constructs an empty in-memory cache.
func NewMemory() solver.Cache {
	return &memory{rankings: make(map[string][]solver.GuessStats)}
}

// Save adds or replaces the ranking under key.
func (m *memory) Save(ctx context.Context, key string, stats []solver.GuessStats) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rankings[key] = cloneStats(stats)
	return nil
}

// Load looks up a ranking by key.
func (m *memory) Load(ctx context.Context, key string) ([]solver.GuessStats, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.rankings[key]; ok {
		return cloneStats(s), true, nil
	}
	return nil, false, nil
}

func cloneStats(in []solver.GuessStats) []solver.GuessStats {
	out := make([]solver.GuessStats, len(in))
	copy(out, in)
	for i := range out {
		if in[i].WorstSample != nil {
			out[i].WorstSample = append(make([]words.Word, 0, len(in[i].WorstSample)), in[i].WorstSample...)
		}
	}
	return out
}
