package solver

import "context"

// Cache stores rankings by key. Implementations live in internal/store.
// A Load hit must return exactly what was saved under the key.
type Cache interface {
	Load(ctx context.Context, key string) ([]GuessStats, bool, error)
	Save(ctx context.Context, key string, stats []GuessStats) error
}
