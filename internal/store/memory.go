// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Characteristics:
//   - Scores keyed by hero name in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sort"
	"sync"
)

// memory is a map-based Store implementation.
type memory struct {
	mu     sync.RWMutex   // guards scores map
	scores map[string]int // keyed by hero name
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{scores: make(map[string]int)}
}

// Upsert replaces any existing score for name (last-write-wins).
func (m *memory) Upsert(ctx context.Context, name string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores[name] = score
	return nil
}

// Top returns up to limit entries, highest score first.
func (m *memory) Top(ctx context.Context, limit int) ([]Entry, error) {
	m.mu.RLock()
	out := make([]Entry, 0, len(m.scores))
	for name, score := range m.scores {
		out = append(out, Entry{Name: name, Score: score})
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
