/*
Package history keeps the analysis batches produced during the life of the process.
Nothing is written to disk; a restart starts an empty history.
*/
package history

import (
	"sync"

	"tariffwatch/internal/model"
)

type Store struct {
	mu      sync.RWMutex
	batches []model.AnalysisBatch
}

func NewStore() *Store {
	return &Store{}
}

// Append adds batch to the end of the history.
func (s *Store) Append(batch model.AnalysisBatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = append(s.batches, batch)
}

// Latest returns the most recently appended batch.
func (s *Store) Latest() (model.AnalysisBatch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.batches) == 0 {
		return model.AnalysisBatch{}, false
	}
	return s.batches[len(s.batches)-1], true
}

// All returns every batch in insertion order.
func (s *Store) All() []model.AnalysisBatch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.AnalysisBatch, len(s.batches))
	copy(out, s.batches)
	return out
}

// Previous returns every batch except the latest, most recent first.
func (s *Store) Previous() []model.AnalysisBatch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.batches) < 2 {
		return []model.AnalysisBatch{}
	}
	out := make([]model.AnalysisBatch, 0, len(s.batches)-1)
	for i := len(s.batches) - 2; i >= 0; i-- {
		out = append(out, s.batches[i])
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.batches)
}
