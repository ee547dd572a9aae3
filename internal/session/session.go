// Package session holds the dashboard's mutable state: the client watch list
// and the history of analysis batches.
package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"tariffwatch/internal/history"
	"tariffwatch/internal/model"
	"tariffwatch/pkg/news"
)

var (
	ErrEmptyClient     = errors.New("client name is empty")
	ErrDuplicateClient = errors.New("client already exists")
	ErrClientNotFound  = errors.New("client not found")
	ErrRunInProgress   = errors.New("an analysis run is already in progress")
)

type Analyzer interface {
	Run(ctx context.Context, keywords []string, languages []news.Language, clients []string) model.AnalysisBatch
}

type Notifier interface {
	Notify(batch model.AnalysisBatch) error
}

type Session struct {
	mu      sync.RWMutex
	clients []string

	runMu    sync.Mutex
	analyzer Analyzer
	history  *history.Store
	notifier Notifier
}

// New copies defaultClients, skipping blanks and case-insensitive duplicates.
// notifier may be nil.
func New(defaultClients []string, analyzer Analyzer, notifier Notifier) *Session {
	s := &Session{analyzer: analyzer, history: history.NewStore(), notifier: notifier}
	for _, name := range defaultClients {
		if err := s.AddClient(name); err != nil {
			slog.Warn("skipping default client", "client", name, "error", err)
		}
	}
	return s
}

func (s *Session) History() *history.Store {
	return s.history
}

// Clients returns a snapshot of the watch list in insertion order.
func (s *Session) Clients() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.clients))
	copy(out, s.clients)
	return out
}

func (s *Session) AddClient(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyClient
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(name) >= 0 {
		return ErrDuplicateClient
	}
	s.clients = append(s.clients, name)
	return nil
}

func (s *Session) RemoveClient(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(strings.TrimSpace(name))
	if i < 0 {
		return ErrClientNotFound
	}
	s.clients = append(s.clients[:i], s.clients[i+1:]...)
	return nil
}

// indexOf must be called with mu held.
func (s *Session) indexOf(name string) int {
	for i, c := range s.clients {
		if strings.EqualFold(c, name) {
			return i
		}
	}
	return -1
}

// Run executes one analysis against the current client list and records the
// batch in history. Overlapping runs are rejected with ErrRunInProgress.
func (s *Session) Run(ctx context.Context, keywords []string, languages []news.Language) (model.AnalysisBatch, error) {
	if !s.runMu.TryLock() {
		return model.AnalysisBatch{}, ErrRunInProgress
	}
	defer s.runMu.Unlock()

	batch := s.analyzer.Run(ctx, keywords, languages, s.Clients())
	s.history.Append(batch)

	slog.Info("analysis run recorded", "timestamp", batch.Timestamp, "results", len(batch.Results), "history", s.history.Len())

	if s.notifier != nil && !batch.Empty() {
		if err := s.notifier.Notify(batch); err != nil {
			slog.Error("error sending batch notification", "error", err, "timestamp", batch.Timestamp)
		}
	}

	return batch, nil
}
