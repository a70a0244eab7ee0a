package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/versedeck/versedeck/pkg/deck"
)

// MemoryStore is a map-backed store for tests and ephemeral runs.
type MemoryStore struct {
	mu        sync.RWMutex
	packs     map[string]deck.Pack
	health    map[string]deck.Health
	reminders map[string]deck.Reminder
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		packs:     make(map[string]deck.Pack),
		health:    make(map[string]deck.Health),
		reminders: make(map[string]deck.Reminder),
	}
}

func (s *MemoryStore) ListPacks(ctx context.Context) ([]deck.Pack, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	packs := make([]deck.Pack, 0, len(s.packs))
	for _, p := range s.packs {
		packs = append(packs, p)
	}
	sort.Slice(packs, func(i, j int) bool { return packs[i].CreatedAt.Before(packs[j].CreatedAt) })
	return packs, nil
}

func (s *MemoryStore) GetPack(ctx context.Context, id string) (deck.Pack, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.packs[id]
	if !ok {
		return deck.Pack{}, fmt.Errorf("pack %s: %w", id, ErrNotFound)
	}
	return p, nil
}

func (s *MemoryStore) PutPack(ctx context.Context, p deck.Pack) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.packs[p.ID] = p
	return nil
}

func (s *MemoryStore) DeletePack(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.packs[id]; !ok {
		return fmt.Errorf("pack %s: %w", id, ErrNotFound)
	}
	delete(s.packs, id)
	return nil
}

func (s *MemoryStore) GetHealth(ctx context.Context, verseID string) (deck.Health, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if h, ok := s.health[verseID]; ok {
		return h, nil
	}
	return deck.Health{VerseID: verseID}, nil
}

func (s *MemoryStore) PutHealth(ctx context.Context, h deck.Health) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.health[h.VerseID] = h
	return nil
}

func (s *MemoryStore) ListHealth(ctx context.Context) (map[string]deck.Health, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]deck.Health, len(s.health))
	for id, h := range s.health {
		out[id] = h
	}
	return out, nil
}

func (s *MemoryStore) ListReminders(ctx context.Context) ([]deck.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reminders := make([]deck.Reminder, 0, len(s.reminders))
	for _, r := range s.reminders {
		reminders = append(reminders, r)
	}
	sort.Slice(reminders, func(i, j int) bool { return reminders[i].CreatedAt.Before(reminders[j].CreatedAt) })
	return reminders, nil
}

func (s *MemoryStore) PutReminder(ctx context.Context, r deck.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminders[r.ID] = r
	return nil
}

func (s *MemoryStore) DeleteReminder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reminders, id)
	return nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close() error { return nil }

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
