// Package store provides persistence for packs, memory health, and
// reminders.
//
// This package defines the Store interface with implementations for
// different backends:
//   - memory: In-memory storage for tests and ephemeral runs
//   - file: JSON files under the config directory (the CLI default)
//   - redis: Redis-backed storage
//   - mongo: MongoDB-backed storage for shared libraries
//
// # Usage
//
// Create a store:
//
//	// CLI default
//	st, err := store.NewFileStore("") // uses ~/.config/versedeck/
//
//	// Tests
//	st := store.NewMemoryStore()
//
//	// Shared
//	st, err := store.NewRedisStore(ctx, store.RedisConfig{Addr: "localhost:6379"})
//
// All operations take a context and return ErrNotFound (wrapped) when a
// requested record does not exist.
package store

import (
	"context"
	"errors"

	"github.com/versedeck/versedeck/pkg/deck"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store is the interface for persistence backends.
type Store interface {
	// ListPacks returns all packs, ordered by creation time.
	ListPacks(ctx context.Context) ([]deck.Pack, error)

	// GetPack retrieves a pack by ID. Returns ErrNotFound if absent.
	GetPack(ctx context.Context, id string) (deck.Pack, error)

	// PutPack stores a pack, replacing any previous version.
	PutPack(ctx context.Context, p deck.Pack) error

	// DeletePack removes a pack. Returns ErrNotFound if absent.
	DeletePack(ctx context.Context, id string) error

	// GetHealth retrieves the health record for a verse. A verse that has
	// never been reviewed yields a fresh zero-score record, not an error.
	GetHealth(ctx context.Context, verseID string) (deck.Health, error)

	// PutHealth stores a health record, replacing any previous version.
	PutHealth(ctx context.Context, h deck.Health) error

	// ListHealth returns all health records keyed by verse ID.
	ListHealth(ctx context.Context) (map[string]deck.Health, error)

	// ListReminders returns all reminders.
	ListReminders(ctx context.Context) ([]deck.Reminder, error)

	// PutReminder stores a reminder, replacing any previous version.
	PutReminder(ctx context.Context, r deck.Reminder) error

	// DeleteReminder removes a reminder. Deleting an absent reminder is a
	// no-op.
	DeleteReminder(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}

// FindPackByName returns the pack whose name matches exactly, for CLI
// commands that accept names in place of IDs. An ID match wins over a name
// match.
func FindPackByName(ctx context.Context, st Store, nameOrID string) (deck.Pack, error) {
	if p, err := st.GetPack(ctx, nameOrID); err == nil {
		return p, nil
	} else if !errors.Is(err, ErrNotFound) {
		return deck.Pack{}, err
	}

	packs, err := st.ListPacks(ctx)
	if err != nil {
		return deck.Pack{}, err
	}
	for _, p := range packs {
		if p.Name == nameOrID {
			return p, nil
		}
	}
	return deck.Pack{}, ErrNotFound
}
