package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/versedeck/versedeck/pkg/deck"
)

// FileStore is a JSON-file-backed store for CLI usage. Packs are stored as
// one file per pack under packs/; health records and reminders live in a
// single document each.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based store rooted at baseDir.
// If baseDir is empty, defaults to ~/.config/versedeck/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "versedeck")
	}
	if err := os.MkdirAll(filepath.Join(baseDir, "packs"), 0700); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) packPath(id string) string {
	return filepath.Join(s.baseDir, "packs", id+".json")
}

func (s *FileStore) healthPath() string {
	return filepath.Join(s.baseDir, "health.json")
}

func (s *FileStore) remindersPath() string {
	return filepath.Join(s.baseDir, "reminders.json")
}

func (s *FileStore) ListPacks(ctx context.Context) ([]deck.Pack, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(filepath.Join(s.baseDir, "packs"))
	if err != nil {
		return nil, fmt.Errorf("read packs dir: %w", err)
	}

	var packs []deck.Pack
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, "packs", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read pack file %s: %w", e.Name(), err)
		}
		var p deck.Pack
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parse pack file %s: %w", e.Name(), err)
		}
		packs = append(packs, p)
	}

	sort.Slice(packs, func(i, j int) bool { return packs[i].CreatedAt.Before(packs[j].CreatedAt) })
	return packs, nil
}

func (s *FileStore) GetPack(ctx context.Context, id string) (deck.Pack, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.packPath(id))
	if os.IsNotExist(err) {
		return deck.Pack{}, fmt.Errorf("pack %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return deck.Pack{}, fmt.Errorf("read pack file: %w", err)
	}

	var p deck.Pack
	if err := json.Unmarshal(data, &p); err != nil {
		return deck.Pack{}, fmt.Errorf("parse pack: %w", err)
	}
	return p, nil
}

func (s *FileStore) PutPack(ctx context.Context, p deck.Pack) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal pack: %w", err)
	}
	return writeFileAtomic(s.packPath(p.ID), data)
}

func (s *FileStore) DeletePack(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.packPath(id))
	if os.IsNotExist(err) {
		return fmt.Errorf("pack %s: %w", id, ErrNotFound)
	}
	return err
}

func (s *FileStore) GetHealth(ctx context.Context, verseID string) (deck.Health, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, err := s.readHealth()
	if err != nil {
		return deck.Health{}, err
	}
	if h, ok := records[verseID]; ok {
		return h, nil
	}
	return deck.Health{VerseID: verseID}, nil
}

func (s *FileStore) PutHealth(ctx context.Context, h deck.Health) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readHealth()
	if err != nil {
		return err
	}
	records[h.VerseID] = h

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal health: %w", err)
	}
	return writeFileAtomic(s.healthPath(), data)
}

func (s *FileStore) ListHealth(ctx context.Context) (map[string]deck.Health, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readHealth()
}

func (s *FileStore) readHealth() (map[string]deck.Health, error) {
	records := make(map[string]deck.Health)
	data, err := os.ReadFile(s.healthPath())
	if os.IsNotExist(err) {
		return records, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read health file: %w", err)
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse health file: %w", err)
	}
	return records, nil
}

func (s *FileStore) ListReminders(ctx context.Context) ([]deck.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readReminders()
}

func (s *FileStore) PutReminder(ctx context.Context, r deck.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reminders, err := s.readReminders()
	if err != nil {
		return err
	}

	replaced := false
	for i := range reminders {
		if reminders[i].ID == r.ID {
			reminders[i] = r
			replaced = true
			break
		}
	}
	if !replaced {
		reminders = append(reminders, r)
	}
	return s.writeReminders(reminders)
}

func (s *FileStore) DeleteReminder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reminders, err := s.readReminders()
	if err != nil {
		return err
	}
	for i := range reminders {
		if reminders[i].ID == id {
			reminders = append(reminders[:i], reminders[i+1:]...)
			return s.writeReminders(reminders)
		}
	}
	return nil
}

func (s *FileStore) readReminders() ([]deck.Reminder, error) {
	data, err := os.ReadFile(s.remindersPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read reminders file: %w", err)
	}
	var reminders []deck.Reminder
	if err := json.Unmarshal(data, &reminders); err != nil {
		return nil, fmt.Errorf("parse reminders file: %w", err)
	}
	return reminders, nil
}

func (s *FileStore) writeReminders(reminders []deck.Reminder) error {
	data, err := json.MarshalIndent(reminders, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal reminders: %w", err)
	}
	return writeFileAtomic(s.remindersPath(), data)
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

// writeFileAtomic writes data to a temp file and renames it into place so
// a crash mid-write cannot truncate an existing document.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
