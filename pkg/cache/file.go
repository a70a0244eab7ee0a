package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores passage responses on disk, one JSON file per entry,
// sharded by key hash so a large verse library never piles thousands of
// files into a single directory. It is the backend behind the CLI's
// ~/.cache/versedeck/ directory.
type FileCache struct {
	dir string
}

// NewFileCache creates a file cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// entry is the on-disk record. Passages are immutable, so most entries
// carry no expiry at all; ExpiresAt is set only when the user configures
// a cache TTL.
type entry struct {
	Payload   []byte    `json:"payload"`
	StoredAt  time.Time `json:"stored_at"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

func (e entry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}

// Get retrieves a cached passage. Entries that are expired or unreadable
// are removed and reported as a miss, so a damaged cache heals itself on
// the next fetch.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if e.expired(time.Now()) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return e.Payload, true, nil
}

// Set stores a passage response. A zero ttl means the entry never
// expires, the usual choice since passage text does not change.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	now := time.Now()
	e := entry{Payload: data, StoredAt: now}
	if ttl > 0 {
		e.ExpiresAt = now.Add(ttl)
	}

	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}

// Delete removes an entry. Deleting an absent key is a no-op.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing; every operation opens and closes its own file.
func (c *FileCache) Close() error {
	return nil
}

// path maps a key to <dir>/<shard>/<rest>.json, where the shard is the
// first two hex characters of the key hash. `versedeck cache clear`
// relies on this layout.
func (c *FileCache) path(key string) string {
	hash := Hash([]byte(key))
	return filepath.Join(c.dir, hash[:2], hash[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
