package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/versedeck/versedeck/pkg/rolodex"
	"github.com/versedeck/versedeck/pkg/store"
)

// Config holds user configuration, loaded from
// ~/.config/versedeck/config.toml. Every field has a working default; a
// missing config file is not an error.
type Config struct {
	Layout    rolodex.Config  `toml:"layout"`
	Store     StoreConfig     `toml:"store"`
	Scripture ScriptureConfig `toml:"scripture"`
}

// StoreConfig selects and configures the persistence backend.
type StoreConfig struct {
	// Backend is one of "file", "memory", "redis", "mongo".
	Backend string `toml:"backend"`

	// Path overrides the data directory for the file backend.
	Path string `toml:"path"`

	// Redis connection settings, used when Backend is "redis".
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`

	// Mongo connection settings, used when Backend is "mongo".
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// ScriptureConfig configures the passage API client.
type ScriptureConfig struct {
	// BaseURL overrides the passage API endpoint (self-hosted instances).
	BaseURL string `toml:"base_url"`

	// Translation is the default translation for new verses.
	Translation string `toml:"translation"`

	// CacheTTLDays bounds how long passage responses are cached.
	// Zero means cached responses never expire.
	CacheTTLDays int `toml:"cache_ttl_days"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Layout: rolodex.DefaultConfig(),
		Store: StoreConfig{
			Backend: "file",
		},
		Scripture: ScriptureConfig{
			Translation: "web",
		},
	}
}

// LoadConfig reads the config file at path, layering it over defaults.
// A missing file yields the defaults; a malformed file or invalid layout
// constants is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, cfg)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}

	if err := cfg.Layout.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// OpenStore creates the persistence backend selected by the config.
func (c *Config) OpenStore(ctx context.Context) (store.Store, error) {
	switch c.Store.Backend {
	case "", "file":
		return store.NewFileStore(c.Store.Path)
	case "memory":
		return store.NewMemoryStore(), nil
	case "redis":
		return store.NewRedisStore(ctx, store.RedisConfig{
			Addr:     c.Store.RedisAddr,
			Password: c.Store.RedisPassword,
			DB:       c.Store.RedisDB,
		})
	case "mongo":
		return store.NewMongoStore(ctx, store.MongoConfig{
			URI:      c.Store.MongoURI,
			Database: c.Store.MongoDatabase,
		})
	default:
		return nil, fmt.Errorf("unknown store backend %q (expected file, memory, redis, or mongo)", c.Store.Backend)
	}
}
