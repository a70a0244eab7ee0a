// Package cli implements the versedeck command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/versedeck/versedeck/pkg/buildinfo"
	"github.com/versedeck/versedeck/pkg/cache"
	"github.com/versedeck/versedeck/pkg/scripture"
	"github.com/versedeck/versedeck/pkg/store"
)

// appName is the application name used for directories and display.
const appName = "versedeck"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *Config
}

// New creates a new CLI instance with a default logger. Configuration is
// loaded from the config file when the first command runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "versedeck",
		Short:        "Versedeck helps you memorize scripture",
		Long:         `Versedeck is a CLI tool for memorizing Bible verses: build packs of verses, review them as flashcards, browse them as a rolodex card stack, and track how well each one sticks.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath())
			if err != nil {
				return err
			}
			c.Config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.packCommand())
	root.AddCommand(c.verseCommand())
	root.AddCommand(c.importCommand())
	root.AddCommand(c.reviewCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.remindCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// openStore creates the persistence backend selected by configuration.
func (c *CLI) openStore(cmd *cobra.Command) (store.Store, error) {
	return c.Config.OpenStore(cmd.Context())
}

// newScriptureClient creates a passage client honoring the cache settings.
func (c *CLI) newScriptureClient(noCache bool) *scripture.Client {
	backend := newCacheBackend(noCache)
	client := scripture.NewClient(backend, time.Duration(c.Config.Scripture.CacheTTLDays)*24*time.Hour)
	if c.Config.Scripture.BaseURL != "" {
		client.SetBaseURL(c.Config.Scripture.BaseURL)
	}
	return client
}

func newCacheBackend(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the cache directory using XDG standard (~/.cache/versedeck/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configPath returns the config file path under XDG config
// (~/.config/versedeck/config.toml).
func configPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
