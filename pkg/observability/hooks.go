// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about review sessions, cache
// operations, and passage fetches.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetReviewHooks(&myReviewHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Review().OnSessionStart(ctx, packID, mode, count)
//	// ... run session ...
//	observability.Review().OnSessionComplete(ctx, packID, mode, reviewed, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Review Hooks
// =============================================================================

// ReviewHooks receives events from review sessions.
type ReviewHooks interface {
	// OnSessionStart records the start of a review session.
	OnSessionStart(ctx context.Context, packID, mode string, verseCount int)

	// OnGrade records a single graded verse.
	OnGrade(ctx context.Context, packID, verseID string, remembered bool, score float64)

	// OnSessionComplete records a finished session.
	OnSessionComplete(ctx context.Context, packID, mode string, reviewed int, duration time.Duration)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Fetch Hooks
// =============================================================================

// FetchHooks receives events from passage fetch operations.
type FetchHooks interface {
	// OnFetch records an outgoing passage request.
	OnFetch(ctx context.Context, reference, translation string)

	// OnFetchComplete records a completed passage request.
	OnFetchComplete(ctx context.Context, reference, translation string, verses int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopReviewHooks is a no-op implementation of ReviewHooks.
type NoopReviewHooks struct{}

func (NoopReviewHooks) OnSessionStart(context.Context, string, string, int)             {}
func (NoopReviewHooks) OnGrade(context.Context, string, string, bool, float64)          {}
func (NoopReviewHooks) OnSessionComplete(context.Context, string, string, int, time.Duration) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopFetchHooks is a no-op implementation of FetchHooks.
type NoopFetchHooks struct{}

func (NoopFetchHooks) OnFetch(context.Context, string, string) {}
func (NoopFetchHooks) OnFetchComplete(context.Context, string, string, int, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	reviewHooks ReviewHooks = NoopReviewHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	fetchHooks  FetchHooks  = NoopFetchHooks{}
	hooksMu     sync.RWMutex
)

// SetReviewHooks registers custom review hooks.
// This should be called once at application startup before any sessions run.
func SetReviewHooks(h ReviewHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		reviewHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetFetchHooks registers custom fetch hooks.
// This should be called once at application startup before any passage fetches.
func SetFetchHooks(h FetchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		fetchHooks = h
	}
}

// Review returns the registered review hooks.
func Review() ReviewHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return reviewHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Fetch returns the registered fetch hooks.
func Fetch() FetchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return fetchHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	reviewHooks = NoopReviewHooks{}
	cacheHooks = NoopCacheHooks{}
	fetchHooks = NoopFetchHooks{}
}
