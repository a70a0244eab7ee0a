package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopReviewHooks{}
	r.OnSessionStart(ctx, "pack1", "flashcard", 10)
	r.OnGrade(ctx, "pack1", "verse1", true, 0.5)
	r.OnSessionComplete(ctx, "pack1", "flashcard", 10, time.Minute)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "passage")
	c.OnCacheMiss(ctx, "passage")
	c.OnCacheSet(ctx, "passage", 1024)

	f := NoopFetchHooks{}
	f.OnFetch(ctx, "John 3:16", "web")
	f.OnFetchComplete(ctx, "John 3:16", "web", 1, time.Second, nil)
}

type testReviewHooks struct {
	grades int
}

func (h *testReviewHooks) OnSessionStart(context.Context, string, string, int) {}
func (h *testReviewHooks) OnGrade(_ context.Context, _, _ string, _ bool, _ float64) {
	h.grades++
}
func (h *testReviewHooks) OnSessionComplete(context.Context, string, string, int, time.Duration) {}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Review().(NoopReviewHooks); !ok {
		t.Error("Review() should return NoopReviewHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Fetch().(NoopFetchHooks); !ok {
		t.Error("Fetch() should return NoopFetchHooks by default")
	}

	custom := &testReviewHooks{}
	SetReviewHooks(custom)
	Review().OnGrade(context.Background(), "p", "v", true, 1)
	if custom.grades != 1 {
		t.Errorf("custom hook saw %d grades, want 1", custom.grades)
	}

	// Nil registrations are ignored.
	SetReviewHooks(nil)
	if Review() != ReviewHooks(custom) {
		t.Error("nil registration replaced the custom hooks")
	}
}
