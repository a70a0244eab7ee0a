// Package review runs flashcard and swipe memorization sessions over a
// pack, applying memory-health nudges as verses are graded.
//
// A session loads the pack's health records once, orders the queue weakest
// verse first, and persists each grade as it happens, so an interrupted
// session loses nothing. The session holds no timers; pacing belongs to
// the caller (the TUI loop).
package review

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/versedeck/versedeck/pkg/deck"
	"github.com/versedeck/versedeck/pkg/errors"
	"github.com/versedeck/versedeck/pkg/observability"
	"github.com/versedeck/versedeck/pkg/store"
)

// Mode selects how verses are presented.
type Mode string

const (
	// ModeFlashcard shows the reference, reveals the text, then grades.
	ModeFlashcard Mode = "flashcard"

	// ModeSwipe shows the full card and grades on a left/right swipe.
	ModeSwipe Mode = "swipe"
)

// ValidModes is the set of supported session modes.
var ValidModes = map[Mode]bool{
	ModeFlashcard: true,
	ModeSwipe:     true,
}

// Item pairs a verse with its health record for presentation.
type Item struct {
	Verse  deck.Verse
	Health deck.Health
}

// Summary aggregates a finished session.
type Summary struct {
	PackID     string
	Mode       Mode
	Reviewed   int
	Remembered int
	ScoreDelta float64
	StartedAt  time.Time
	FinishedAt time.Time
}

// Session is a single pass over a pack's verses. It is not safe for
// concurrent use; a session belongs to one UI loop.
type Session struct {
	st      store.Store
	pack    deck.Pack
	mode    Mode
	queue   []Item
	idx     int
	summary Summary
	now     func() time.Time
}

// NewSession loads health records for the pack and builds the review
// queue, weakest verse first. An empty pack is rejected.
func NewSession(ctx context.Context, st store.Store, pack deck.Pack, mode Mode) (*Session, error) {
	if !ValidModes[mode] {
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown review mode %q", mode)
	}
	if len(pack.Verses) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidPack, "pack %q has no verses to review", pack.Name)
	}

	queue := make([]Item, 0, len(pack.Verses))
	for _, v := range pack.Verses {
		h, err := st.GetHealth(ctx, v.ID)
		if err != nil {
			return nil, fmt.Errorf("load health for %s: %w", v.Reference, err)
		}
		queue = append(queue, Item{Verse: v, Health: h})
	}

	// Weakest first; for equal scores the verse not seen for longest
	// comes up sooner. Pack order breaks any remaining ties.
	sort.SliceStable(queue, func(i, j int) bool {
		if queue[i].Health.Score != queue[j].Health.Score {
			return queue[i].Health.Score < queue[j].Health.Score
		}
		return queue[i].Health.LastReviewed.Before(queue[j].Health.LastReviewed)
	})

	s := &Session{
		st:    st,
		pack:  pack,
		mode:  mode,
		queue: queue,
		now:   time.Now,
		summary: Summary{
			PackID:    pack.ID,
			Mode:      mode,
			StartedAt: time.Now().UTC(),
		},
	}
	observability.Review().OnSessionStart(ctx, pack.ID, string(mode), len(queue))
	return s, nil
}

// Mode returns the session mode.
func (s *Session) Mode() Mode { return s.mode }

// Pack returns the pack under review.
func (s *Session) Pack() deck.Pack { return s.pack }

// Current returns the verse up for review, or false when the session is
// done.
func (s *Session) Current() (Item, bool) {
	if s.idx >= len(s.queue) {
		return Item{}, false
	}
	return s.queue[s.idx], true
}

// Remaining returns how many verses are left, including the current one.
func (s *Session) Remaining() int {
	return len(s.queue) - s.idx
}

// Done reports whether every verse has been graded or skipped.
func (s *Session) Done() bool { return s.idx >= len(s.queue) }

// Grade records the outcome for the current verse, persists the nudged
// health record, and advances to the next verse.
func (s *Session) Grade(ctx context.Context, remembered bool) error {
	item, ok := s.Current()
	if !ok {
		return errors.New(errors.ErrCodeInternal, "grade called on a finished session")
	}

	before := item.Health.Score
	item.Health.Nudge(remembered, s.now())
	if err := s.st.PutHealth(ctx, item.Health); err != nil {
		return fmt.Errorf("save health for %s: %w", item.Verse.Reference, err)
	}
	s.queue[s.idx] = item

	s.summary.Reviewed++
	if remembered {
		s.summary.Remembered++
	}
	s.summary.ScoreDelta += item.Health.Score - before
	s.idx++

	observability.Review().OnGrade(ctx, s.pack.ID, item.Verse.ID, remembered, item.Health.Score)
	return nil
}

// Skip advances past the current verse without grading it.
func (s *Session) Skip() {
	if s.idx < len(s.queue) {
		s.idx++
	}
}

// Finish stamps and returns the summary. Safe to call once at the end of
// the session.
func (s *Session) Finish(ctx context.Context) Summary {
	s.summary.FinishedAt = s.now().UTC()
	observability.Review().OnSessionComplete(ctx, s.pack.ID, string(s.mode),
		s.summary.Reviewed, s.summary.FinishedAt.Sub(s.summary.StartedAt))
	return s.summary
}
