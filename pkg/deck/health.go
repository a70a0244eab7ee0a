package deck

import "time"

// NudgeStep is how far a single review grade moves the health score.
const NudgeStep = 0.1

// Health levels derived from the score.
const (
	LevelWeak   = "weak"
	LevelFair   = "fair"
	LevelStrong = "strong"
)

// Health tracks how well a verse is memorized. Score lives in [0, 1];
// a fresh verse starts at 0.
type Health struct {
	VerseID      string    `json:"verse_id" bson:"verse_id"`
	Score        float64   `json:"score" bson:"score"`
	Reviews      int       `json:"reviews" bson:"reviews"`
	LastReviewed time.Time `json:"last_reviewed,omitempty" bson:"last_reviewed,omitempty"`
}

// Nudge applies a review grade: +0.1 when the verse was remembered, -0.1
// when it was missed, clamped to [0, 1].
func (h *Health) Nudge(remembered bool, at time.Time) {
	if remembered {
		h.Score += NudgeStep
	} else {
		h.Score -= NudgeStep
	}
	if h.Score > 1 {
		h.Score = 1
	}
	if h.Score < 0 {
		h.Score = 0
	}
	h.Reviews++
	h.LastReviewed = at.UTC()
}

// Level buckets the score for display and export:
// weak below 0.4, strong from 0.75, fair in between.
func (h Health) Level() string {
	switch {
	case h.Score < 0.4:
		return LevelWeak
	case h.Score >= 0.75:
		return LevelStrong
	default:
		return LevelFair
	}
}
