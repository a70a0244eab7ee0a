package rolodex

import "math"

// CardID identifies a card. Cards map 1:1 to verse records; the engine
// treats the ID as opaque.
type CardID string

// PositionSnapshot maps each laid-out card to the Y coordinate of its top
// edge within the scroll coordinate space (0 at the top of content,
// increasing downward). A snapshot is produced once per layout pass and
// superseded wholesale by the next one; it is never mutated in place.
type PositionSnapshot map[CardID]float64

// Clone returns an independent copy of the snapshot.
func (s PositionSnapshot) Clone() PositionSnapshot {
	if s == nil {
		return nil
	}
	out := make(PositionSnapshot, len(s))
	for id, p := range s {
		out[id] = p
	}
	return out
}

// Changed reports whether next differs from previous by more than the
// configured tolerance. A snapshot is accepted when any single entry moved
// beyond PositionTolerance, or when the set of cards itself changed;
// otherwise the caller must retain previous, so that sub-pixel jitter from
// continuous scroll reporting cannot feed back into an endless re-render
// loop.
func (e *Engine) Changed(next, previous PositionSnapshot) bool {
	if len(next) != len(previous) {
		return true
	}
	for id, p := range next {
		prev, ok := previous[id]
		if !ok {
			return true
		}
		if math.Abs(p-prev) > e.cfg.PositionTolerance {
			return true
		}
	}
	return false
}
