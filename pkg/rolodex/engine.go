package rolodex

import (
	"math"
	"sort"
)

// RenderState is the per-card output of the engine: target values the
// renderer animates toward. It holds no identity or lifetime of its own
// and is recomputed on demand.
type RenderState struct {
	// VerticalOffset is the displacement the renderer adds to the card's
	// natural laid-out position, in layout units.
	VerticalOffset float64 `json:"vertical_offset"`

	// TiltDegrees is the 3D lean-back angle. 0 renders the card flat.
	TiltDegrees float64 `json:"tilt_degrees"`

	// ZIndex orders drawing, lowest first. Hidden stack overflow draws
	// beneath visible stacked cards, which draw beneath the prominent
	// card, which draws beneath angled cards.
	ZIndex float64 `json:"z_index"`

	// IsProminent marks the card occupying the prominence slot.
	IsProminent bool `json:"is_prominent"`

	// ProminenceFactor is 1 - min(1, |position-line| / fadeDistance),
	// computed for every card independent of the anchor. It drives
	// secondary emphasis such as full text versus reference-only display.
	ProminenceFactor float64 `json:"prominence_factor"`
}

// Engine computes render states from position snapshots. It is stateless
// and safe for concurrent use once constructed.
type Engine struct {
	cfg Config
}

// New creates an engine after validating the layout constants.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the constants the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// ComputeRenderStates assigns a render state to every card in cards.
//
// snapshot carries the reported top-edge position of each laid-out card;
// cards missing from it fall back to an index-based estimate derived from
// CardHeight. anchor is the card the scroll view considers snapped to the
// top; the empty ID means unset, and an anchor that is no longer in cards
// (a filter change removed it) re-anchors to the first card. previous is
// the last accepted snapshot: when no entry of snapshot moved beyond the
// tolerance, the engine computes from previous instead, so repeated jitter
// yields byte-identical output.
//
// The computation is pure and never fails; an empty card list returns an
// empty map.
func (e *Engine) ComputeRenderStates(cards []CardID, snapshot PositionSnapshot, anchor CardID, previous PositionSnapshot) map[CardID]RenderState {
	out := make(map[CardID]RenderState, len(cards))
	if len(cards) == 0 {
		return out
	}

	if len(previous) > 0 && !e.Changed(snapshot, previous) {
		snapshot = previous
	}
	pos := e.resolvePositions(cards, snapshot)

	if anchor != "" {
		found := false
		for _, id := range cards {
			if id == anchor {
				found = true
				break
			}
		}
		if !found {
			anchor = cards[0]
		}
	}

	line := e.cfg.ProminenceLine
	bandEnd := line + e.cfg.CardHeight

	// Partition into stacked and not-yet-passed cards. The anchor is
	// always the effective prominent card and joins neither group.
	var stacked, ahead []CardID
	for _, id := range cards {
		if id == anchor {
			continue
		}
		if pos[id] < line {
			stacked = append(stacked, id)
		} else {
			ahead = append(ahead, id)
		}
	}

	prominent := anchor
	if prominent == "" {
		best := math.Inf(1)
		for _, id := range ahead {
			if d := pos[id] - line; d < best {
				best = d
				prominent = id
			}
		}
	}

	// Z layers, lowest to highest: collapsed stack overflow, visible
	// stacked cards by rank, the prominent card, then angled cards with
	// the nearest drawn lowest among them. This fixed order guarantees the
	// prominent card is never occluded by either neighbor zone.
	depth := e.cfg.MaxVisibleStackDepth
	zHidden := 0.0
	zProminent := float64(depth + 1)
	zAngledBase := float64(depth + 2)

	sort.SliceStable(stacked, func(i, j int) bool { return pos[stacked[i]] < pos[stacked[j]] })
	hidden := len(stacked) - depth
	if hidden < 0 {
		hidden = 0
	}
	for rank, id := range stacked {
		st := RenderState{ProminenceFactor: e.prominenceFactor(pos[id])}
		if rank < hidden {
			// Bottomless-stack illusion: overflow shares one resting
			// position and draws as a single slab.
			st.VerticalOffset = e.cfg.StackBaseOffset
			st.ZIndex = zHidden
		} else {
			slot := rank - hidden
			resting := e.cfg.StackBaseOffset + float64(slot)*e.cfg.StackStepOffset
			t := (line - pos[id]) / e.cfg.StackSettleDistance
			st.VerticalOffset = resting * easeOutQuad(t)
			st.ZIndex = float64(1 + slot)
		}
		out[id] = st
	}

	sort.SliceStable(ahead, func(i, j int) bool { return pos[ahead[i]] < pos[ahead[j]] })
	angledIdx := 0
	for i, id := range ahead {
		p := pos[id]
		st := RenderState{
			TiltDegrees:      e.cfg.AngledTiltDegrees * clamp01((p-line)/e.cfg.FadeDistance),
			ProminenceFactor: e.prominenceFactor(p),
		}
		if id == prominent {
			st.ZIndex = zProminent
			st.IsProminent = st.ProminenceFactor >= 0.5
		} else {
			st.ZIndex = zAngledBase + float64(angledIdx)
			angledIdx++
		}
		// The nearest upcoming card keeps a gap from the prominent slot
		// until it is about to enter the band.
		if e.isNearestIncoming(ahead, i, prominent, anchor) {
			if d := p - bandEnd; d > 0 {
				st.VerticalOffset = e.cfg.GapOffset * easeOutQuad(d/e.cfg.FadeDistance)
			}
		}
		out[id] = st
	}

	if anchor != "" {
		// The anchored card never appears displaced, even mid-flight
		// during a fast programmatic scroll: geometry is overridden.
		out[anchor] = RenderState{
			VerticalOffset:   0,
			TiltDegrees:      0,
			ZIndex:           zProminent,
			IsProminent:      true,
			ProminenceFactor: e.prominenceFactor(pos[anchor]),
		}
	}

	return out
}

// isNearestIncoming reports whether ahead[i] is the single card closest to
// entering prominence: the first card in position order that does not
// already hold the prominence slot.
func (e *Engine) isNearestIncoming(ahead []CardID, i int, prominent, anchor CardID) bool {
	for j, id := range ahead {
		if id == prominent && anchor == "" {
			continue
		}
		return j == i
	}
	return false
}

// prominenceFactor is 1 at the prominence line and falls off linearly to 0
// at FadeDistance on either side.
func (e *Engine) prominenceFactor(p float64) float64 {
	return 1 - clamp01(math.Abs(p-e.cfg.ProminenceLine)/e.cfg.FadeDistance)
}

// resolvePositions fills in positions for cards the scroll view has not
// laid out yet. A missing card is estimated from the nearest card with a
// known position, displaced by the index distance times CardHeight; when
// nothing is known at all, the list is assumed to start at the prominence
// line.
func (e *Engine) resolvePositions(cards []CardID, snapshot PositionSnapshot) map[CardID]float64 {
	pos := make(map[CardID]float64, len(cards))
	known := -1
	for i, id := range cards {
		if p, ok := snapshot[id]; ok {
			pos[id] = p
			// Backfill earlier cards that had no nearer known neighbor.
			for j := known + 1; j < i; j++ {
				if _, ok := pos[cards[j]]; !ok {
					pos[cards[j]] = p - float64(i-j)*e.cfg.CardHeight
				}
			}
			known = i
		} else if known >= 0 {
			pos[id] = pos[cards[known]] + float64(i-known)*e.cfg.CardHeight
		}
	}
	if known == -1 {
		for i, id := range cards {
			pos[id] = e.cfg.ProminenceLine + float64(i)*e.cfg.CardHeight
		}
	}
	return pos
}
