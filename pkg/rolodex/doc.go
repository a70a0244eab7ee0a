// Package rolodex computes per-card render states for the pack browser's
// card rolodex from live scroll geometry.
//
// The engine is a pure function of a position snapshot: the scroll view
// reports the top-edge Y coordinate of every laid-out card on each layout
// pass, and the engine assigns each card a vertical offset, a 3D tilt
// angle, a stacking z-index, and a prominence flag. The renderer applies
// those targets with its own time-based interpolation; the engine keeps no
// clock and no state, so it is safe (and cheap) to call on every scroll
// tick.
//
// # Zones
//
// Cards occupy one of three zones relative to the prominence line:
//
//   - Stacked: already scrolled past, collapsing flat above the viewport
//     top. Only the most recent MaxVisibleStackDepth cards rest at distinct
//     offsets; older ones share the base offset beneath the front of the
//     stack.
//   - Prominent: exactly one card sits flat in the fixed prominence slot.
//     A scroll anchor, when set, is authoritative; otherwise the card
//     nearest the prominence line is inferred.
//   - Angled: not yet reached, rendered at a fixed tilt that fades to zero
//     as the card approaches the prominence band.
//
// # Usage
//
//	eng, err := rolodex.New(rolodex.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//
//	var prev rolodex.PositionSnapshot
//	for snap := range scrollEvents {
//	    states := eng.ComputeRenderStates(cards, snap, anchor, prev)
//	    if eng.Changed(snap, prev) {
//	        prev = snap
//	    }
//	    render(states)
//	}
//
// Interval conventions: a card is stacked when its position is strictly
// below the prominence line; the prominence band is the closed interval
// [line, line+cardHeight]; the angled zone is strictly beyond the band.
package rolodex
