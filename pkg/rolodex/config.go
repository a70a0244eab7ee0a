package rolodex

import "github.com/versedeck/versedeck/pkg/errors"

// Config holds the fixed layout constants the engine computes against.
// All values are in layout units except AngledTiltDegrees (degrees) and
// MaxVisibleStackDepth (count).
type Config struct {
	// ProminenceLine is the Y position of the fixed prominence slot.
	ProminenceLine float64 `toml:"prominence_line"`

	// CardHeight is the uniform card height. It sizes the prominence band
	// and drives the index-based position estimate for cards the scroll
	// view has not laid out yet.
	CardHeight float64 `toml:"card_height"`

	// StackBaseOffset is the resting vertical offset of the deepest
	// visible stacked card; StackStepOffset is added per visible rank.
	StackBaseOffset float64 `toml:"stack_base_offset"`
	StackStepOffset float64 `toml:"stack_step_offset"`

	// AngledTiltDegrees is the tilt applied to cards not yet reached.
	AngledTiltDegrees float64 `toml:"angled_tilt_degrees"`

	// FadeDistance is the distance over which tilt and the prominence
	// factor interpolate around the prominence line.
	FadeDistance float64 `toml:"fade_distance"`

	// MaxVisibleStackDepth is how many stacked cards rest at distinct
	// offsets before older ones collapse onto the base offset.
	MaxVisibleStackDepth int `toml:"max_visible_stack_depth"`

	// PositionTolerance is the minimum per-entry movement required to
	// accept a new snapshot. Gating out sub-tolerance snapshots prevents
	// re-render feedback loops caused by floating-point jitter in
	// continuous scroll reporting.
	PositionTolerance float64 `toml:"position_tolerance"`

	// StackSettleDistance is the scroll distance over which a card
	// entering the stack eases from the prominence slot into its resting
	// offset.
	StackSettleDistance float64 `toml:"stack_settle_distance"`

	// GapOffset is the extra offset applied to the single angled card
	// nearest the prominence band, keeping it clear of the prominent card
	// until it is about to enter. It tapers to zero at the band edge.
	GapOffset float64 `toml:"gap_offset"`
}

// DefaultConfig returns the tuned constants used by the pack browser.
func DefaultConfig() Config {
	return Config{
		ProminenceLine:       16,
		CardHeight:           160,
		StackBaseOffset:      12,
		StackStepOffset:      6,
		AngledTiltDegrees:    55,
		FadeDistance:         80,
		MaxVisibleStackDepth: 3,
		PositionTolerance:    0.5,
		StackSettleDistance:  24,
		GapOffset:            20,
	}
}

// Validate checks the constants once at startup. A bad constant is a
// programmer or configuration error, never a runtime failure path: the
// engine itself is total over its input domain.
func (c Config) Validate() error {
	switch {
	case c.CardHeight <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "card_height must be positive, got %v", c.CardHeight)
	case c.FadeDistance <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "fade_distance must be positive, got %v", c.FadeDistance)
	case c.StackSettleDistance <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "stack_settle_distance must be positive, got %v", c.StackSettleDistance)
	case c.MaxVisibleStackDepth < 1:
		return errors.New(errors.ErrCodeInvalidConfig, "max_visible_stack_depth must be at least 1, got %d", c.MaxVisibleStackDepth)
	case c.PositionTolerance < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "position_tolerance cannot be negative, got %v", c.PositionTolerance)
	case c.StackStepOffset < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "stack_step_offset cannot be negative, got %v", c.StackStepOffset)
	case c.AngledTiltDegrees < 0 || c.AngledTiltDegrees > 90:
		return errors.New(errors.ErrCodeInvalidConfig, "angled_tilt_degrees must be within [0, 90], got %v", c.AngledTiltDegrees)
	case c.GapOffset < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "gap_offset cannot be negative, got %v", c.GapOffset)
	}
	return nil
}
