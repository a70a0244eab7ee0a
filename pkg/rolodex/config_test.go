package rolodex

import (
	"testing"

	"github.com/versedeck/versedeck/pkg/errors"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "Defaults", mutate: func(c *Config) {}},
		{name: "ZeroCardHeight", mutate: func(c *Config) { c.CardHeight = 0 }, wantErr: true},
		{name: "NegativeFadeDistance", mutate: func(c *Config) { c.FadeDistance = -1 }, wantErr: true},
		{name: "ZeroSettleDistance", mutate: func(c *Config) { c.StackSettleDistance = 0 }, wantErr: true},
		{name: "ZeroStackDepth", mutate: func(c *Config) { c.MaxVisibleStackDepth = 0 }, wantErr: true},
		{name: "NegativeTolerance", mutate: func(c *Config) { c.PositionTolerance = -0.1 }, wantErr: true},
		{name: "NegativeStep", mutate: func(c *Config) { c.StackStepOffset = -2 }, wantErr: true},
		{name: "TiltPast90", mutate: func(c *Config) { c.AngledTiltDegrees = 91 }, wantErr: true},
		{name: "NegativeGap", mutate: func(c *Config) { c.GapOffset = -5 }, wantErr: true},
		{name: "ZeroToleranceAllowed", mutate: func(c *Config) { c.PositionTolerance = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() = nil, want error")
				}
				if !errors.Is(err, errors.ErrCodeInvalidConfig) {
					t.Errorf("error code = %v, want INVALID_CONFIG", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FadeDistance = 0

	if _, err := New(cfg); err == nil {
		t.Fatal("New accepted a zero fade distance")
	}
}
