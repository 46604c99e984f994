package game

import (
	"time"

	"github.com/pkg/errors"

	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// Config holds everything a session needs to build its state
type Config struct {
	Grid                 types.Grid
	InitialLength        int
	BaseInterval         time.Duration
	BoostMultiplier      float64
	QuickPressThreshold  time.Duration
	SpeedResetDelay      time.Duration
	RequiredQuickPresses int
	Seed                 uint64
}

func DefaultConfig() Config {
	return Config{
		Grid:                 types.DefaultGrid(),
		InitialLength:        types.InitialSnakeLength,
		BaseInterval:         types.BaseInterval,
		BoostMultiplier:      types.SpeedBoostMultiplier,
		QuickPressThreshold:  types.QuickPressThreshold,
		SpeedResetDelay:      types.SpeedResetDelay,
		RequiredQuickPresses: types.RequiredQuickPresses,
	}
}

func (c Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return errors.Errorf("invalid grid %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.InitialLength < 1 || c.InitialLength > c.Grid.Width/2+1 {
		return errors.Errorf("initial length %d does not fit a %d wide grid", c.InitialLength, c.Grid.Width)
	}
	if c.BaseInterval <= 0 {
		return errors.Errorf("base interval must be positive, got %v", c.BaseInterval)
	}
	if c.BoostMultiplier <= 0 || c.BoostMultiplier > 1 {
		return errors.Errorf("boost multiplier must be in (0,1], got %v", c.BoostMultiplier)
	}
	if c.QuickPressThreshold <= 0 || c.SpeedResetDelay <= 0 {
		return errors.New("press threshold and reset delay must be positive")
	}
	if c.RequiredQuickPresses < 2 {
		return errors.Errorf("at least two presses are needed to measure a gap, got %d", c.RequiredQuickPresses)
	}
	return nil
}

func (c Config) speedConfig() manager.SpeedConfig {
	return manager.SpeedConfig{
		BaseInterval:         c.BaseInterval,
		BoostMultiplier:      c.BoostMultiplier,
		QuickPressThreshold:  c.QuickPressThreshold,
		ResetDelay:           c.SpeedResetDelay,
		RequiredQuickPresses: c.RequiredQuickPresses,
	}
}
