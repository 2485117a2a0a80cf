package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const envPrefix = "BREAKOUT_"

// applyEnv overrides fields from BREAKOUT_* variables
func (c *Config) applyEnv() error {
	overrides := []struct {
		key   string
		apply func(string) error
	}{
		{"TICK_INTERVAL", durationVar(&c.Engine.TickInterval)},
		{"FRAME_INTERVAL", durationVar(&c.Engine.FrameInterval)},
		{"BRICK_ROWS", intVar(&c.Physics.BrickRows)},
		{"BRICK_COLUMNS", intVar(&c.Physics.BrickColumns)},
		{"BALL_SPEED_X", floatVar(&c.Physics.BallSpeedX)},
		{"BALL_SPEED_Y", floatVar(&c.Physics.BallSpeedY)},
		{"CELL_WIDTH", floatVar(&c.Terminal.CellWidth)},
		{"CELL_HEIGHT", floatVar(&c.Terminal.CellHeight)},
		{"AUDIO", boolVar(&c.Audio.Enabled)},
		{"SPECTATOR", boolVar(&c.Spectator.Enabled)},
		{"SPECTATOR_ADDR", func(v string) error {
			c.Spectator.Addr = v
			c.Spectator.Enabled = true
			return nil
		}},
		{"SPECTATOR_HZ", intVar(&c.Spectator.BroadcastHz)},
		{"ALLOWED_ORIGINS", func(v string) error {
			c.Spectator.AllowedOrigins = splitList(v)
			return nil
		}},
		{"HEADLESS_TICKS", intVar(&c.Headless.MaxTicks)},
	}

	for _, o := range overrides {
		v, ok := os.LookupEnv(envPrefix + o.key)
		if !ok {
			continue
		}
		if err := o.apply(v); err != nil {
			return fmt.Errorf("%s%s=%q: %w", envPrefix, o.key, v, err)
		}
	}
	return nil
}

func durationVar(dst *Duration) func(string) error {
	return func(v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		dst.Duration = d
		return nil
	}
}

func intVar(dst *int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

func floatVar(dst *float64) func(string) error {
	return func(v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*dst = f
		return nil
	}
}

func boolVar(dst *bool) func(string) error {
	return func(v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*dst = b
		return nil
	}
}
