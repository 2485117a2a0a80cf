// Package config loads runtime settings from a TOML file, an optional .env file and
// BREAKOUT_* environment variables, in that order of precedence (lowest first)
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/breakout/parameter"
	"github.com/lixenwraith/breakout/physics"
)

var (
	ErrInvalidInterval = errors.New("interval must be positive")
	ErrInvalidGeometry = errors.New("geometry must be positive")
	ErrEmptyGrid       = errors.New("brick grid must have at least one row and column")
	ErrInvalidCell     = errors.New("terminal cell size must be positive")
	ErrInvalidRate     = errors.New("broadcast rate must be positive")
)

// Duration decodes TOML strings like "16ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type EngineConfig struct {
	TickInterval  Duration `toml:"tick_interval"`
	FrameInterval Duration `toml:"frame_interval"`
}

type PhysicsConfig struct {
	BallRadius float64 `toml:"ball_radius"`
	BallSpeedX float64 `toml:"ball_speed_x"`
	BallSpeedY float64 `toml:"ball_speed_y"`

	PaddleWidth  float64 `toml:"paddle_width"`
	PaddleHeight float64 `toml:"paddle_height"`
	PaddleMargin float64 `toml:"paddle_margin"`

	BrickRows      int     `toml:"brick_rows"`
	BrickColumns   int     `toml:"brick_columns"`
	BrickHeight    float64 `toml:"brick_height"`
	BrickGap       float64 `toml:"brick_gap"`
	BrickTopOffset float64 `toml:"brick_top_offset"`

	PaddleKeyStep    float64 `toml:"paddle_key_step"`
	AutopilotMaxStep float64 `toml:"autopilot_max_step"`
}

// TerminalConfig maps one character cell to play-area pixels
type TerminalConfig struct {
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

type SpectatorConfig struct {
	Enabled        bool     `toml:"enabled"`
	Addr           string   `toml:"addr"`
	BroadcastHz    int      `toml:"broadcast_hz"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

type HeadlessConfig struct {
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	MaxTicks int     `toml:"max_ticks"`
}

type Config struct {
	Engine    EngineConfig    `toml:"engine"`
	Physics   PhysicsConfig   `toml:"physics"`
	Terminal  TerminalConfig  `toml:"terminal"`
	Audio     AudioConfig     `toml:"audio"`
	Spectator SpectatorConfig `toml:"spectator"`
	Headless  HeadlessConfig  `toml:"headless"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			TickInterval:  Duration{parameter.GameUpdateInterval},
			FrameInterval: Duration{parameter.FrameUpdateInterval},
		},
		Physics: PhysicsConfig{
			BallRadius:       parameter.BallRadius,
			BallSpeedX:       parameter.BallSpeedX,
			BallSpeedY:       parameter.BallSpeedY,
			PaddleWidth:      parameter.PaddleWidth,
			PaddleHeight:     parameter.PaddleHeight,
			PaddleMargin:     parameter.PaddleMargin,
			BrickRows:        parameter.BrickRows,
			BrickColumns:     parameter.BrickColumns,
			BrickHeight:      parameter.BrickHeight,
			BrickGap:         parameter.BrickGap,
			BrickTopOffset:   parameter.BrickTopOffset,
			PaddleKeyStep:    parameter.PaddleKeyStep,
			AutopilotMaxStep: parameter.AutopilotMaxStep,
		},
		Terminal: TerminalConfig{
			CellWidth:  parameter.CellWidth,
			CellHeight: parameter.CellHeight,
		},
		Audio: AudioConfig{Enabled: true},
		Spectator: SpectatorConfig{
			Addr:           parameter.SpectatorAddr,
			BroadcastHz:    parameter.SpectatorBroadcastHz,
			AllowedOrigins: []string{"*"},
		},
		Headless: HeadlessConfig{
			Width:    parameter.HeadlessWidth,
			Height:   parameter.HeadlessHeight,
			MaxTicks: parameter.HeadlessMaxTicks,
		},
	}
}

// Load decodes path over the defaults, applies environment overrides and validates
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		for _, key := range md.Undecoded() {
			log.Printf("config: ignoring unknown key %q in %s", key.String(), path)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnvFile loads variables from a .env file without overriding the process environment
// An empty path tries ./.env and tolerates its absence
func LoadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("env file: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("env file %s: %w", path, err)
	}
	return nil
}

// Save writes cfg as TOML to path
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// Validate rejects settings the engine cannot run with
func (c *Config) Validate() error {
	if c.Engine.TickInterval.Duration <= 0 {
		return fmt.Errorf("engine.tick_interval %v: %w", c.Engine.TickInterval, ErrInvalidInterval)
	}
	if c.Engine.FrameInterval.Duration <= 0 {
		return fmt.Errorf("engine.frame_interval %v: %w", c.Engine.FrameInterval, ErrInvalidInterval)
	}

	p := c.Physics
	positive := []struct {
		name string
		v    float64
	}{
		{"physics.ball_radius", p.BallRadius},
		{"physics.paddle_width", p.PaddleWidth},
		{"physics.paddle_height", p.PaddleHeight},
		{"physics.brick_height", p.BrickHeight},
		{"headless.width", c.Headless.Width},
		{"headless.height", c.Headless.Height},
	}
	for _, f := range positive {
		if f.v <= 0 {
			return fmt.Errorf("%s %v: %w", f.name, f.v, ErrInvalidGeometry)
		}
	}
	if p.PaddleMargin < 0 || p.BrickGap < 0 || p.BrickTopOffset < 0 {
		return fmt.Errorf("physics margins must not be negative: %w", ErrInvalidGeometry)
	}
	if p.BallSpeedX == 0 && p.BallSpeedY == 0 {
		return fmt.Errorf("physics ball speed is zero: %w", ErrInvalidGeometry)
	}
	if p.BrickRows <= 0 || p.BrickColumns <= 0 {
		return fmt.Errorf("physics grid %dx%d: %w", p.BrickRows, p.BrickColumns, ErrEmptyGrid)
	}

	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("terminal cell %vx%v: %w", c.Terminal.CellWidth, c.Terminal.CellHeight, ErrInvalidCell)
	}
	if c.Spectator.BroadcastHz <= 0 {
		return fmt.Errorf("spectator.broadcast_hz %d: %w", c.Spectator.BroadcastHz, ErrInvalidRate)
	}
	return nil
}

// Profile returns the physics layout described by the config
func (c *Config) Profile() physics.Profile {
	p := c.Physics
	return physics.Profile{
		BallRadius:     p.BallRadius,
		BallSpeedX:     p.BallSpeedX,
		BallSpeedY:     p.BallSpeedY,
		PaddleWidth:    p.PaddleWidth,
		PaddleHeight:   p.PaddleHeight,
		PaddleMargin:   p.PaddleMargin,
		BrickRows:      p.BrickRows,
		BrickColumns:   p.BrickColumns,
		BrickHeight:    p.BrickHeight,
		BrickGap:       p.BrickGap,
		BrickTopOffset: p.BrickTopOffset,
	}
}

// splitList parses a comma separated env value, dropping blanks
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
