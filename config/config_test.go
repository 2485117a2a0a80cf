package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/breakout/physics"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
	if cfg.Profile() != physics.DefaultProfile() {
		t.Errorf("Expected default config to yield the default profile, got %+v", cfg.Profile())
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeFile(t, "breakout.toml", `
[engine]
tick_interval = "10ms"

[physics]
brick_rows = 3
brick_columns = 4
ball_speed_x = 6.5

[spectator]
enabled = true
addr = "127.0.0.1:9000"
allowed_origins = ["http://localhost:3000"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Engine.TickInterval.Duration != 10*time.Millisecond {
		t.Errorf("Expected 10ms tick, got %v", cfg.Engine.TickInterval)
	}
	if cfg.Physics.BrickRows != 3 || cfg.Physics.BrickColumns != 4 {
		t.Errorf("Expected 3x4 grid, got %dx%d", cfg.Physics.BrickRows, cfg.Physics.BrickColumns)
	}
	if cfg.Physics.BallSpeedX != 6.5 {
		t.Errorf("Expected ball speed 6.5, got %v", cfg.Physics.BallSpeedX)
	}
	// Untouched keys keep defaults
	if cfg.Physics.BallRadius != Default().Physics.BallRadius {
		t.Errorf("Expected default ball radius, got %v", cfg.Physics.BallRadius)
	}
	if !cfg.Spectator.Enabled || cfg.Spectator.Addr != "127.0.0.1:9000" {
		t.Errorf("Unexpected spectator config %+v", cfg.Spectator)
	}
	if len(cfg.Spectator.AllowedOrigins) != 1 || cfg.Spectator.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("Unexpected origins %v", cfg.Spectator.AllowedOrigins)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
			t.Error("Expected error for missing file")
		}
	})

	t.Run("malformed duration", func(t *testing.T) {
		path := writeFile(t, "bad.toml", "[engine]\ntick_interval = \"soon\"\n")
		if _, err := Load(path); err == nil {
			t.Error("Expected error for malformed duration")
		}
	})

	t.Run("empty grid", func(t *testing.T) {
		path := writeFile(t, "grid.toml", "[physics]\nbrick_rows = 0\n")
		_, err := Load(path)
		if !errors.Is(err, ErrEmptyGrid) {
			t.Errorf("Expected ErrEmptyGrid, got %v", err)
		}
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BREAKOUT_TICK_INTERVAL", "8ms")
	t.Setenv("BREAKOUT_AUDIO", "false")
	t.Setenv("BREAKOUT_SPECTATOR_ADDR", ":7000")
	t.Setenv("BREAKOUT_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("BREAKOUT_HEADLESS_TICKS", "500")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Engine.TickInterval.Duration != 8*time.Millisecond {
		t.Errorf("Expected 8ms tick, got %v", cfg.Engine.TickInterval)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
	if !cfg.Spectator.Enabled || cfg.Spectator.Addr != ":7000" {
		t.Errorf("Expected spectator enabled on :7000, got %+v", cfg.Spectator)
	}
	if len(cfg.Spectator.AllowedOrigins) != 2 {
		t.Errorf("Expected 2 origins, got %v", cfg.Spectator.AllowedOrigins)
	}
	if cfg.Headless.MaxTicks != 500 {
		t.Errorf("Expected 500 headless ticks, got %d", cfg.Headless.MaxTicks)
	}
}

func TestEnvOverrideRejectsGarbage(t *testing.T) {
	t.Setenv("BREAKOUT_BRICK_ROWS", "many")
	if _, err := Load(""); err == nil {
		t.Error("Expected error for non-numeric BREAKOUT_BRICK_ROWS")
	}
}

func TestLoadEnvFile(t *testing.T) {
	const key = "BREAKOUT_SPECTATOR_HZ"
	os.Unsetenv(key)
	t.Cleanup(func() { os.Unsetenv(key) })

	path := writeFile(t, ".env", key+"=12\n")
	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Spectator.BroadcastHz != 12 {
		t.Errorf("Expected broadcast 12 Hz from .env, got %d", cfg.Spectator.BroadcastHz)
	}

	if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("Expected error for explicit missing env file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero tick", func(c *Config) { c.Engine.TickInterval.Duration = 0 }, ErrInvalidInterval},
		{"negative frame", func(c *Config) { c.Engine.FrameInterval.Duration = -time.Millisecond }, ErrInvalidInterval},
		{"zero radius", func(c *Config) { c.Physics.BallRadius = 0 }, ErrInvalidGeometry},
		{"negative gap", func(c *Config) { c.Physics.BrickGap = -1 }, ErrInvalidGeometry},
		{"still ball", func(c *Config) { c.Physics.BallSpeedX, c.Physics.BallSpeedY = 0, 0 }, ErrInvalidGeometry},
		{"no columns", func(c *Config) { c.Physics.BrickColumns = 0 }, ErrEmptyGrid},
		{"zero cell", func(c *Config) { c.Terminal.CellHeight = 0 }, ErrInvalidCell},
		{"zero rate", func(c *Config) { c.Spectator.BroadcastHz = 0 }, ErrInvalidRate},
		{"headless size", func(c *Config) { c.Headless.Width = 0 }, ErrInvalidGeometry},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	cfg := Default()
	cfg.Physics.BrickRows = 2
	cfg.Engine.TickInterval.Duration = 20 * time.Millisecond

	path := filepath.Join(t.TempDir(), "saved.toml")
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Physics.BrickRows != 2 || loaded.Engine.TickInterval.Duration != 20*time.Millisecond {
		t.Errorf("Saved settings not restored: rows=%d tick=%v", loaded.Physics.BrickRows, loaded.Engine.TickInterval)
	}
}
