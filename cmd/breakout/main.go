package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/lixenwraith/breakout/config"
	"github.com/lixenwraith/breakout/physics"
)

var (
	configFlag      = flag.String("config", "", "TOML config file")
	envFlag         = flag.String("env", "", "env file with BREAKOUT_* overrides (default ./.env if present)")
	debugFlag       = flag.Bool("debug", false, "write debug log to logs/breakout.log")
	headlessFlag    = flag.Bool("headless", false, "run without a terminal UI, paddle on autopilot")
	ticksFlag       = flag.Int("ticks", 0, "headless tick limit (0 uses config)")
	spectateFlag    = flag.String("spectate", "", "serve spectator HTTP/websocket on this address")
	muteFlag        = flag.Bool("mute", false, "disable sound effects")
	writeConfigFlag = flag.String("write-config", "", "write the effective config to this path and exit")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := config.LoadEnvFile(*envFlag); err != nil {
		fmt.Fprintf(os.Stderr, "breakout: %v\n", err)
		return 1
	}
	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "breakout: %v\n", err)
		return 1
	}
	applyFlags(cfg)

	if *writeConfigFlag != "" {
		if err := cfg.Save(*writeConfigFlag); err != nil {
			fmt.Fprintf(os.Stderr, "breakout: %v\n", err)
			return 1
		}
		return 0
	}

	start := time.Now()
	var final *physics.Snapshot
	if *headlessFlag || !term.IsTerminal(int(os.Stdout.Fd())) {
		final = runHeadless(cfg, cfg.Headless.MaxTicks)
	} else {
		final, err = runTerminal(cfg, true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "breakout: %v\n", err)
			return 1
		}
	}

	fmt.Println(renderSummary(final, time.Since(start)))
	return 0
}

// applyFlags layers command-line overrides over the loaded config
func applyFlags(cfg *config.Config) {
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if *spectateFlag != "" {
		cfg.Spectator.Enabled = true
		cfg.Spectator.Addr = *spectateFlag
	}
	if *ticksFlag > 0 {
		cfg.Headless.MaxTicks = *ticksFlag
	}
}
