package main

import (
	"time"

	"github.com/lixenwraith/breakout/config"
	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/input"
	"github.com/lixenwraith/breakout/physics"
)

// runHeadless plays with the autopilot for up to maxTicks ticks as fast as possible
// Used when stdout is not a terminal; ticks ignore the wall clock
func runHeadless(cfg *config.Config, maxTicks int) *physics.Snapshot {
	s := newSession(cfg, engine.NewMockTimeProvider(time.Unix(0, 0)), false)
	s.startSpectator(cfg)
	defer s.close()

	s.game.Resize(cfg.Headless.Width, cfg.Headless.Height)
	s.sched.RunTicks(0)

	for i := 0; i < maxTicks; i++ {
		s.game.DragPaddle(input.Autopilot(s.game.Snapshot(), cfg.Physics.AutopilotMaxStep))
		if s.sched.RunTicks(1) == 0 {
			break
		}
	}
	return s.game.Snapshot()
}
