package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/breakout/config"
	"github.com/lixenwraith/breakout/core"
	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/input"
	"github.com/lixenwraith/breakout/physics"
	"github.com/lixenwraith/breakout/render"
)

// runTerminal plays interactively in the terminal until the player quits
func runTerminal(cfg *config.Config, withAudio bool) (*physics.Snapshot, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashTerminal(screen)
	defer func() {
		core.SetCrashTerminal(nil)
		screen.Fini()
	}()

	screen.EnableMouse()
	screen.HideCursor()

	s := newSession(cfg, engine.NewMonotonicTimeProvider(), withAudio)
	defer s.close()

	renderer := render.NewTerminalRenderer(screen, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)
	handler := input.NewHandler(s.game, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight, cfg.Physics.PaddleKeyStep)
	handler.OnResize = func(cols, rows int) {
		renderer.Resize(cols, rows)
		screen.Sync()
	}
	handler.Resize(screen.Size())

	s.startSpectator(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.sched.Start(ctx)

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(cfg.Engine.FrameInterval.Duration)
	defer frameTicker.Stop()

	dirty := true
	for {
		select {
		case ev := <-eventChan:
			if !handler.HandleEvent(ev) {
				return s.game.Snapshot(), nil
			}
			dirty = true

		case <-s.updateDone:
			dirty = true

		case <-frameTicker.C:
			if dirty {
				renderer.RenderFrame(s.game.Snapshot())
				dirty = false
			}
		}
	}
}
