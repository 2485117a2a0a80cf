package main

import (
	"context"
	"log"
	"time"

	"github.com/lixenwraith/breakout/audio"
	"github.com/lixenwraith/breakout/config"
	"github.com/lixenwraith/breakout/core"
	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/parameter"
	"github.com/lixenwraith/breakout/server"
	"github.com/lixenwraith/breakout/status"
)

// session wires one game to its scheduler and optional listeners
type session struct {
	game       *engine.Game
	sched      *engine.ClockScheduler
	updateDone <-chan struct{}

	stats     *status.Registry
	sounds    *audio.SoundManager
	spectator *server.Server
}

// newSession builds the game on source time and registers outcome handlers
// Handlers must be in place before the scheduler starts dispatching
func newSession(cfg *config.Config, source engine.TimeProvider, withAudio bool) *session {
	clock := engine.NewPausableClock(source)
	game := engine.NewGame(cfg.Profile(), clock)
	sched, updateDone := engine.NewClockScheduler(game, clock, cfg.Engine.TickInterval.Duration)

	s := &session{
		game:       game,
		sched:      sched,
		updateDone: updateDone,
		stats:      status.NewRegistry(),
	}

	game.Router().Register(engine.OutcomeLogger{})
	game.Router().Register(status.NewRecorder(s.stats))

	if withAudio && cfg.Audio.Enabled {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("audio: %v (continuing without audio)", err)
		} else {
			s.sounds = sm
			game.Router().Register(audio.NewSoundHandler(sm))
		}
	}
	return s
}

// startSpectator serves snapshots in the background when enabled
func (s *session) startSpectator(cfg *config.Config) {
	if !cfg.Spectator.Enabled {
		return
	}
	s.spectator = server.New(s.game, server.Options{
		Addr:           cfg.Spectator.Addr,
		BroadcastHz:    cfg.Spectator.BroadcastHz,
		AllowedOrigins: cfg.Spectator.AllowedOrigins,
		WriteWait:      parameter.SpectatorWriteWait,
		Stats:          s.stats,
	})
	srv := s.spectator
	core.Go(func() {
		if err := srv.ListenAndServe(); err != nil {
			log.Printf("spectator: %v", err)
		}
	})
}

// close stops every background part, safe to call once the host loop exits
func (s *session) close() {
	s.sched.Stop()

	if s.spectator != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := s.spectator.Shutdown(ctx); err != nil {
			log.Printf("spectator: %v", err)
		}
		cancel()
	}

	if s.sounds != nil {
		s.sounds.Cleanup()
	}
}
