// Breakout-gui hosts the same engine in an ebiten window.
// Drag with the left mouse button or use the arrow keys to move the paddle.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/breakout/audio"
	"github.com/lixenwraith/breakout/config"
	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/parameter"
	"github.com/lixenwraith/breakout/physics"
	"github.com/lixenwraith/breakout/render"
)

var (
	configFlag = flag.String("config", "", "TOML config file")
	envFlag    = flag.String("env", "", "env file with BREAKOUT_* overrides")
	muteFlag   = flag.Bool("mute", false, "disable sound effects")
)

var (
	colorBackground = color.RGBA{26, 27, 38, 255}
	colorPaddle     = color.RGBA{135, 206, 250, 255}
	colorBall       = color.RGBA{255, 255, 255, 255}
)

// window adapts engine.Game to ebiten.Game
// Update pumps the scheduler on ebiten's goroutine, so routed handlers run there too
type window struct {
	game  *engine.Game
	sched *engine.ClockScheduler
	fades *render.FadeTracker
	cfg   *config.Config

	width, height int

	dragging bool
	lastX    int
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.game.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.game.TogglePause()
	}

	step := w.cfg.Physics.PaddleKeyStep
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		w.game.DragPaddle(-step)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		w.game.DragPaddle(step)
	}

	mx, _ := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if w.dragging && mx != w.lastX {
			w.game.DragPaddle(float64(mx - w.lastX))
		}
		w.dragging = true
		w.lastX = mx
	} else {
		w.dragging = false
	}

	w.sched.Pump()
	w.fades.Update(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	s := w.game.Snapshot()
	if s == nil || !s.Ready {
		ebitenutil.DebugPrint(screen, "measuring...")
		return
	}

	rows := 1
	if s.Columns > 0 {
		rows = (len(s.Bricks) + s.Columns - 1) / s.Columns
	}
	for i := range s.Bricks {
		b := &s.Bricks[i]
		alpha := w.fades.Alpha(i, b.Destroyed)
		if alpha <= 0 {
			continue
		}
		r, g, bl := render.BrickColor(b.Row, rows).RGB()
		c := color.NRGBA{uint8(r), uint8(g), uint8(bl), uint8(alpha * 255)}
		vector.DrawFilledRect(screen,
			float32(b.Left), float32(b.Top),
			float32(b.Right-b.Left), float32(b.Bottom-b.Top),
			c, false)
	}

	vector.DrawFilledRect(screen,
		float32(s.Paddle.X), float32(s.PaddleY),
		float32(s.Paddle.Width), float32(s.Paddle.Height),
		colorPaddle, false)
	vector.DrawFilledCircle(screen,
		float32(s.Ball.X), float32(s.Ball.Y), float32(s.Ball.Radius),
		colorBall, true)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Score %d  Left %d  Tick %d", s.Score, s.Remaining(), s.Tick))

	var overlay string
	switch {
	case s.State == physics.StateWon:
		overlay = parameter.WonText
	case s.State == physics.StateLost:
		overlay = parameter.LostText
	case s.Paused:
		overlay = parameter.PausedText
	}
	if overlay != "" {
		// DebugPrint glyphs are 6px wide
		ebitenutil.DebugPrintAt(screen, overlay, w.width/2-len(overlay)*3, w.height/2)
	}
}

// Layout reports the window size as the play area, redelivery of the same size is a no-op
func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != w.width || outsideHeight != w.height {
		w.width, w.height = outsideWidth, outsideHeight
		w.game.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)

	if err := config.LoadEnvFile(*envFlag); err != nil {
		log.Fatalf("breakout-gui: %v", err)
	}
	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("breakout-gui: %v", err)
	}

	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	game := engine.NewGame(cfg.Profile(), clock)
	sched, _ := engine.NewClockScheduler(game, clock, cfg.Engine.TickInterval.Duration)

	fades := render.NewFadeTracker(parameter.BrickFadeSecs)
	game.Router().Register(fades)
	game.Router().Register(engine.OutcomeLogger{})

	if cfg.Audio.Enabled && !*muteFlag {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("audio: %v (continuing without audio)", err)
		} else {
			defer sm.Cleanup()
			game.Router().Register(audio.NewSoundHandler(sm))
		}
	}

	ebiten.SetWindowSize(parameter.WindowWidth, parameter.WindowHeight)
	ebiten.SetWindowTitle(parameter.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	w := &window{game: game, sched: sched, fades: fades, cfg: cfg}
	if err := ebiten.RunGame(w); err != nil {
		log.Fatal(err)
	}
}
