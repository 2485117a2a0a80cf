package physics

import "fmt"

// GameState is the match outcome, Lost and Won are terminal until Reset
type GameState uint8

const (
	StatePlaying GameState = iota
	StateLost
	StateWon
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateLost:
		return "Lost"
	case StateWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the state ends the match
func (s GameState) Terminal() bool {
	return s == StateLost || s == StateWon
}

func (s GameState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *GameState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Playing":
		*s = StatePlaying
	case "Lost":
		*s = StateLost
	case "Won":
		*s = StateWon
	default:
		return fmt.Errorf("unknown game state %q", text)
	}
	return nil
}

// PlayArea is the measured region all positions are relative to (origin top-left)
type PlayArea struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Valid reports whether the area has been measured with positive dimensions
func (a PlayArea) Valid() bool {
	return a.Width > 0 && a.Height > 0
}

// Paddle is the player bat, X is its left edge
type Paddle struct {
	X      float64 `json:"x"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Brick is one destructible grid cell
type Brick struct {
	Rect
	Row       int  `json:"row"`
	Column    int  `json:"column"`
	Destroyed bool `json:"destroyed"`
}

// Contact flags what the ball touched during a tick
type Contact uint8

const (
	ContactWall Contact = 1 << iota
	ContactCeiling
	ContactPaddle
	ContactBrick
)

// StepResult reports what happened during one Step
type StepResult struct {
	Ran      bool
	Contacts Contact
	// Bricks holds indices destroyed this tick, reused by the next Step
	Bricks  []int
	State   GameState
	Changed bool
}

// World is the whole breakout simulation state
// Not safe for concurrent use; engine.Game serializes access
type World struct {
	profile Profile

	area    PlayArea
	laidOut bool

	ball   Ball
	paddle Paddle
	bricks []Brick

	state     GameState
	destroyed int
	tick      uint64

	hits []int
}

// NewWorld creates an unmeasured world, Step is a no-op until the first valid Resize
func NewWorld(p Profile) *World {
	w := &World{
		profile: p,
		bricks:  make([]Brick, p.BrickCount()),
		state:   StatePlaying,
		hits:    make([]int, 0, 4),
	}
	for i := range w.bricks {
		w.bricks[i].Row = i / p.BrickColumns
		w.bricks[i].Column = i % p.BrickColumns
	}
	return w
}

// Resize applies a play-area measurement
// The first valid measurement lays out the ball, paddle and bricks. Later measurements keep the
// match going: brick geometry is recomputed for the new size with destroyed flags intact, and the
// paddle and ball are clamped back into bounds. Non-positive dimensions are ignored
func (w *World) Resize(width, height float64) {
	area := PlayArea{Width: width, Height: height}
	if !area.Valid() {
		return
	}
	if w.laidOut && area == w.area {
		return
	}

	w.area = area
	w.layoutBricks()

	if !w.laidOut {
		w.laidOut = true
		w.placeBallAndPaddle()
		return
	}

	w.paddle.X = Clamp(w.paddle.X, 0, w.paddleMaxX())
	w.ball.X = Clamp(w.ball.X, w.ball.Radius, w.area.Width-w.ball.Radius)
	w.ball.Y = Clamp(w.ball.Y, w.ball.Radius, w.area.Height-w.ball.Radius)
}

// MovePaddle shifts the paddle by delta, clamped to [0, width-paddleWidth]
func (w *World) MovePaddle(delta float64) {
	if !w.laidOut {
		return
	}
	w.paddle.X = Clamp(w.paddle.X+delta, 0, w.paddleMaxX())
}

// Reset restores ball, paddle, bricks and state to the start of a match
func (w *World) Reset() {
	w.state = StatePlaying
	w.destroyed = 0
	w.tick = 0
	for i := range w.bricks {
		w.bricks[i].Destroyed = false
	}
	if w.laidOut {
		w.placeBallAndPaddle()
	}
}

// Step advances the simulation by one tick
// Order: integrate, paddle, side walls, ceiling, bricks, win check
func (w *World) Step() StepResult {
	w.hits = w.hits[:0]
	res := StepResult{State: w.state, Bricks: w.hits}
	if w.state != StatePlaying || !w.laidOut {
		return res
	}
	res.Ran = true
	w.tick++

	b := &w.ball
	Integrate(b)

	band := w.PaddleTop()
	if b.Y+b.Radius >= band {
		if b.X >= w.paddle.X && b.X <= w.paddle.X+w.paddle.Width {
			b.DY = -b.DY
			b.Y = band - b.Radius
			res.Contacts |= ContactPaddle
		} else if b.Y+b.Radius > w.area.Height {
			w.state = StateLost
			res.State = w.state
			res.Changed = true
			return res
		}
	}

	if ReflectBoundsX(b, 0, w.area.Width) {
		res.Contacts |= ContactWall
	}
	if ReflectTop(b, 0) {
		res.Contacts |= ContactCeiling
	}

	// Every overlapping brick reflects dy, two simultaneous hits cancel out
	for i := range w.bricks {
		br := &w.bricks[i]
		if br.Destroyed {
			continue
		}
		if CircleRectCollide(b.X, b.Y, b.Radius, br.Rect) {
			br.Destroyed = true
			w.destroyed++
			b.DY = -b.DY
			w.hits = append(w.hits, i)
			res.Contacts |= ContactBrick
		}
	}
	res.Bricks = w.hits

	if w.destroyed == len(w.bricks) {
		w.state = StateWon
		res.State = w.state
		res.Changed = true
	}
	return res
}

// PaddleTop is the y of the paddle band, the line the ball bottom bounces on
func (w *World) PaddleTop() float64 {
	return w.area.Height - w.profile.PaddleHeight - w.profile.PaddleMargin
}

func (w *World) State() GameState  { return w.state }
func (w *World) Area() PlayArea    { return w.area }
func (w *World) Ready() bool       { return w.laidOut }
func (w *World) Ball() Ball        { return w.ball }
func (w *World) Paddle() Paddle    { return w.paddle }
func (w *World) Tick() uint64      { return w.tick }
func (w *World) Destroyed() int    { return w.destroyed }
func (w *World) BrickCount() int   { return len(w.bricks) }
func (w *World) Profile() Profile  { return w.profile }
func (w *World) Brick(i int) Brick { return w.bricks[i] }

// Snapshot returns a copy safe to hand to other goroutines
func (w *World) Snapshot() *Snapshot {
	s := &Snapshot{
		Area:    w.area,
		Ready:   w.laidOut,
		Ball:    w.ball,
		Paddle:  w.paddle,
		PaddleY: w.PaddleTop(),
		Bricks:  make([]Brick, len(w.bricks)),
		Columns: w.profile.BrickColumns,
		State:   w.state,
		Score:   w.destroyed,
		Tick:    w.tick,
	}
	copy(s.Bricks, w.bricks)
	return s
}

func (w *World) paddleMaxX() float64 {
	if m := w.area.Width - w.paddle.Width; m > 0 {
		return m
	}
	return 0
}

// placeBallAndPaddle centers the paddle and parks the ball above it, heading up
func (w *World) placeBallAndPaddle() {
	p := w.profile
	w.paddle = Paddle{Width: p.PaddleWidth, Height: p.PaddleHeight}
	w.paddle.X = w.paddleMaxX() / 2

	r := p.BallRadius
	w.ball = Ball{
		X:      Clamp(w.area.Width/2, r, w.area.Width-r),
		Y:      Clamp(w.PaddleTop()-2*r, r, w.area.Height-r),
		DX:     p.BallSpeedX,
		DY:     p.BallSpeedY,
		Radius: r,
	}
}

func (w *World) layoutBricks() {
	p := w.profile
	if p.BrickColumns <= 0 {
		return
	}
	cols := float64(p.BrickColumns)
	bw := (w.area.Width - p.BrickGap*(cols+1)) / cols
	if bw < 1 {
		bw = 1
	}
	for i := range w.bricks {
		br := &w.bricks[i]
		left := p.BrickGap + float64(br.Column)*(bw+p.BrickGap)
		top := p.BrickTopOffset + float64(br.Row)*(p.BrickHeight+p.BrickGap)
		br.Rect = Rect{Left: left, Top: top, Right: left + bw, Bottom: top + p.BrickHeight}
	}
}
