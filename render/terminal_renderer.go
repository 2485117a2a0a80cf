package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/breakout/parameter"
	"github.com/lixenwraith/breakout/physics"
)

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	layout Layout
}

// NewTerminalRenderer creates a renderer sized to the screen's current dimensions
func NewTerminalRenderer(screen tcell.Screen, cellW, cellH float64) *TerminalRenderer {
	cols, rows := screen.Size()
	return &TerminalRenderer{
		screen: screen,
		layout: NewLayout(cols, rows, cellW, cellH),
	}
}

// Resize updates the cell grid after a terminal resize
func (r *TerminalRenderer) Resize(cols, rows int) {
	r.layout.Cols, r.layout.Rows = cols, rows
}

// Layout returns the current cell mapping
func (r *TerminalRenderer) Layout() Layout {
	return r.layout
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(s *physics.Snapshot) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	if s.Ready {
		r.drawBricks(s, defaultStyle)
		r.drawPaddle(s, defaultStyle)
		r.drawBall(s, defaultStyle)
	}

	r.drawStatusBar(s, defaultStyle)
	r.drawOverlay(s)

	r.screen.Show()
}

func (r *TerminalRenderer) drawBricks(s *physics.Snapshot, defaultStyle tcell.Style) {
	rows := 1
	if s.Columns > 0 {
		rows = (len(s.Bricks) + s.Columns - 1) / s.Columns
	}

	for _, b := range s.Bricks {
		if b.Destroyed {
			continue
		}
		style := defaultStyle.Foreground(BrickColor(b.Row, rows))
		x0, x1 := Span(b.Left, b.Right, r.layout.CellW)
		y0, y1 := Span(b.Top, b.Bottom, r.layout.CellH)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				r.setCell(x, y, parameter.BrickGlyph, style)
			}
		}
	}
}

func (r *TerminalRenderer) drawPaddle(s *physics.Snapshot, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbPaddle)
	_, y := r.layout.Cell(0, s.PaddleY)
	x0, x1 := Span(s.Paddle.X, s.Paddle.X+s.Paddle.Width, r.layout.CellW)
	for x := x0; x <= x1; x++ {
		r.setCell(x, y, parameter.PaddleGlyph, style)
	}
}

func (r *TerminalRenderer) drawBall(s *physics.Snapshot, defaultStyle tcell.Style) {
	x, y := r.layout.Cell(s.Ball.X, s.Ball.Y)
	r.setCell(x, y, parameter.BallGlyph, defaultStyle.Foreground(RgbBall))
}

// drawStatusBar draws score, remaining bricks and help on the reserved bottom row
func (r *TerminalRenderer) drawStatusBar(s *physics.Snapshot, defaultStyle tcell.Style) {
	y := r.layout.Rows - 1
	if y < 0 {
		return
	}

	scoreText := fmt.Sprintf(" Score %d  Left %d ", s.Score, s.Remaining())
	x := r.drawText(0, y, scoreText, tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbScoreBg))

	tickText := fmt.Sprintf(" T%d ", s.Tick)
	x = r.drawText(x, y, tickText, defaultStyle.Foreground(RgbStatusBar))

	r.drawText(x+1, y, parameter.StatusHelpText, defaultStyle.Foreground(RgbHelpText))
}

// drawOverlay centers the end-of-match or pause banner over the play area
func (r *TerminalRenderer) drawOverlay(s *physics.Snapshot) {
	var text string
	var bg tcell.Color
	switch {
	case s.State == physics.StateWon:
		text, bg = parameter.WonText, RgbWonBg
	case s.State == physics.StateLost:
		text, bg = parameter.LostText, RgbLostBg
	case s.Paused:
		text, bg = parameter.PausedText, RgbPausedBg
	default:
		return
	}

	width := len([]rune(text))
	x := (r.layout.Cols - width) / 2
	if x < 0 {
		x = 0
	}
	y := r.layout.GameRows() / 2
	r.drawText(x, y, text, tcell.StyleDefault.Foreground(RgbStatusText).Background(bg).Bold(true))
}

// drawText writes text left to right and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		if x >= r.layout.Cols {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// setCell clips drawing to the play area, leaving the status row untouched
func (r *TerminalRenderer) setCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.layout.Cols || y >= r.layout.GameRows() {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}
