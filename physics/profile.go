package physics

import "github.com/lixenwraith/breakout/parameter"

// Profile holds the geometry and speeds a World is laid out from
// All lengths are in play-area pixels, speeds in pixels per tick
type Profile struct {
	BallRadius float64
	BallSpeedX float64
	BallSpeedY float64

	PaddleWidth  float64
	PaddleHeight float64
	PaddleMargin float64

	BrickRows      int
	BrickColumns   int
	BrickHeight    float64
	BrickGap       float64
	BrickTopOffset float64
}

// DefaultProfile returns the stock layout
func DefaultProfile() Profile {
	return Profile{
		BallRadius:     parameter.BallRadius,
		BallSpeedX:     parameter.BallSpeedX,
		BallSpeedY:     parameter.BallSpeedY,
		PaddleWidth:    parameter.PaddleWidth,
		PaddleHeight:   parameter.PaddleHeight,
		PaddleMargin:   parameter.PaddleMargin,
		BrickRows:      parameter.BrickRows,
		BrickColumns:   parameter.BrickColumns,
		BrickHeight:    parameter.BrickHeight,
		BrickGap:       parameter.BrickGap,
		BrickTopOffset: parameter.BrickTopOffset,
	}
}

// BrickCount returns the number of bricks in the grid
func (p Profile) BrickCount() int {
	if p.BrickRows <= 0 || p.BrickColumns <= 0 {
		return 0
	}
	return p.BrickRows * p.BrickColumns
}
