package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBall       = tcell.NewRGBColor(255, 255, 255) // White
	RgbPaddle     = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbBorder     = tcell.NewRGBColor(60, 60, 80)    // Dim slate

	// Status bar
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbScoreBg    = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbHelpText   = tcell.NewRGBColor(180, 180, 180) // Brighter gray

	// Overlays
	RgbWonBg    = tcell.NewRGBColor(0, 200, 0)   // Normal green
	RgbLostBg   = tcell.NewRGBColor(200, 50, 50) // Red
	RgbPausedBg = tcell.NewRGBColor(255, 165, 0) // Orange
)

// GradientColor returns the rainbow gradient color at progress
// progress is 0.0 to 1.0, deep red through yellow, green, cyan and blue to pink
func GradientColor(progress float64) tcell.Color {
	if progress < 0.0 {
		progress = 0.0
	}
	if progress > 1.0 {
		progress = 1.0
	}

	if progress < 0.167 { // Red to Orange
		t := progress / 0.167
		return tcell.NewRGBColor(int32(139+(255-139)*t), int32(69*t), 0)
	} else if progress < 0.333 { // Orange to Yellow
		t := (progress - 0.167) / 0.166
		return tcell.NewRGBColor(255, int32(69+(215-69)*t), 0)
	} else if progress < 0.500 { // Yellow to Green
		t := (progress - 0.333) / 0.167
		return tcell.NewRGBColor(int32(255-(255-34)*t), int32(215-(215-139)*t), int32(34*t))
	} else if progress < 0.667 { // Green to Cyan
		t := (progress - 0.500) / 0.167
		return tcell.NewRGBColor(int32(34-34*t), int32(139+(206-139)*t), int32(34+(209-34)*t))
	} else if progress < 0.833 { // Cyan to Blue
		t := (progress - 0.667) / 0.166
		return tcell.NewRGBColor(int32(65*t), int32(206-(206-105)*t), int32(209+(225-209)*t))
	}
	// Blue to Purple/Pink
	t := (progress - 0.833) / 0.167
	return tcell.NewRGBColor(int32(65+(219-65)*t), int32(105+(112-105)*t), int32(225-(225-147)*t))
}

// BrickColor spreads the gradient over the brick rows, top row red
func BrickColor(row, rows int) tcell.Color {
	if rows <= 1 {
		return GradientColor(0)
	}
	return GradientColor(float64(row) / float64(rows-1))
}
