package render

import (
	"math"

	"github.com/lixenwraith/breakout/parameter"
)

// Layout maps play-area pixels onto terminal cells
// The last BottomMargin rows are reserved for the status bar
type Layout struct {
	Cols, Rows   int
	CellW, CellH float64
}

// NewLayout builds a layout for a cols x rows screen
func NewLayout(cols, rows int, cellW, cellH float64) Layout {
	return Layout{Cols: cols, Rows: rows, CellW: cellW, CellH: cellH}
}

// GameRows is the number of rows available to the play area
func (l Layout) GameRows() int {
	if r := l.Rows - parameter.BottomMargin; r > 0 {
		return r
	}
	return 0
}

// PlayArea returns the play-area size in pixels, zero when the screen is too small
func (l Layout) PlayArea() (float64, float64) {
	return float64(l.Cols) * l.CellW, float64(l.GameRows()) * l.CellH
}

// Cell returns the cell containing pixel (x, y)
func (l Layout) Cell(x, y float64) (int, int) {
	return int(math.Floor(x / l.CellW)), int(math.Floor(y / l.CellH))
}

// Span returns the cell range [first, last] whose centers fall in [lo, hi) along one axis
// A span narrower than a cell still claims the cell holding its midpoint
func Span(lo, hi, cell float64) (int, int) {
	first := int(math.Ceil(lo/cell - 0.5))
	last := int(math.Ceil(hi/cell-0.5)) - 1
	if last < first {
		mid := int(math.Floor((lo + hi) / 2 / cell))
		return mid, mid
	}
	return first, last
}
