package physics

// Rect is an axis-aligned rectangle in play-area pixels
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Width returns the horizontal extent
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// CircleRectCollide tests circle/rectangle overlap using the closest point of the rectangle
// to the circle center. Touching (distance == radius) is not a collision
func CircleRectCollide(cx, cy, radius float64, r Rect) bool {
	closestX := Clamp(cx, r.Left, r.Right)
	closestY := Clamp(cy, r.Top, r.Bottom)
	dx := cx - closestX
	dy := cy - closestY
	return dx*dx+dy*dy < radius*radius
}

// Clamp restricts v to [lo, hi], lo wins when the range is inverted
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
