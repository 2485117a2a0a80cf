package physics

// Ball is the moving circle, position is its center
type Ball struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	DX     float64 `json:"dx"`
	DY     float64 `json:"dy"`
	Radius float64 `json:"radius"`
}

// Integrate advances the ball by one tick of its velocity
func Integrate(b *Ball) {
	b.X += b.DX
	b.Y += b.DY
}

// ReflectBoundsX handles side wall collision, returns true if reflection occurred
// Clamps the ball center to [minX+r, maxX-r]
func ReflectBoundsX(b *Ball, minX, maxX float64) bool {
	if b.X-b.Radius < minX {
		b.X = minX + b.Radius
		b.DX = -b.DX
		return true
	}
	if b.X+b.Radius > maxX {
		b.X = maxX - b.Radius
		b.DX = -b.DX
		return true
	}
	return false
}

// ReflectTop handles ceiling collision, returns true if reflection occurred
func ReflectTop(b *Ball, minY float64) bool {
	if b.Y-b.Radius < minY {
		b.Y = minY + b.Radius
		b.DY = -b.DY
		return true
	}
	return false
}
