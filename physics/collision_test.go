package physics

import "testing"

func TestCircleRectCollide(t *testing.T) {
	brick := Rect{Left: 80, Top: 80, Right: 160, Bottom: 120}

	tests := []struct {
		name   string
		cx, cy float64
		radius float64
		want   bool
	}{
		{"center inside", 100, 100, 15, true},
		{"below bottom edge within radius", 120, 130, 15, true},
		{"touching bottom edge", 120, 135, 15, false},
		{"left of left edge within radius", 70, 100, 15, true},
		{"near corner inside radius", 70, 70, 15, true},
		{"near corner outside radius", 68, 68, 15, false},
		{"far away", 300, 300, 15, false},
		{"zero radius inside", 100, 100, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleRectCollide(tt.cx, tt.cy, tt.radius, brick); got != tt.want {
				t.Errorf("CircleRectCollide(%v, %v, %v) = %v, want %v", tt.cx, tt.cy, tt.radius, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{5, 10, 0, 10}, // inverted range
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestReflectBoundsX(t *testing.T) {
	b := Ball{X: 5, DX: -3, Radius: 10}
	if !ReflectBoundsX(&b, 0, 100) {
		t.Fatal("expected reflection")
	}
	if b.X != 10 || b.DX != 3 {
		t.Errorf("ball = %+v, want X=10 DX=3", b)
	}

	b = Ball{X: 50, DX: -3, Radius: 10}
	if ReflectBoundsX(&b, 0, 100) {
		t.Error("unexpected reflection in open space")
	}
}
