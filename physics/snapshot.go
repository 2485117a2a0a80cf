package physics

// Snapshot is a read-only copy of the world published after every tick
type Snapshot struct {
	Area    PlayArea  `json:"area"`
	Ready   bool      `json:"ready"`
	Ball    Ball      `json:"ball"`
	Paddle  Paddle    `json:"paddle"`
	PaddleY float64   `json:"paddleY"`
	Bricks  []Brick   `json:"bricks"`
	Columns int       `json:"columns"`
	State   GameState `json:"state"`
	Score   int       `json:"score"`
	Tick    uint64    `json:"tick"`
	Paused  bool      `json:"paused"`
}

// Remaining counts bricks still standing
func (s *Snapshot) Remaining() int {
	n := 0
	for i := range s.Bricks {
		if !s.Bricks[i].Destroyed {
			n++
		}
	}
	return n
}
