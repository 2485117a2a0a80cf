package input

import "github.com/lixenwraith/breakout/physics"

// Autopilot returns the paddle delta that moves its center toward the ball, at most maxStep per call
// Zero when the match is not running
func Autopilot(s *physics.Snapshot, maxStep float64) float64 {
	if s == nil || !s.Ready || s.Paused || s.State != physics.StatePlaying {
		return 0
	}
	want := s.Ball.X - s.Paddle.Width/2
	return physics.Clamp(want-s.Paddle.X, -maxStep, maxStep)
}
