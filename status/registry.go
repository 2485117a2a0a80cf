// Package status keeps session-wide match statistics readable from any goroutine
package status

import "sync/atomic"

// Metric keys
const (
	KeyWallHits    = "hits.wall"
	KeyCeilingHits = "hits.ceiling"
	KeyPaddleHits  = "hits.paddle"
	KeyBricks      = "bricks.destroyed"
	KeyWon         = "matches.won"
	KeyLost        = "matches.lost"
	KeyResets      = "matches.reset"
	KeyBestScore   = "score.best"
	KeyWinRate     = "matches.win_rate"
)

// Registry is the metrics facade
// Writers cache pointers once; reads and writes after that are plain atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Export flattens every metric into a map for JSON encoding
func (r *Registry) Export() map[string]float64 {
	out := make(map[string]float64, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out[k] = float64(v.Load())
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out[k] = v.Get()
	})
	return out
}
