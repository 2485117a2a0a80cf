package status

import (
	"testing"

	"github.com/lixenwraith/breakout/event"
)

func TestRecorderCounts(t *testing.T) {
	reg := NewRegistry()
	rec := NewRecorder(reg)

	for _, ev := range []event.GameEvent{
		{Type: event.EventWallHit},
		{Type: event.EventWallHit},
		{Type: event.EventCeilingHit},
		{Type: event.EventPaddleHit},
		{Type: event.EventBrickDestroyed, Payload: event.BrickPayload{Index: 3}},
		{Type: event.EventGameLost, Payload: event.OutcomePayload{Score: 1, Remaining: 34}},
		{Type: event.EventGameReset},
		{Type: event.EventGameWon, Payload: event.OutcomePayload{Score: 35}},
		{Type: event.EventGameWon, Payload: event.OutcomePayload{Score: 20}},
	} {
		rec.HandleEvent(ev)
	}

	got := reg.Export()
	want := map[string]float64{
		KeyWallHits:    2,
		KeyCeilingHits: 1,
		KeyPaddleHits:  1,
		KeyBricks:      1,
		KeyWon:         2,
		KeyLost:        1,
		KeyResets:      1,
		KeyBestScore:   35,
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %v, want %v", k, got[k], v)
		}
	}
	if rate := got[KeyWinRate]; rate < 0.66 || rate > 0.67 {
		t.Errorf("%s = %v, want 2/3", KeyWinRate, rate)
	}
}

func TestRegistryExportEmpty(t *testing.T) {
	reg := NewRegistry()
	if n := len(reg.Export()); n != 0 {
		t.Errorf("Expected empty export, got %d metrics", n)
	}
	NewRecorder(reg)
	if reg.TotalCount() != 9 {
		t.Errorf("Expected 9 metrics after recorder init, got %d", reg.TotalCount())
	}
}

func TestMetricMapGetIsStable(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("x")
	a.Set(1.5)
	if b := m.Get("x"); b != a || b.Get() != 1.5 {
		t.Error("Expected Get to return the cached metric")
	}

	var keys []string
	m.Get("a")
	m.Range(func(k string, _ *AtomicFloat) { keys = append(keys, k) })
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "x" {
		t.Errorf("Expected sorted keys [a x], got %v", keys)
	}
}
