package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/breakout/parameter"
)

// TestQueueFIFO verifies events come out in push order
func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Emit(EventPaddleDrag, PaddleDragPayload{Delta: float64(i)}, 0)
	}
	if q.Len() != 5 {
		t.Fatalf("Len = %d, want 5", q.Len())
	}

	events := q.Consume()
	if len(events) != 5 {
		t.Fatalf("consumed %d events, want 5", len(events))
	}
	for i, ev := range events {
		if got := ev.Payload.(PaddleDragPayload).Delta; got != float64(i) {
			t.Errorf("event %d delta = %v", i, got)
		}
	}
	if q.Consume() != nil {
		t.Error("second Consume should return nil")
	}
}

// TestQueueOverflowKeepsNewest verifies the oldest events are overwritten when full
func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Emit(EventPaddleDrag, PaddleDragPayload{Delta: float64(i)}, uint64(i))
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("consumed %d, want %d", len(events), parameter.EventQueueSize)
	}
	if first := events[0].Tick; first != 10 {
		t.Errorf("oldest surviving tick = %d, want 10", first)
	}
	if last := events[len(events)-1].Tick; last != uint64(total-1) {
		t.Errorf("newest tick = %d, want %d", last, total-1)
	}
}

// TestQueueConcurrentProducers verifies nothing is lost under concurrent pushes below capacity
func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	const producers = 8
	const perProducer = 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Emit(EventReset, nil, 0)
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != producers*perProducer {
		t.Errorf("consumed %d, want %d", got, producers*perProducer)
	}
}

// TestConsumeIntoReusesBuffer verifies events append after existing contents
func TestConsumeIntoReusesBuffer(t *testing.T) {
	q := NewEventQueue()
	q.Emit(EventPause, nil, 1)
	buf := make([]GameEvent, 0, 8)
	buf = append(buf, GameEvent{Type: EventReset})

	buf = q.ConsumeInto(buf)
	if len(buf) != 2 || buf[1].Type != EventPause {
		t.Fatalf("buf = %+v", buf)
	}
}

// TestRouterDispatch verifies handlers receive only their types, in registration order
func TestRouterDispatch(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)

	var order []string
	r.Register(HandlerFunc{
		Types: []EventType{EventBrickDestroyed, EventGameWon},
		Fn:    func(ev GameEvent) { order = append(order, "a:"+ev.Type.String()) },
	})
	r.Register(HandlerFunc{
		Types: []EventType{EventBrickDestroyed},
		Fn:    func(ev GameEvent) { order = append(order, "b:"+ev.Type.String()) },
	})

	q.Emit(EventBrickDestroyed, BrickPayload{Index: 3}, 7)
	q.Emit(EventWallHit, nil, 7)
	q.Emit(EventGameWon, OutcomePayload{Score: 1}, 7)

	if n := r.DispatchAll(); n != 3 {
		t.Errorf("DispatchAll = %d, want 3", n)
	}
	want := []string{"a:BrickDestroyed", "b:BrickDestroyed", "a:GameWon"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, order[i], want[i])
		}
	}
	if r.HandlerCount(EventBrickDestroyed) != 2 || r.HasHandlers(EventWallHit) {
		t.Error("unexpected handler registration counts")
	}
}

func TestEventTypeNames(t *testing.T) {
	if EventPaddleHit.String() != "PaddleHit" {
		t.Errorf("EventPaddleHit = %s", EventPaddleHit)
	}
	if EventType(-1).String() != "Unknown" {
		t.Error("unregistered type should be Unknown")
	}
	if !EventReset.IsCommand() || EventGameLost.IsCommand() {
		t.Error("IsCommand misclassified")
	}
}
