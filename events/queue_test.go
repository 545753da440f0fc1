package events

import (
	"sync"
	"testing"

	"github.com/lixenwraith/vi-snake/constants"
)

func TestEventQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventRewardConsumed, Tick: 1})
	q.Push(GameEvent{Type: EventCollision, Tick: 2})

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}

	got := q.Consume()
	if len(got) != 2 {
		t.Fatalf("Consume() returned %d events, want 2", len(got))
	}
	if got[0].Type != EventRewardConsumed || got[1].Type != EventCollision {
		t.Errorf("events out of order: %v, %v", got[0].Type, got[1].Type)
	}

	if again := q.Consume(); again != nil {
		t.Errorf("second Consume() = %v, want nil", again)
	}
}

func TestEventQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := constants.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventRewardConsumed, Tick: uint64(i)})
	}

	got := q.Consume()
	if len(got) != constants.EventQueueSize {
		t.Fatalf("Consume() returned %d events, want %d", len(got), constants.EventQueueSize)
	}
	if got[0].Tick != 10 {
		t.Errorf("oldest retained tick = %d, want 10", got[0].Tick)
	}
	if got[len(got)-1].Tick != uint64(total-1) {
		t.Errorf("newest tick = %d, want %d", got[len(got)-1].Tick, total-1)
	}
}

func TestEventQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 8; i++ {
				q.Push(GameEvent{Type: EventPaused})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != 32 {
		t.Errorf("consumed %d events, want 32", got)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventCollision.String() != "collision" {
		t.Errorf("EventCollision.String() = %q", EventCollision.String())
	}
	if EventType(99).String() != "unknown" {
		t.Errorf("out of range String() = %q", EventType(99).String())
	}
}
