package kite

import "testing"

func TestBusDeliversInPriorityOrder(t *testing.T) {
	bus := NewBus[EventRegionScanComplete]()

	var order []Priority
	for _, p := range []Priority{Last, Normal, First, Late, Early} {
		p := p
		bus.Subscribe(p, func(*EventRegionScanComplete) { order = append(order, p) })
	}

	bus.Publish(&EventRegionScanComplete{World: "overworld"})

	want := []Priority{First, Early, Normal, Late, Last}
	if len(order) != len(want) {
		t.Fatalf("expected %d deliveries, got %d", len(want), len(order))
	}
	for i, p := range want {
		if order[i] != p {
			t.Fatalf("delivery %d was %v, want %v (full order %v)", i, order[i], p, order)
		}
	}
}

func TestBusSameTierKeepsSubscriptionOrder(t *testing.T) {
	bus := NewBus[EventRegionScanComplete]()

	var order []int
	for i := 0; i < 4; i++ {
		i := i
		bus.Subscribe(Normal, func(*EventRegionScanComplete) { order = append(order, i) })
	}

	bus.Publish(&EventRegionScanComplete{})

	for i, got := range order {
		if got != i {
			t.Fatalf("same-tier subscribers ran out of order: %v", order)
		}
	}
}

func TestBusCancelStopsLaterSubscribers(t *testing.T) {
	bus := NewBus[EventRocketExplosion]()

	seenFirst, seenLate := false, false
	bus.Subscribe(First, func(e *EventRocketExplosion) { seenFirst = true })
	bus.Subscribe(Normal, func(e *EventRocketExplosion) { e.Cancel() })
	bus.Subscribe(Late, func(*EventRocketExplosion) { seenLate = true })

	event := &EventRocketExplosion{Power: 4}
	bus.Publish(event)

	if !seenFirst {
		t.Fatalf("subscriber before the cancel was skipped")
	}
	if seenLate {
		t.Fatalf("subscriber after the cancel still ran")
	}
	if !event.Cancelled() {
		t.Fatalf("event does not report cancellation")
	}
}

func TestBusSubscribersMayMutateEvent(t *testing.T) {
	bus := NewBus[EventRocketExplosion]()

	bus.Subscribe(Early, func(e *EventRocketExplosion) { e.Power = 0.5 })

	var observed float64
	bus.Subscribe(Normal, func(e *EventRocketExplosion) { observed = e.Power })

	bus.Publish(&EventRocketExplosion{Power: 4, BreakBlocks: true})

	if observed != 0.5 {
		t.Fatalf("later tier observed power %v, want the adjusted 0.5", observed)
	}
}

func TestBusOutOfRangePriorityFallsBackToNormal(t *testing.T) {
	bus := NewBus[EventRegionScanComplete]()

	fired := false
	bus.Subscribe(Priority(99), func(*EventRegionScanComplete) { fired = true })
	bus.Publish(&EventRegionScanComplete{})

	if !fired {
		t.Fatalf("subscriber with out-of-range priority never ran")
	}
}
