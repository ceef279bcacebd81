package kite

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

func newTestManager() (*Manager, *ManualTicker) {
	ticker := NewManualTicker()
	return NewBuilder().Ticker(ticker).Init(), ticker
}

func TestManagerTrackHitConsumesOnPublish(t *testing.T) {
	m, _ := newTestManager()
	id := uuid.New()

	var got *Impact
	m.TrackHit(id, func(impact *Impact) { got = impact })

	published := &Impact{Projectile: id, Position: mgl64.Vec3{1, 64, 1}}
	m.Impacts().Publish(published)

	if got != published {
		t.Fatalf("hit callback saw %v, want the published impact", got)
	}
	if m.PendingHits() != 0 {
		t.Fatalf("registration survived its dispatch")
	}
}

func TestManagerBridgeRunsBeforeCancellingSubscribers(t *testing.T) {
	m, _ := newTestManager()
	id := uuid.New()

	hit := false
	m.TrackHit(id, func(*Impact) { hit = true })
	m.Impacts().Subscribe(Normal, func(impact *Impact) { impact.Cancel() })

	lateSaw := false
	m.Impacts().Subscribe(Late, func(*Impact) { lateSaw = true })

	m.Impacts().Publish(&Impact{Projectile: id})

	if !hit {
		t.Fatalf("hit callback missed a cancelled impact; the bridge must run first")
	}
	if lateSaw {
		t.Fatalf("late subscriber observed a cancelled impact")
	}
}

func TestManagerTrackFallingLands(t *testing.T) {
	m, ticker := newTestManager()
	entity := airborne()

	landed := 0
	if err := m.TrackFalling(entity, func() { landed++ }); err != nil {
		t.Fatalf("TrackFalling: %v", err)
	}

	ticker.Tick()
	entity.status.OnGround = true
	ticker.Tick()

	if landed != 1 {
		t.Fatalf("expected one landing, got %d", landed)
	}
}

func TestManagerTrackFlyingTicks(t *testing.T) {
	m, ticker := newTestManager()

	ticks := 0
	if err := m.TrackFlying(airborne(), func() { ticks++ }); err != nil {
		t.Fatalf("TrackFlying: %v", err)
	}

	ticker.Tick()
	ticker.Tick()

	if ticks != 2 {
		t.Fatalf("expected 2 tick callbacks, got %d", ticks)
	}
}

func TestManagerTrackConfigurationError(t *testing.T) {
	m, ticker := newTestManager()

	if err := m.Track(airborne(), DefaultTimeoutTicks, nil, nil); err == nil {
		t.Fatalf("expected a configuration error")
	}
	if ticker.Len() != 0 {
		t.Fatalf("session scheduled despite the configuration error")
	}
}

func TestManagerOwnsLoopWhenNoTickerSupplied(t *testing.T) {
	m := NewBuilder().TickRate(time.Millisecond).Init()
	defer m.Close()

	landedCh := make(chan struct{})
	entity := &fakeEntity{status: Status{Valid: true, OnGround: true}}
	if err := m.TrackFalling(entity, func() { close(landedCh) }); err != nil {
		t.Fatalf("TrackFalling: %v", err)
	}

	select {
	case <-landedCh:
	case <-time.After(5 * time.Second):
		t.Fatalf("manager-owned loop never ticked the session")
	}
}

func TestManagerCloseWithExternalTickerIsNoop(t *testing.T) {
	m, _ := newTestManager()
	m.Close()
	m.Close()
}
