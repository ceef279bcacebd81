package kite

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Custom event types for gameplay built on kite. Create a Bus for the event
// type and publish from game code:
//
//	rockets := kite.NewBus[kite.EventRocketExplosion]()
//	rockets.Subscribe(kite.Normal, func(e *kite.EventRocketExplosion) { ... })

// EventRocketExplosion is published when a rocket-style projectile detonates.
type EventRocketExplosion struct {
	// Projectile is the rocket entity.
	Projectile uuid.UUID

	// Position is the detonation point.
	Position mgl64.Vec3

	// Power is the explosion strength. Subscribers at earlier tiers may
	// tune it before the explosion is applied.
	Power float64

	// BreakBlocks controls whether the explosion damages terrain.
	BreakBlocks bool

	cancelled bool
}

// Cancel prevents the explosion. Subscribers at later tiers will not
// observe the event.
func (e *EventRocketExplosion) Cancel() { e.cancelled = true }

// Cancelled reports whether the explosion has been cancelled.
func (e *EventRocketExplosion) Cancelled() bool { return e.cancelled }

// EventRegionScanComplete is published when a background region scan over a
// world's stored chunks finishes.
type EventRegionScanComplete struct {
	// World is the name of the scanned world.
	World string

	// Regions is the number of regions visited.
	Regions int
}
