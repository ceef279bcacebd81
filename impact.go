package kite

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Impact describes a projectile hitting something. Game code publishes one
// Impact per collision on the manager's impact bus, typically from the
// projectile's hit hook.
type Impact struct {
	// Projectile is the unique identifier of the projectile entity.
	Projectile uuid.UUID

	// Position is where the collision happened.
	Position mgl64.Vec3

	// Victim is the entity that was struck, or uuid.Nil for a block hit.
	Victim uuid.UUID

	// Shooter is the entity that launched the projectile, or uuid.Nil if
	// the projectile has no owner.
	Shooter uuid.UUID

	cancelled bool
}

// Cancel marks the impact as cancelled. Subscribers at later priority tiers
// will not observe it; hit callbacks registered through TrackHit always run,
// as the dispatch bridge subscribes at the First tier.
func (i *Impact) Cancel() { i.cancelled = true }

// Cancelled reports whether the impact has been cancelled.
func (i *Impact) Cancelled() bool { return i.cancelled }

// HitFunc is invoked when a projectile registered through TrackHit collides.
type HitFunc func(*Impact)

// bindHitDispatch wires the registry into the impact feed. The subscription
// runs at the First tier so registered callbacks observe every impact before
// other consumers may cancel or alter it. An impact with no live
// registration is a no-op.
func bindHitDispatch(bus *Bus[Impact], reg *HitRegistry) {
	bus.Subscribe(First, func(impact *Impact) {
		reg.ConsumeAndDispatch(impact.Projectile, impact)
	})
}
