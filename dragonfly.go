package kite

import (
	"github.com/df-mc/dragonfly/server/world"
	"github.com/google/uuid"
)

// fallingBlockKind is the encoded entity type of a dragonfly falling block.
const fallingBlockKind = "minecraft:falling_block"

// BindHandle adapts a dragonfly entity handle to the Trackable interface.
// Each Status call probes the entity inside its world transaction; a handle
// that is no longer in any world reports invalid.
//
// Concurrency:
// ExecWorld serializes the probe with the entity's world, so a tracking
// session driven by any ticker observes a consistent snapshot per tick.
func BindHandle(h *world.EntityHandle) Trackable {
	return &handleTrackable{h: h}
}

type handleTrackable struct {
	h *world.EntityHandle

	// falling caches the entity kind from the last successful probe, so the
	// falling-block landing rule still applies once the entity is removed
	// and can no longer be asked.
	falling bool
}

func (t *handleTrackable) Status() Status {
	var status Status
	ok := t.h.ExecWorld(func(tx *world.Tx, e world.Entity) {
		status.Valid = true
		if d, ok := e.(interface{ Dead() bool }); ok && d.Dead() {
			status.Valid = false
		}
		if g, ok := e.(interface{ OnGround() bool }); ok {
			status.OnGround = g.OnGround()
		}
		if typed, ok := e.(interface{ Type() world.EntityType }); ok {
			t.falling = typed.Type().EncodeEntity() == fallingBlockKind
		}
	})
	if !ok {
		status = Status{}
	}
	status.FallingBlock = t.falling
	return status
}

// HandleID returns the persistent unique identifier of the handle's entity,
// the key used by TrackHit and Impact.Projectile.
func HandleID(h *world.EntityHandle) uuid.UUID {
	return h.UUID()
}
