package kite

import (
	"github.com/google/uuid"
)

// Manager is the central kite coordinator. It owns the hit registry, the
// impact bus and the tick source, and exposes the tracking operations.
// Multiple Manager instances can coexist in the same process for running
// multiple isolated servers.
type Manager struct {
	ticker  Ticker
	hits    *HitRegistry
	impacts *Bus[Impact]

	// loop is set when the manager owns its tick source and must stop it
	// on Close.
	loop *TickLoop
}

// Track polls the entity once per tick until it lands, is removed, or
// timeoutTicks elapse. onLanded fires exactly once when the entity reports
// ground contact, or when a falling block is removed from the world. onTick
// fires on every tick the entity is still airborne. At least one callback
// must be set; both nil is a configuration error returned before any tick
// runs. A timeout fires nothing.
func (m *Manager) Track(entity Trackable, timeoutTicks int, onTick, onLanded func()) error {
	return track(m.ticker, entity, timeoutTicks, onTick, onLanded)
}

// TrackFalling polls the entity once per tick and fires onLanded when it
// reaches the ground, with the default 600 tick timeout. If the entity is
// removed before landing, nothing is called, unless it is a falling block.
func (m *Manager) TrackFalling(entity Trackable, onLanded func()) error {
	return m.Track(entity, DefaultTimeoutTicks, nil, onLanded)
}

// TrackFlying fires onTick once per tick until the entity is removed or
// lands, with the default 600 tick timeout.
func (m *Manager) TrackFlying(entity Trackable, onTick func()) error {
	return m.Track(entity, DefaultTimeoutTicks, onTick, nil)
}

// TrackHit registers fn to run when an impact for the projectile is
// published on the impact bus. The registration lives for HitWindow; a
// projectile still flying after that is forgotten and fn never runs.
// Multiple registrations for the same projectile fire in registration
// order.
func (m *Manager) TrackHit(projectile uuid.UUID, fn HitFunc) {
	m.hits.Register(projectile, fn)
}

// Impacts returns the impact bus. Game code publishes one Impact per
// projectile collision; plugins may subscribe at any tier to observe or
// cancel impacts after the hit dispatch bridge has run.
func (m *Manager) Impacts() *Bus[Impact] {
	return m.impacts
}

// Ticker returns the tick source sessions run on.
func (m *Manager) Ticker() Ticker {
	return m.ticker
}

// PendingHits returns the number of projectiles with live hit registrations.
func (m *Manager) PendingHits() int {
	return m.hits.Len()
}

// Close stops the manager's own tick loop, if it owns one. Managers driven
// by a ManualTicker simply stop being ticked by their host.
func (m *Manager) Close() {
	if m.loop != nil {
		m.loop.Stop()
	}
}
