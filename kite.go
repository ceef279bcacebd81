// Package kite provides entity tracking building blocks for Dragonfly servers.
//
// Kite is a convenience layer built on top of a host game server that
// provides:
//   - Projectile hit tracking with a time-bounded registration window
//   - Per-tick ground tracking for falling and flying entities
//   - A priority-ordered event bus for impact dispatch and custom events
//   - Small gameplay helpers: sliders and nearest-entity search
//
// # Quick Start
//
// Initialize kite in your server setup:
//
//	mngr := kite.NewBuilder().
//	    TickRate(50 * time.Millisecond).
//	    Init()
//	defer mngr.Close()
//
// Track a projectile until it hits something:
//
//	mngr.TrackHit(arrowID, func(impact *kite.Impact) {
//	    // runs once, when the impact is published
//	})
//
// Track an entity until it touches the ground:
//
//	err := mngr.TrackFalling(kite.BindHandle(handle), func() {
//	    // runs once, when the entity lands
//	})
//
// Impacts are fed in from game code, typically a projectile hit hook:
//
//	mngr.Impacts().Publish(&kite.Impact{Projectile: arrowID, Position: pos})
//
// # Tick Sources
//
// By default the Manager runs its own loop at 20 ticks per second. Servers
// that already own a tick loop can drive kite themselves:
//
//	ticker := kite.NewManualTicker()
//	mngr := kite.NewBuilder().Ticker(ticker).Init()
//	// call ticker.Tick() once per server tick
//
// # Guarantees
//
// Hit callbacks registered for the same projectile fire in registration
// order, exactly once, provided the impact arrives within the 30 second
// registration window. Registrations that outlive the window are discarded
// silently; bounded memory is preferred over guaranteed delivery. Ground
// tracking sessions fire at most one terminal callback and evaluate
// timeout, validity and ground contact in that order on every tick.
package kite

// Version is the kite version.
const Version = "1.0.0"
