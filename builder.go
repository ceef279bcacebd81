package kite

import "time"

// Builder configures kite before initialization.
// Use NewBuilder() to create a builder and chain configuration methods.
type Builder struct {
	tickRate time.Duration
	ticker   Ticker
}

// NewBuilder creates a new kite builder.
func NewBuilder() *Builder {
	return &Builder{tickRate: TickRate}
}

// TickRate sets the rate of the manager's own tick loop. It has no effect
// when a custom Ticker is supplied.
func (b *Builder) TickRate(rate time.Duration) *Builder {
	b.tickRate = rate
	return b
}

// Ticker supplies an external tick source, typically a ManualTicker driven
// by the server's own tick loop. The manager will not start a loop of its
// own and Close becomes a no-op.
func (b *Builder) Ticker(t Ticker) *Builder {
	b.ticker = t
	return b
}

// Init initializes kite with the configured settings.
// Returns the Manager instance which should be stored and used for tracking.
// When no external ticker was supplied, the manager's own tick loop is
// started; stop it with Manager.Close.
func (b *Builder) Init() *Manager {
	m := &Manager{
		hits:    NewHitRegistry(),
		impacts: NewBus[Impact](),
	}

	if b.ticker != nil {
		m.ticker = b.ticker
	} else {
		m.loop = NewTickLoop(b.tickRate)
		m.ticker = m.loop
	}

	// Wire the dispatch bridge before anything can publish.
	bindHitDispatch(m.impacts, m.hits)

	if m.loop != nil {
		m.loop.Start()
	}

	return m
}
