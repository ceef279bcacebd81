package kite

import "fmt"

// DefaultTimeoutTicks bounds a tracking session at 30 seconds of host time.
const DefaultTimeoutTicks = 600

// Status is the snapshot of an entity's physical state the tracker inspects
// once per tick.
type Status struct {
	// Valid reports whether the entity still exists in a world and is not
	// dead. An invalid entity ends the session.
	Valid bool

	// OnGround reports whether the entity rests on a solid surface.
	OnGround bool

	// FallingBlock reports whether the entity is a falling block. Falling
	// blocks turn into placed blocks when removed, so their removal counts
	// as landing.
	FallingBlock bool
}

// Trackable is the minimal view of a host entity the tracker polls. The
// dragonfly binding is BindHandle; tests and custom hosts implement it
// directly or through TrackableFunc.
type Trackable interface {
	Status() Status
}

// TrackableFunc adapts a plain function to the Trackable interface.
type TrackableFunc func() Status

// Status calls fn.
func (fn TrackableFunc) Status() Status { return fn() }

// trackSession is the per-entity polling state. Each session owns its
// counter exclusively; the ticker invokes step once per tick until it
// returns false.
type trackSession struct {
	entity   Trackable
	timeout  int
	elapsed  int
	onTick   func()
	onLanded func()
}

// step evaluates one tick. The order is fixed: timeout, then validity, then
// ground contact, then the per-tick callback. At most one callback fires per
// tick, and a terminal condition returns false so the ticker drops the
// session.
func (s *trackSession) step() bool {
	// Stop after the given timeout to save performance. No callback fires;
	// the timeout is pure resource reclamation.
	if s.elapsed > s.timeout {
		return false
	}
	s.elapsed++

	status := s.entity.Status()

	// Stop when the entity is removed from the world. A falling block
	// vanishing means it solidified into a placed block, which counts as
	// landing; any other kind just disappears without a callback.
	if !status.Valid {
		if status.FallingBlock && s.onLanded != nil {
			s.onLanded()
		}
		return false
	}

	if status.OnGround {
		if s.onLanded != nil {
			s.onLanded()
		}
		return false
	}

	if s.onTick != nil {
		s.onTick()
	}
	return true
}

// track starts a session on the given ticker. At least one of onTick and
// onLanded must be set; both nil is a configuration error reported before
// any tick runs.
func track(ticker Ticker, entity Trackable, timeoutTicks int, onTick, onLanded func()) error {
	if onTick == nil && onLanded == nil {
		return fmt.Errorf("kite: cannot track entity with both tick and landed callbacks nil")
	}
	if entity == nil {
		return fmt.Errorf("kite: cannot track a nil entity")
	}

	session := &trackSession{
		entity:   entity,
		timeout:  timeoutTicks,
		onTick:   onTick,
		onLanded: onLanded,
	}
	ticker.Schedule(session.step)
	return nil
}
