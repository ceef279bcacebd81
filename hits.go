package kite

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// HitWindow is how long a hit registration stays live. A projectile still
// flying after this window is forgotten to keep the registry bounded.
const HitWindow = 30 * time.Second

// hitEntry holds the callbacks waiting on one projectile's impact.
type hitEntry struct {
	// callbacks in registration order
	callbacks []HitFunc

	// expiresAt is refreshed on every registration for the projectile
	expiresAt time.Time
}

// HitRegistry correlates a projectile's launch-time registration with its
// eventual impact. Entries expire after HitWindow; expired callbacks are
// dropped silently, trading guaranteed delivery for bounded memory.
//
// Concurrency:
// Register and ConsumeAndDispatch may race arbitrarily; the registry
// serializes the read-modify-write on its map so a registration is either
// delivered exactly once or expired, never both and never twice.
type HitRegistry struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*hitEntry

	// mutations counts registrations for periodic compaction
	mutations int

	// now is swapped out in tests
	now func() time.Time
}

// NewHitRegistry creates an empty registry.
func NewHitRegistry() *HitRegistry {
	return &HitRegistry{
		entries: make(map[uuid.UUID]*hitEntry),
		now:     time.Now,
	}
}

// Register appends fn to the callbacks waiting on the projectile, creating
// the entry if absent. The entry's expiry is reset to a full HitWindow from
// now, also when the entry already existed. Duplicate registration is not
// an error; the callback simply fires once per registration.
func (r *HitRegistry) Register(projectile uuid.UUID, fn HitFunc) {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.mutations++
	if len(r.entries) > 64 && r.mutations%64 == 0 {
		r.compact(now)
	}

	entry := r.entries[projectile]
	if entry == nil || now.After(entry.expiresAt) {
		// A stale entry is as good as absent. Its callbacks were forfeited
		// when the window closed.
		entry = &hitEntry{}
		r.entries[projectile] = entry
	}

	entry.callbacks = append(entry.callbacks, fn)
	entry.expiresAt = now.Add(HitWindow)
}

// ConsumeAndDispatch atomically removes the entry for the projectile and
// invokes its callbacks with the impact, in registration order. An impact
// for an unregistered or expired projectile is a no-op.
//
// Callbacks run after the registry lock is released, so a callback may
// register a follow-up projectile without deadlocking.
func (r *HitRegistry) ConsumeAndDispatch(projectile uuid.UUID, impact *Impact) {
	now := r.now()

	r.mu.Lock()
	entry := r.entries[projectile]
	delete(r.entries, projectile)
	r.mu.Unlock()

	if entry == nil {
		return
	}
	if now.After(entry.expiresAt) {
		slog.Debug("kite: hit registration expired before impact",
			"projectile", projectile,
			"callbacks", len(entry.callbacks))
		return
	}

	for _, fn := range entry.callbacks {
		fn(impact)
	}
}

// Len returns the number of live entries, sweeping expired ones first.
func (r *HitRegistry) Len() int {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.compact(now)
	return len(r.entries)
}

// compact removes expired entries. Caller must hold lock.
func (r *HitRegistry) compact(now time.Time) {
	for id, entry := range r.entries {
		if now.After(entry.expiresAt) {
			delete(r.entries, id)
		}
	}
}
