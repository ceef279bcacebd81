package kite

// Priority orders subscribers on a Bus. Subscribers are invoked in priority
// order: First → Early → Normal → Late → Last. Earlier tiers observe the
// event before later tiers may cancel or alter it.
type Priority int

const (
	// First runs before all other tiers. The hit dispatch bridge subscribes
	// here so registered hit callbacks always observe the impact.
	First Priority = iota

	// Early runs second. Use for subscribers that adjust event payloads
	// before the main consumers see them.
	Early

	// Normal runs third. Use for most gameplay subscribers.
	Normal

	// Late runs fourth. Use for subscribers reacting to the final payload.
	Late

	// Last runs last. Use for monitoring and logging; mutating the event
	// here has no remaining consumers to affect.
	Last

	// priorityCount is the total number of tiers.
	priorityCount
)

// String returns the string representation of the priority.
func (p Priority) String() string {
	switch p {
	case First:
		return "First"
	case Early:
		return "Early"
	case Normal:
		return "Normal"
	case Late:
		return "Late"
	case Last:
		return "Last"
	default:
		return "Unknown"
	}
}
