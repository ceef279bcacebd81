package kite

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Locatable is anything with a position in a world.
type Locatable interface {
	Position() mgl64.Vec3
}

// Nearest returns the candidate closest to center within the given 3D range.
// The second return is false when no candidate is in range. Candidates are
// compared by straight-line distance; ties keep the earlier candidate.
func Nearest[T Locatable](center mgl64.Vec3, range3D float64, candidates []T) (T, bool) {
	var zero T

	found := make([]T, 0, len(candidates))
	for _, c := range candidates {
		if c.Position().Sub(center).Len() <= range3D {
			found = append(found, c)
		}
	}
	if len(found) == 0 {
		return zero, false
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Position().Sub(center).Len() < found[j].Position().Sub(center).Len()
	})
	return found[0], true
}
