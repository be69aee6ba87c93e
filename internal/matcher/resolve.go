package matcher

import (
	"math"

	"github.com/UnknownOlympus/locus/internal/geo"
)

// DefaultThresholdMeters is the matching radius of the campus deployment.
const DefaultThresholdMeters = 200.0

// Match describes the reference a query resolved to.
type Match struct {
	Name           string  // Name of the matched reference.
	Label          string  // Label (canonical address) of the matched reference.
	DistanceMeters float64 // Distance between the query and the reference.
}

// Resolve scans refs in order and returns the closest reference strictly within
// thresholdM of query. On equal distances the reference seen first wins.
// The boolean is false when no reference is in range.
func Resolve(query geo.Point, refs *ReferenceSet, thresholdM float64) (Match, bool) {
	var (
		result Match
		found  bool
	)
	if refs == nil {
		return result, false
	}

	best := math.Inf(1)
	for _, ref := range refs.refs {
		dist := query.DistanceMeters(ref.Point)
		// Both conditions are required: best starts above any threshold.
		if dist < thresholdM && dist < best {
			result = Match{Name: ref.Name, Label: ref.Point.Label(), DistanceMeters: dist}
			best = dist
			found = true
		}
	}

	return result, found
}
