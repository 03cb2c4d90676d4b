package domain

import "fmt"

// TransitionPolicy decides which current statuses may move to a target status.
//
// TransitionsPermissive accepts any status from any status, including
// re-opening a finished tour. TransitionsStrict freezes terminal itineraries:
// only a pending itinerary may change.
type TransitionPolicy int

const (
	TransitionsPermissive TransitionPolicy = iota
	TransitionsStrict
)

// AllowedFrom returns the current statuses from which a move to target is legal.
// Repos use the result as a conditional-update guard so the check and the
// write happen in one statement.
func (p TransitionPolicy) AllowedFrom(target ItineraryStatus) []ItineraryStatus {
	if p == TransitionsStrict {
		return []ItineraryStatus{StatusPending}
	}
	return AllStatuses
}

// Allows reports whether moving from -> to is legal under p.
func (p TransitionPolicy) Allows(from, to ItineraryStatus) bool {
	for _, st := range p.AllowedFrom(to) {
		if st == from {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (p TransitionPolicy) String() string {
	switch p {
	case TransitionsPermissive:
		return "permissive"
	case TransitionsStrict:
		return "strict"
	default:
		return fmt.Sprintf("TransitionPolicy(%d)", int(p))
	}
}
