// Package domain contains the core data types for the route planner.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DefaultItineraryName is used when an itinerary is saved without a name.
const DefaultItineraryName = "My Route"

// ItineraryStatus is the lifecycle state of an itinerary.
type ItineraryStatus string

const (
	StatusPending   ItineraryStatus = "pending"
	StatusFinished  ItineraryStatus = "finished"
	StatusCancelled ItineraryStatus = "cancelled"
)

// AllStatuses lists every valid status in lifecycle order.
var AllStatuses = []ItineraryStatus{StatusPending, StatusFinished, StatusCancelled}

// ParseItineraryStatus returns the status named by s.
// Returns ErrValidation for anything outside AllStatuses, including "".
func ParseItineraryStatus(s string) (ItineraryStatus, error) {
	for _, st := range AllStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: invalid status value", ErrValidation)
}

// Terminal reports whether the status ends the tour (finished or cancelled).
func (s ItineraryStatus) Terminal() bool {
	return s == StatusFinished || s == StatusCancelled
}

// Itinerary is a user-owned, ordered list of POI snapshots with a lifecycle status.
//
// RouteData holds the raw JSON array exactly as the client sent it. Order is
// the visit order. Individual snapshots are never re-validated server-side.
type Itinerary struct {
	ID        int64
	OwnerID   int64
	Name      string
	RouteData json.RawMessage
	Status    ItineraryStatus
	CreatedAt time.Time
}

// POISnapshot is the shape clients store inside RouteData.
// The server treats RouteData as opaque; this type documents the contract
// and is used by tests and fixtures.
type POISnapshot struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Description string   `json:"description,omitempty"`
	Visitors    int      `json:"visitors,omitempty"`
	Image       string   `json:"image,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}
