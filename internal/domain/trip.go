// Package domain contains the core data types for the Travel Planner
// application. This package has zero dependencies beyond uuid and is imported
// by every other internal package (repo, service, handler).
//
// JSON tags are camelCase rather than snake_case: exported backup files must
// round-trip with backups produced by earlier releases, and those used
// camelCase throughout.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus is the lifecycle state of a trip.
type TripStatus string

const (
	StatusPlanning  TripStatus = "planning"
	StatusBooked    TripStatus = "booked"
	StatusOngoing   TripStatus = "ongoing"
	StatusCompleted TripStatus = "completed"
)

// TripStatuses lists every valid status in display order.
var TripStatuses = []TripStatus{StatusPlanning, StatusBooked, StatusOngoing, StatusCompleted}

// Valid reports whether s is one of the known trip statuses.
func (s TripStatus) Valid() bool {
	for _, v := range TripStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Trip represents a single planned journey.
// A trip is the top-level aggregate; day plans, expenses, documents, and
// packing items all reference it by TripID and are removed when it is deleted.
//
// StartDate and EndDate are calendar dates in "2006-01-02" form. Date-only
// strings (not timestamps) are deliberate: they are compared and expanded as
// calendar days, never as instants, and they match the backup file format.
type Trip struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Destination string     `json:"destination"`
	Country     string     `json:"country"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	Budget      float64    `json:"budget"`
	Currency    string     `json:"currency"`
	Notes       string     `json:"notes,omitempty"`
	CoverImage  string     `json:"coverImage,omitempty"`
	Status      TripStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewID returns a fresh record identifier.
//
// Identifiers are strings rather than a UUID type: records restored from a
// backup keep whatever identifier the file carried, which predates the switch
// to UUIDs and is not guaranteed to parse as one.
func NewID() string {
	return uuid.NewString()
}
