package domain

// MaxActivityImages caps the number of inline-encoded image attachments on a
// single activity. Images are stored as data URLs inside the record itself, so
// the cap keeps day plans at a size the backup format can tolerate.
const MaxActivityImages = 6

// DayPlan is one calendar day within a trip's date range.
// There is at most one day plan per distinct date per trip. Day plans are
// materialized lazily: a day with no saved activities or notes exists only as
// an expanded date slot and is never persisted.
type DayPlan struct {
	ID         string     `json:"id"`
	TripID     string     `json:"tripId"`
	Date       string     `json:"date"`      // "2006-01-02"
	DayNumber  int        `json:"dayNumber"` // 1-based ordinal within the trip's range
	Activities []Activity `json:"activities"`
	Notes      string     `json:"notes,omitempty"`
}

// Activity is a scheduled item within a day plan, ordered by its position in
// the parent's Activities slice. The identifier is assigned on first save.
type Activity struct {
	ID              string   `json:"id"`
	Time            string   `json:"time"`
	Title           string   `json:"title"`
	Location        string   `json:"location,omitempty"`
	Description     string   `json:"description,omitempty"`
	EstimatedCost   float64  `json:"estimatedCost,omitempty"`
	BookingRequired bool     `json:"bookingRequired,omitempty"`
	BookingURL      string   `json:"bookingUrl,omitempty"`
	Images          []string `json:"images,omitempty"` // inline-encoded, at most MaxActivityImages
	Completed       bool     `json:"completed,omitempty"`
}
