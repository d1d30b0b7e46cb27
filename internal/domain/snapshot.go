package domain

// Snapshot is the complete persisted application state: the five record
// collections plus the currently selected trip. It is both the shape the
// storage adapters persist and the export/import backup document.
//
// Field names match the backup files of the original application exactly, so
// an exported file can be re-imported by either implementation.
type Snapshot struct {
	Trips         []Trip        `json:"trips"`
	DayPlans      []DayPlan     `json:"dayPlans"`
	Expenses      []Expense     `json:"expenses"`
	Documents     []Document    `json:"documents"`
	PackingItems  []PackingItem `json:"packingItems"`
	CurrentTripID string        `json:"currentTripId"`
}
