// Package weather turns a raw daily forecast into the three derived views the
// planner shows for a trip: per-day conditions, a clothing recommendation
// list, and threshold-triggered alerts.
//
// The forecast itself comes from Open-Meteo via Client; everything else in
// this package is pure derivation over []Day and tolerates an empty forecast
// (retrieval is an external, failure-prone collaborator).
package weather

// Day is one day of forecast for the trip's destination, already annotated
// with the condition mapping for its weather code. Derived at fetch time and
// never persisted.
type Day struct {
	Date          string  `json:"date"` // "2006-01-02"
	TempMax       float64 `json:"tempMax"`
	TempMin       float64 `json:"tempMin"`
	Precipitation float64 `json:"precipitation"` // mm
	Code          int     `json:"weatherCode"`   // WMO daily weather code
	Description   string  `json:"weatherDescription"`
	Glyph         string  `json:"weatherIcon"`
}

// Recommendation is a single clothing or gear suggestion derived from the
// whole forecast window.
type Recommendation struct {
	Glyph  string `json:"glyph"`
	Item   string `json:"item"`
	Reason string `json:"reason"`
}

// AlertType tags the rule that raised an alert.
type AlertType string

const (
	AlertStorm AlertType = "storm"
	AlertRain  AlertType = "rain"
	AlertCold  AlertType = "cold"
	AlertHot   AlertType = "hot"
	AlertSnow  AlertType = "snow"
)

// Alert is a single-day weather warning.
type Alert struct {
	Type    AlertType `json:"type"`
	Glyph   string    `json:"glyph"`
	Message string    `json:"message"`
}

// Summary condenses the whole forecast window into four headline numbers.
type Summary struct {
	TempMax   float64 `json:"tempMax"`   // hottest daily maximum
	TempMin   float64 `json:"tempMin"`   // coldest daily minimum
	TempMean  float64 `json:"tempMean"`  // mean of daily (max+min)/2
	RainyDays int     `json:"rainyDays"` // days with precipitation > 1 mm
}

// Report bundles everything the forecast view needs for one trip.
type Report struct {
	Days            []Day            `json:"days"`
	Recommendations []Recommendation `json:"recommendations"`
	Alerts          []Alert          `json:"alerts"`
	Summary         Summary          `json:"summary"`
}
