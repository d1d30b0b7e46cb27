package weather

// Condition is the display mapping for a WMO daily weather code.
type Condition struct {
	Description string
	Glyph       string
}

// UnknownCondition is returned for codes outside the WMO table. The forecast
// source occasionally grows new codes; rendering a sentinel beats failing.
var UnknownCondition = Condition{Description: "Unknown conditions", Glyph: "❓"}

// conditions maps each WMO daily weather code to its description and glyph.
// The table follows the standard WMO buckets: clear (0-3), fog (45,48),
// drizzle (51-57), rain (61-67), snow (71-77), showers (80-86),
// thunderstorm (95-99).
var conditions = map[int]Condition{
	0:  {"Clear sky", "☀️"},
	1:  {"Mainly clear", "🌤️"},
	2:  {"Partly cloudy", "⛅"},
	3:  {"Overcast", "☁️"},
	45: {"Fog", "🌫️"},
	48: {"Depositing rime fog", "🌫️"},
	51: {"Light drizzle", "🌦️"},
	53: {"Moderate drizzle", "🌦️"},
	55: {"Dense drizzle", "🌧️"},
	56: {"Light freezing drizzle", "🌨️"},
	57: {"Dense freezing drizzle", "🌨️"},
	61: {"Slight rain", "🌧️"},
	63: {"Moderate rain", "🌧️"},
	65: {"Heavy rain", "🌧️"},
	66: {"Light freezing rain", "🌨️"},
	67: {"Heavy freezing rain", "🌨️"},
	71: {"Slight snowfall", "🌨️"},
	73: {"Moderate snowfall", "🌨️"},
	75: {"Heavy snowfall", "❄️"},
	77: {"Snow grains", "❄️"},
	80: {"Slight rain showers", "🌦️"},
	81: {"Moderate rain showers", "🌧️"},
	82: {"Violent rain showers", "⛈️"},
	85: {"Slight snow showers", "🌨️"},
	86: {"Heavy snow showers", "❄️"},
	95: {"Thunderstorm", "⛈️"},
	96: {"Thunderstorm with slight hail", "⛈️"},
	99: {"Thunderstorm with heavy hail", "⛈️"},
}

// ConditionFor looks up the condition mapping for a WMO code.
// Unknown codes map to UnknownCondition rather than failing.
func ConditionFor(code int) Condition {
	if c, ok := conditions[code]; ok {
		return c
	}
	return UnknownCondition
}

// snowCodes is the snow-category bucket used by the advisory and alert rules.
var snowCodes = map[int]bool{71: true, 73: true, 75: true, 77: true, 85: true, 86: true}

// stormCodes is the thunderstorm-family bucket used by the alert rules.
var stormCodes = map[int]bool{95: true, 96: true, 99: true}

// IsSnowCode reports whether code falls in the snow-category bucket.
func IsSnowCode(code int) bool { return snowCodes[code] }

// IsStormCode reports whether code falls in the thunderstorm bucket.
func IsStormCode(code int) bool { return stormCodes[code] }
