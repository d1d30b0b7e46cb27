package weather

import (
	"fmt"
	"time"

	"github.com/pkanjana/travel-planner/internal/domain"
)

// Advisory thresholds. Temperatures are °C, precipitation is mm/day.
const (
	veryColdBelow = 10.0
	coldBelow     = 15.0
	hotAbove      = 32.0
	extremeHeat   = 35.0
	lightRainOver = 5.0
	heavyRainOver = 20.0
	rainyDayOver  = 1.0
)

// Recommendations derives the clothing list for a forecast window.
//
// The rule set is evaluated once over the whole day list, not per day.
// Temperature tiers are mutually exclusive and checked in severity order
// (very cold or snow, then cold, then hot, then the mild default), so exactly
// one tier's items are emitted. Rain tiers are likewise exclusive, heavy
// winning. Sunscreen is always appended last. Output order is fixed:
// temperature tier, rain tier, sunscreen.
//
// An empty day list yields an empty result.
func Recommendations(days []Day) []Recommendation {
	if len(days) == 0 {
		return nil
	}

	var meanSum float64
	var hasRain, hasHeavyRain, hasCold, hasVeryCold, hasHot, hasSnow bool
	for _, d := range days {
		meanSum += (d.TempMax + d.TempMin) / 2
		hasRain = hasRain || d.Precipitation > lightRainOver
		hasHeavyRain = hasHeavyRain || d.Precipitation > heavyRainOver
		hasCold = hasCold || d.TempMin < coldBelow
		hasVeryCold = hasVeryCold || d.TempMin < veryColdBelow
		hasHot = hasHot || d.TempMax > hotAbove
		hasSnow = hasSnow || IsSnowCode(d.Code)
	}
	meanTemp := meanSum / float64(len(days))

	var recs []Recommendation

	switch {
	case hasVeryCold || hasSnow:
		recs = append(recs,
			Recommendation{"🧥", "Heavy coat / down jacket", "Temperatures below 10°C"},
			Recommendation{"🧣", "Scarf", "Blocks cold wind"},
			Recommendation{"🧤", "Gloves", "Protects against the cold"},
			Recommendation{"🎿", "Insulated boots", "For snow and cold ground"},
		)
	case hasCold:
		recs = append(recs,
			Recommendation{"🧥", "Sweater / jacket", "Temperatures below 15°C"},
			Recommendation{"👖", "Long trousers", "Keeps you warm"},
		)
	case hasHot:
		recs = append(recs,
			Recommendation{"👕", "Lightweight t-shirts", "Highs above 32°C"},
			Recommendation{"🩳", "Shorts", "Breathes well"},
			Recommendation{"🧢", "Hat", "Sun protection"},
			Recommendation{"🕶️", "Sunglasses", "Shields against glare"},
		)
	default:
		recs = append(recs, Recommendation{
			"👔", "Long sleeves / light jacket",
			fmt.Sprintf("Average temperature %.0f°C", meanTemp),
		})
	}

	if hasHeavyRain {
		recs = append(recs,
			Recommendation{"☂️", "Large umbrella", "Heavy rain expected"},
			Recommendation{"🥾", "Waterproof shoes", "Paths may be wet and slippery"},
			Recommendation{"🧥", "Rain jacket", "Keeps the rain out"},
		)
	} else if hasRain {
		recs = append(recs, Recommendation{"☂️", "Compact umbrella", "Rain is possible"})
	}

	recs = append(recs, Recommendation{"🧴", "Sunscreen", "UV protection"})
	return recs
}

// Alerts evaluates the per-day warning rules. Unlike recommendation tiers the
// rules are independent: a single day can raise a storm alert, a heavy-rain
// alert, and more. Alerts are concatenated in day order with no cap.
func Alerts(days []Day) []Alert {
	var alerts []Alert
	for _, d := range days {
		date := shortDate(d.Date)

		if IsStormCode(d.Code) {
			alerts = append(alerts, Alert{
				Type:    AlertStorm,
				Glyph:   "⛈️",
				Message: fmt.Sprintf("⚠️ %s: thunderstorms expected, avoid outdoor activities", date),
			})
		}
		if d.Precipitation > heavyRainOver {
			alerts = append(alerts, Alert{
				Type:    AlertRain,
				Glyph:   "🌧️",
				Message: fmt.Sprintf("🌧️ %s: heavy rain (%.0f mm), pack an umbrella and rain jacket", date, d.Precipitation),
			})
		}
		if d.TempMin < veryColdBelow {
			alerts = append(alerts, Alert{
				Type:    AlertCold,
				Glyph:   "❄️",
				Message: fmt.Sprintf("🥶 %s: very cold (%.0f°C), pack warm layers", date, d.TempMin),
			})
		}
		if d.TempMax > extremeHeat {
			alerts = append(alerts, Alert{
				Type:    AlertHot,
				Glyph:   "🔥",
				Message: fmt.Sprintf("🥵 %s: extreme heat (%.0f°C), stay hydrated and avoid the midday sun", date, d.TempMax),
			})
		}
		if IsSnowCode(d.Code) {
			alerts = append(alerts, Alert{
				Type:    AlertSnow,
				Glyph:   "🌨️",
				Message: fmt.Sprintf("❄️ %s: snowfall expected, bring non-slip footwear", date),
			})
		}
	}
	return alerts
}

// Summarize condenses the forecast window. Zero-valued on an empty list.
func Summarize(days []Day) Summary {
	if len(days) == 0 {
		return Summary{}
	}

	s := Summary{TempMax: days[0].TempMax, TempMin: days[0].TempMin}
	var meanSum float64
	for _, d := range days {
		if d.TempMax > s.TempMax {
			s.TempMax = d.TempMax
		}
		if d.TempMin < s.TempMin {
			s.TempMin = d.TempMin
		}
		meanSum += (d.TempMax + d.TempMin) / 2
		if d.Precipitation > rainyDayOver {
			s.RainyDays++
		}
	}
	s.TempMean = meanSum / float64(len(days))
	return s
}

// BuildReport assembles the full derived view for a forecast window.
func BuildReport(days []Day) Report {
	if days == nil {
		days = []Day{}
	}
	return Report{
		Days:            days,
		Recommendations: Recommendations(days),
		Alerts:          Alerts(days),
		Summary:         Summarize(days),
	}
}

// shortDate renders a calendar date in short form for alert messages,
// e.g. "Mar 12". Malformed dates pass through unchanged.
func shortDate(date string) string {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2")
}
