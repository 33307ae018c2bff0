// Package weather classifies Open-Meteo readings and turns raw forecast payloads into
// display-ready records.
package weather

import (
	"time"

	"weathermine/i18n"
)

// Condition is a coarse weather category derived from a WMO weather code
type Condition int

const (
	Clear Condition = iota
	Cloudy
	Rainy
	Snowy
	Stormy
)

var conditionKeys = [...]string{
	Clear:  "clear",
	Cloudy: "cloudy",
	Rainy:  "rainy",
	Snowy:  "snowy",
	Stormy: "stormy",
}

// Key returns the translation key for the condition
func (c Condition) Key() string {
	if c < Clear || c > Stormy {
		return "stormy"
	}
	return conditionKeys[c]
}

// Localize returns the condition label in lang
func (c Condition) Localize(tr i18n.Translator, lang i18n.Language) string {
	return tr.Translate(c.Key(), lang)
}

// ClassifyWeatherCode buckets a weather code. Thresholds are checked in ascending order and
// the first match wins, so negative codes are Clear and anything above 77 is Stormy.
func ClassifyWeatherCode(code int) Condition {
	if code <= 3 {
		return Clear
	} else if code <= 48 {
		return Cloudy
	} else if code <= 67 {
		return Rainy
	} else if code <= 77 {
		return Snowy
	}
	return Stormy
}

// Season is a calendar season label
type Season int

const (
	Winter Season = iota
	Spring
	Summer
	Autumn
)

var seasonKeys = [...]string{
	Winter: "winter",
	Spring: "spring",
	Summer: "summer",
	Autumn: "autumn",
}

// Key returns the translation key for the season
func (s Season) Key() string {
	return seasonKeys[((int(s)%4)+4)%4]
}

// Localize returns the season label in lang
func (s Season) Localize(tr i18n.Translator, lang i18n.Language) string {
	return tr.Translate(s.Key(), lang)
}

// ClassifySeason maps a calendar date to a season using a fixed table of boundary days:
// Winter from Dec 21, Spring from Mar 20, Summer from Jun 21, Autumn from Sep 22.
// A negative latitude selects the southern hemisphere, which swaps Winter/Summer and
// Spring/Autumn on the same dates.
func ClassifySeason(date time.Time, latitude float64) Season {
	month := date.Month()
	day := date.Day()

	var northern Season
	switch {
	case (month == time.December && day >= 21) || month == time.January || month == time.February ||
		(month == time.March && day < 20):
		northern = Winter
	case (month == time.March && day >= 20) || month == time.April || month == time.May ||
		(month == time.June && day < 21):
		northern = Spring
	case (month == time.June && day >= 21) || month == time.July || month == time.August ||
		(month == time.September && day < 22):
		northern = Summer
	default:
		northern = Autumn
	}

	if latitude >= 0 {
		return northern
	}
	return (northern + 2) % 4
}

// IsDaytime reports whether now lies within [sunrise, sunset]
func IsDaytime(now, sunrise, sunset time.Time) bool {
	return !now.Before(sunrise) && !now.After(sunset)
}

// FormatClockTime renders t as a 24-hour HH:MM wall clock in t's location
func FormatClockTime(t time.Time) string {
	return t.Format("15:04")
}
