package ephem

import (
	"math"
	"time"
)

// SynodicMonth is the average length of the lunar cycle in days.
const SynodicMonth = 29.530588853

// referenceNewMoon is a known new moon used as the phase epoch.
var referenceNewMoon = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

// PhaseID names a displayable moon phase band. The zero value PhaseNone
// means no moon should be drawn (the window around new moon).
type PhaseID string

const (
	PhaseNone           PhaseID = ""
	PhaseWaxingCrescent PhaseID = "waxing-crescent"
	PhaseFirstQuarter   PhaseID = "first-quarter"
	PhaseWaxingGibbous  PhaseID = "waxing-gibbous"
	PhaseWaningGibbous  PhaseID = "waning-gibbous"
	PhaseLastQuarter    PhaseID = "last-quarter"
	PhaseWaningCrescent PhaseID = "waning-crescent"
)

// MoonAge returns the days elapsed since the most recent new moon,
// in [0, SynodicMonth).
func MoonAge(t time.Time) float64 {
	days := t.Sub(referenceNewMoon).Hours() / 24
	age := math.Mod(days, SynodicMonth)
	if age < 0 {
		age += SynodicMonth
	}
	return age
}

// MoonPhase buckets the moon's age into one of six named waxing/waning
// bands. During the sixteenth of the cycle centered on new moon (~1.85
// days total) it returns PhaseNone: the moon is too thin to draw.
func MoonPhase(t time.Time) PhaseID {
	age := MoonAge(t)
	s := SynodicMonth

	switch {
	case age < s/32 || age >= 31*s/32:
		return PhaseNone
	case age < 3*s/16:
		return PhaseWaxingCrescent
	case age < 5*s/16:
		return PhaseFirstQuarter
	case age < s/2:
		return PhaseWaxingGibbous
	case age < 11*s/16:
		return PhaseWaningGibbous
	case age < 13*s/16:
		return PhaseLastQuarter
	default:
		return PhaseWaningCrescent
	}
}
