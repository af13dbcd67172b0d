package event

import (
	"math"
	"time"
)

// meanYearSeconds is the mean Julian year length used to convert calendar
// dates into elapsed years.
const meanYearSeconds = 365.25 * 24 * 3600

// YearsAgo derives the unified years-before-present coordinate for an
// event's start. Astronomical events return their stored value directly;
// calendar events convert elapsed time from now, floored at 1 so that
// logarithmic transforms stay defined ("now" is 1 year ago, never 0).
// An event with neither representation populated yields 0; callers are
// expected to treat that as a data defect, not a position.
func YearsAgo(ev Event) float64 {
	return YearsAgoAt(ev, time.Now())
}

// YearsAgoAt is YearsAgo evaluated against an explicit present moment.
func YearsAgoAt(ev Event, now time.Time) float64 {
	switch {
	case ev.DateKind == KindAstronomical && ev.StartYearsAgo != nil:
		return *ev.StartYearsAgo
	case ev.DateKind == KindCalendar && ev.StartDate != nil:
		return calendarYearsAgo(*ev.StartDate, now)
	default:
		return 0
	}
}

// EndYearsAgo derives the end coordinate of a span event. The second return
// is false for point events.
func EndYearsAgo(ev Event) (float64, bool) {
	return EndYearsAgoAt(ev, time.Now())
}

// EndYearsAgoAt is EndYearsAgo evaluated against an explicit present moment.
func EndYearsAgoAt(ev Event, now time.Time) (float64, bool) {
	switch {
	case ev.DateKind == KindAstronomical && ev.EndYearsAgo != nil:
		return *ev.EndYearsAgo, true
	case ev.DateKind == KindCalendar && ev.EndDate != nil:
		return calendarYearsAgo(*ev.EndDate, now), true
	default:
		return 0, false
	}
}

// IsSpan reports whether the event has an end value.
func IsSpan(ev Event) bool {
	switch ev.DateKind {
	case KindAstronomical:
		return ev.EndYearsAgo != nil
	case KindCalendar:
		return ev.EndDate != nil
	default:
		return false
	}
}

// MidpointYearsAgo returns the midpoint of a span, or the point value.
func MidpointYearsAgo(ev Event) float64 {
	return MidpointYearsAgoAt(ev, time.Now())
}

// MidpointYearsAgoAt is MidpointYearsAgo against an explicit present moment.
func MidpointYearsAgoAt(ev Event, now time.Time) float64 {
	start := YearsAgoAt(ev, now)
	if end, ok := EndYearsAgoAt(ev, now); ok {
		return (start + end) / 2
	}
	return start
}

func calendarYearsAgo(date time.Time, now time.Time) float64 {
	// time.Duration overflows beyond ~292 years, so subtract Unix seconds.
	years := float64(now.Unix()-date.Unix()) / meanYearSeconds
	return math.Max(years, 1)
}
