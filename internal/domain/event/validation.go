package event

import "strings"

// Validate checks the tagged-variant date invariant: exactly one date
// representation populated, consistent with DateKind, with sane ordering.
func Validate(ev Event) error {
	if strings.TrimSpace(ev.Title) == "" {
		return ErrInvalidInput
	}

	switch ev.DateKind {
	case KindCalendar:
		if ev.StartDate == nil {
			return ErrInvalidDates
		}
		if ev.StartYearsAgo != nil || ev.EndYearsAgo != nil {
			return ErrInvalidDates
		}
		if ev.EndDate != nil && !ev.EndDate.After(*ev.StartDate) {
			return ErrInvalidDates
		}
	case KindAstronomical:
		if ev.StartYearsAgo == nil {
			return ErrInvalidDates
		}
		if ev.StartDate != nil || ev.EndDate != nil {
			return ErrInvalidDates
		}
		if *ev.StartYearsAgo <= 0 {
			return ErrInvalidDates
		}
		// End is "more recent", so strictly less than start.
		if ev.EndYearsAgo != nil && (*ev.EndYearsAgo <= 0 || *ev.EndYearsAgo >= *ev.StartYearsAgo) {
			return ErrInvalidDates
		}
	default:
		return ErrInvalidDates
	}

	return nil
}
