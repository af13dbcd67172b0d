package scale

import (
	"fmt"
	"strings"
	"time"
)

// FormatShort renders a years-ago value as a compact axis label using
// B/M/K unit suffixes with at most one decimal place.
func FormatShort(yearsAgo float64) string {
	switch {
	case yearsAgo >= 1e9:
		return compact(yearsAgo/1e9) + "B"
	case yearsAgo >= 1e6:
		return compact(yearsAgo/1e6) + "M"
	case yearsAgo >= 1e3:
		return compact(yearsAgo/1e3) + "K"
	case yearsAgo >= 1:
		return compact(yearsAgo)
	default:
		return compact(yearsAgo)
	}
}

// FormatFull renders a years-ago value as a spelled-out label, e.g.
// "4.5 billion years ago".
func FormatFull(yearsAgo float64) string {
	switch {
	case yearsAgo >= 1e9:
		return compact(yearsAgo/1e9) + " billion years ago"
	case yearsAgo >= 1e6:
		return compact(yearsAgo/1e6) + " million years ago"
	case yearsAgo >= 1e3:
		return compact(yearsAgo/1e3) + " thousand years ago"
	case yearsAgo >= 2:
		return compact(yearsAgo) + " years ago"
	default:
		return compact(yearsAgo) + " year ago"
	}
}

// compact formats with one decimal, dropping it when integral.
func compact(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}

// FormatCalendarRange renders a calendar date (or date range) for display,
// distinguishing common-era years, early CE years, and BCE years. Extremely
// ancient proleptic dates fall back to geological magnitude units.
func FormatCalendarRange(start time.Time, end *time.Time) string {
	s := formatCalendarYear(start)
	if end == nil {
		return s
	}
	e := formatCalendarYear(*end)
	if s == e {
		return s
	}
	return s + " – " + e
}

func formatCalendarYear(t time.Time) string {
	year := t.Year()
	switch {
	case year >= 1000:
		return fmt.Sprintf("%d", year)
	case year >= 1:
		return fmt.Sprintf("%d CE", year)
	default:
		// Proleptic year 0 is 1 BCE, -1 is 2 BCE, and so on.
		bce := 1 - year
		switch {
		case bce >= 1_000_000_000:
			return compact(float64(bce)/1e9) + " Ga"
		case bce >= 1_000_000:
			return compact(float64(bce)/1e6) + " Ma"
		case bce >= 10_000:
			return compact(float64(bce)/1e3) + " ka"
		default:
			return fmt.Sprintf("%d BCE", bce)
		}
	}
}
