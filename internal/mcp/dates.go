package mcp

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// parseDate parses an ISO calendar date. time.Parse rejects negative years,
// so BCE dates ("-0043-03-15", astronomical year numbering) are split off
// and rebuilt through time.Date, which accepts any year.
func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	raw := *s
	negative := strings.HasPrefix(raw, "-")
	if negative {
		raw = raw[1:]
	}

	parts := strings.SplitN(raw, "-", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD", *s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", *s, err)
	}
	if negative {
		year = -year
	}
	monthDay, err := time.Parse("01-02", parts[1]+"-"+parts[2])
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", *s, err)
	}

	t := time.Date(year, monthDay.Month(), monthDay.Day(), 0, 0, 0, 0, time.UTC)
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
