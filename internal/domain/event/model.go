package event

import "time"

// DateKind selects which date representation an event carries.
type DateKind string

const (
	// KindCalendar events carry proleptic calendar dates.
	KindCalendar DateKind = "calendar"
	// KindAstronomical events carry years-before-present values directly,
	// for magnitudes no calendar date can sensibly express.
	KindAstronomical DateKind = "astronomical"
)

// Event is a point or span on the timeline. Exactly one of the two date
// representations is populated, matching DateKind: calendar events use
// StartDate/EndDate, astronomical events use StartYearsAgo/EndYearsAgo.
// An event is a span when its end value is present.
type Event struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	DateKind      DateKind   `json:"date_kind"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	StartYearsAgo *float64   `json:"start_years_ago,omitempty"`
	EndYearsAgo   *float64   `json:"end_years_ago,omitempty"`
	Label         string     `json:"label,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	ModifiedAt    time.Time  `json:"modified_at"`
}
