package model

import (
	"strings"
	"time"

	"majlis/shared/datetime"
)

const (
	EntityName = "booking"
)

// Canonical statuses. The sheet stores localized values; unknown statuses
// pass through untranslated since the column is free text on the remote side.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Canonical meeting kinds.
const (
	KindInternal = "internal"
	KindExternal = "external"
)

// Booking is the canonical in-memory record. Exactly one of the two
// date/time field groups is populated, depending on the wire scheme of the
// deployed sheet: From/To carry combined date-time strings, while
// Date/StartTime/EndTime carry the split encoding. All six stay raw; parsing
// happens lazily through Start/End so corrupt values degrade per record
// instead of failing the whole snapshot.
type Booking struct {
	ID          string
	Requester   string
	Department  string
	Title       string
	Kind        string
	From        string
	To          string
	Date        string
	StartTime   string
	EndTime     string
	Attendees   int
	Room        string
	Status      string
	Hospitality string
	Notes       string
}

// Start returns the booking's start instant, preferring the combined field.
func (b Booking) Start(loc *time.Location) (time.Time, bool) {
	if b.From != "" {
		return datetime.Parse(b.From, loc)
	}

	return datetime.ParseParts(b.Date, b.StartTime, loc)
}

// End returns the booking's end instant, preferring the combined field.
func (b Booking) End(loc *time.Location) (time.Time, bool) {
	if b.To != "" {
		return datetime.Parse(b.To, loc)
	}

	return datetime.ParseParts(b.Date, b.EndTime, loc)
}

// LocalDate returns the booking's calendar date as canonical YYYY-MM-DD in
// the given zone, or "" when no date can be extracted.
func (b Booking) LocalDate(loc *time.Location) string {
	if b.Date != "" {
		return datetime.NormalizeDate(b.Date)
	}

	if t, ok := b.Start(loc); ok {
		return t.In(loc).Format("2006-01-02")
	}

	return ""
}

// SearchText is the haystack for the free-text filter: title, requester,
// department and identifier, lower-cased.
func (b Booking) SearchText() string {
	return strings.ToLower(strings.Join([]string{b.Title, b.Requester, b.Department, b.ID}, " "))
}
