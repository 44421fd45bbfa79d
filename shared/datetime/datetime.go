// Package datetime normalizes the inconsistent date/time strings exported by
// the remote booking sheet into comparable instants.
//
// The sheet mixes several encodings in the same columns: ISO timestamps,
// "YYYY-MM-DD" and "DD/MM/YYYY" dates, 12-hour clocks with English or Arabic
// AM/PM markers, time-then-date layouts, and 1899-12-30 spreadsheet time
// serials. Parsing never returns an error; an unrecognized input yields
// (zero time, false) so callers can apply a total ordering over partially
// corrupt data.
package datetime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	arabicPM = "م"
	arabicAM = "ص"

	// SerialEpochPrefix marks spreadsheet time serials: a time-of-day value
	// exported as a full timestamp anchored at the sheet epoch day zero.
	SerialEpochPrefix = "1899-12-30T"
)

// DisplayLayout is the canonical display form for a parsed instant.
// Parse accepts it back, so normalize -> display -> parse is idempotent.
const DisplayLayout = "2006-01-02 3:04 PM"

var (
	timeThenDateRe = regexp.MustCompile(`(\d{1,2}:\d{2}:\d{2})\s*(AM|PM)\s*(\d{4}-\d{2}-\d{2})`)
	clockRe        = regexp.MustCompile(`(?i)(\d+):(\d+)\s*(AM|PM|` + arabicPM + `|` + arabicAM + `)?`)

	markerReplacer = strings.NewReplacer(arabicPM, "PM", arabicAM, "AM", "/", "-")

	// Right-to-left mark and embedding characters leak into sheet time cells.
	bidiReplacer = strings.NewReplacer("‏", "", "‫", "")
)

// Wall-clock layouts tried for direct construction, most specific first.
// Layouts carrying a zone are parsed as absolute instants; the rest are
// interpreted in the caller's location.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 3:04:05 PM",
	"2006-01-02 3:04 PM",
	"2006-01-02 15:04",
	"2006-01-02",
}

type strategy struct {
	name  string
	parse func(s string, loc *time.Location) (time.Time, bool)
}

// The chain is tried in priority order, first success wins.
var strategies = []strategy{
	{name: "normalized", parse: parseNormalized},
	{name: "time-then-date", parse: parseTimeThenDate},
	{name: "raw", parse: parseRaw},
}

// Parse converts a combined date-time string in any of the known sheet
// encodings into an instant. The boolean reports whether any strategy
// recognized the input.
func Parse(s string, loc *time.Location) (time.Time, bool) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, false
	}

	for _, st := range strategies {
		if t, ok := st.parse(s, loc); ok {
			return t, true
		}
	}

	return time.Time{}, false
}

// ParseParts converts separate date and time fields into an instant.
//
// The date separator may be "-" or "/"; a 4-digit leading segment means
// year-month-day, anything else day-month-year. The time field is matched
// as "H:MM" with an optional AM/PM marker in either alphabet; failing that,
// an ISO timestamp with a trailing Z contributes its UTC clock fields.
func ParseParts(dateStr, timeStr string, loc *time.Location) (time.Time, bool) {
	year, month, day, ok := splitDate(dateStr)
	if !ok {
		return time.Time{}, false
	}

	hour, minute, ok := splitClock(timeStr)
	if !ok {
		return time.Time{}, false
	}

	return construct(year, month, day, hour, minute, loc)
}

// NormalizeDate reduces a date string in either segment order, with either
// separator, to canonical zero-padded YYYY-MM-DD. A time component after a
// "T" is dropped. Unrecognized input comes back unchanged.
func NormalizeDate(s string) string {
	datePart, _, _ := strings.Cut(s, "T")

	parts := splitSegments(datePart)
	if len(parts) != 3 {
		return s
	}

	nums := make([]int, 3)

	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return s
		}

		nums[i] = n
	}

	if len(parts[0]) == 4 {
		return fmt.Sprintf("%04d-%02d-%02d", nums[0], nums[1], nums[2])
	}

	return fmt.Sprintf("%04d-%02d-%02d", nums[2], nums[1], nums[0])
}

// FormatTime renders a raw sheet time value for display. Spreadsheet time
// serials become a 12-hour clock taken from their UTC fields; anything else
// passes through untouched.
func FormatTime(s string) string {
	if !strings.HasPrefix(s, SerialEpochPrefix) {
		return s
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return s
		}
	}

	return t.UTC().Format("3:04 PM")
}

// Format renders an instant in the canonical display form.
func Format(t time.Time) string {
	return t.Format(DisplayLayout)
}

func parseNormalized(s string, loc *time.Location) (time.Time, bool) {
	return tryLayouts(normalize(s), loc)
}

// parseTimeThenDate handles the sheet's "3:00:00 PM 2025-11-12" layout by
// reassembling it date-first before construction.
func parseTimeThenDate(s string, loc *time.Location) (time.Time, bool) {
	m := timeThenDateRe.FindStringSubmatch(normalize(s))
	if m == nil {
		return time.Time{}, false
	}

	return tryLayouts(fmt.Sprintf("%s %s %s", m[3], m[1], m[2]), loc)
}

func parseRaw(s string, loc *time.Location) (time.Time, bool) {
	return tryLayouts(strings.TrimSpace(s), loc)
}

func normalize(s string) string {
	return strings.TrimSpace(bidiReplacer.Replace(markerReplacer.Replace(s)))
}

func tryLayouts(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range layouts {
		zoned := strings.Contains(layout, "Z07")

		var (
			t   time.Time
			err error
		)

		if zoned {
			t, err = time.Parse(layout, s)
		} else {
			t, err = time.ParseInLocation(layout, s, loc)
		}

		if err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func splitSegments(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '/'
	})
}

func splitDate(dateStr string) (year, month, day int, ok bool) {
	parts := splitSegments(strings.TrimSpace(dateStr))
	if len(parts) != 3 {
		return 0, 0, 0, false
	}

	nums := make([]int, 3)

	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, false
		}

		nums[i] = n
	}

	if len(parts[0]) == 4 {
		return nums[0], nums[1], nums[2], true
	}

	return nums[2], nums[1], nums[0], true
}

func splitClock(timeStr string) (hour, minute int, ok bool) {
	cleaned := strings.TrimSpace(bidiReplacer.Replace(timeStr))

	m := clockRe.FindStringSubmatch(cleaned)
	if m == nil {
		return clockFromSerial(cleaned)
	}

	hour, errH := strconv.Atoi(m[1])
	minute, errM := strconv.Atoi(m[2])

	if errH != nil || errM != nil {
		return 0, 0, false
	}

	switch marker := m[3]; {
	case marker == "":
	case strings.EqualFold(marker, "PM") || marker == arabicPM:
		if hour < 12 {
			hour += 12
		}
	case strings.EqualFold(marker, "AM") || marker == arabicAM:
		if hour == 12 {
			hour = 0
		}
	}

	return hour, minute, true
}

// clockFromSerial extracts UTC clock fields from a full ISO timestamp, the
// form spreadsheet exports use for bare time-of-day values.
func clockFromSerial(s string) (hour, minute int, ok bool) {
	if !strings.Contains(s, "T") || !strings.Contains(s, "Z") {
		return 0, 0, false
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return 0, 0, false
		}
	}

	u := t.UTC()

	return u.Hour(), u.Minute(), true
}

func construct(year, month, day, hour, minute int, loc *time.Location) (time.Time, bool) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)

	// time.Date silently normalizes out-of-range components; a changed
	// calendar date means the input was not a real date.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}

	return t, true
}
