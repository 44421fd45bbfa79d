package sheetapi

import (
	"fmt"
	"strconv"
)

// Record is one loosely-typed row from the sheet. Column names and value
// formats vary between deployments; domain models decode records through
// their field schemas.
type Record map[string]any

// String returns the value under key rendered as a string. Numeric cells
// are formatted without an exponent; missing keys yield "".
func (r Record) String(key string) string {
	v, found := r[key]
	if !found || v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Int returns the value under key as an integer, tolerating numeric and
// numeric-string cells. Anything else yields 0.
func (r Record) Int(key string) int {
	v, found := r[key]
	if !found || v == nil {
		return 0
	}

	switch val := v.(type) {
	case float64:
		return int(val)
	case int:
		return val
	case string:
		n, err := strconv.Atoi(val)
		if err != nil {
			return 0
		}

		return n
	default:
		return 0
	}
}

// Document is the full snapshot returned by the sheet's read endpoint.
type Document struct {
	Bookings    []Record `json:"Bookings"`
	Hospitality []Record `json:"Hospitality"`
	Rooms       []Record `json:"Rooms"`
	Dashboard   []Record `json:"Dashboard"`
}

// TargetBookings is the only writable collection.
const TargetBookings = "Bookings"

// envelope is the write payload. Create and update share it: the server
// infers intent from whether the record carries a booking identifier.
type envelope struct {
	Target string `json:"target"`
	Record Record `json:"record"`
}
