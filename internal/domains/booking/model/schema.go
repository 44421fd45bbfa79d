package model

import (
	"majlis/infras/sheetapi"
)

// Scheme names the two incompatible wire encodings the deployed sheets use
// for booking date/time fields.
type Scheme string

const (
	// SchemeCombined: single from/to columns holding full date-time strings.
	SchemeCombined Scheme = "combined"
	// SchemeSplit: separate date, start-time and end-time columns.
	SchemeSplit Scheme = "split"
)

// Schema maps canonical booking fields to the sheet's column names and
// translates the sheet's localized status and kind values. Both deployed
// revisions use Arabic column headers; only the date/time columns differ.
type Schema struct {
	Scheme Scheme

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
	Attendees   string
	Room        string
	Status      string
	Hospitality string
	Notes       string

	statusIn  map[string]string
	statusOut map[string]string
	kindIn    map[string]string
	kindOut   map[string]string
}

var statusIn = map[string]string{
	"قيد الانتظار": StatusPending,
	"معتمد":        StatusApproved,
	"مرفوض":        StatusRejected,
}

var kindIn = map[string]string{
	"داخلي": KindInternal,
	"خارجي": KindExternal,
}

func baseSchema() Schema {
	return Schema{
		ID:          "رقم الحجز",
		Requester:   "اسم الموظف",
		Department:  "الإدارة",
		Title:       "عنوان الاجتماع",
		Kind:        "نوع الاجتماع",
		Attendees:   "عدد الحضور",
		Room:        "القاعة",
		Status:      "الحالة",
		Hospitality: "الضيافة",
		Notes:       "الملاحظات",
		statusIn:    statusIn,
		statusOut:   invert(statusIn),
		kindIn:      kindIn,
		kindOut:     invert(kindIn),
	}
}

// CombinedSchema describes the sheet revision with from/to columns.
func CombinedSchema() Schema {
	s := baseSchema()
	s.Scheme = SchemeCombined
	s.From = "من"
	s.To = "إلى"

	return s
}

// SplitSchema describes the sheet revision with date + time columns.
func SplitSchema() Schema {
	s := baseSchema()
	s.Scheme = SchemeSplit
	s.Date = "التاريخ"
	s.StartTime = "من الساعة"
	s.EndTime = "إلى الساعة"

	return s
}

// SchemaFor resolves a configured scheme name; anything unrecognized falls
// back to the split encoding.
func SchemaFor(scheme string) Schema {
	if Scheme(scheme) == SchemeCombined {
		return CombinedSchema()
	}

	return SplitSchema()
}

// CanonicalStatus translates a wire status value; unknown values pass through.
func (s Schema) CanonicalStatus(wire string) string {
	if canonical, found := s.statusIn[wire]; found {
		return canonical
	}

	return wire
}

// WireStatus translates a canonical status back to the sheet's value;
// unknown values pass through.
func (s Schema) WireStatus(canonical string) string {
	if wire, found := s.statusOut[canonical]; found {
		return wire
	}

	return canonical
}

// CanonicalKind translates a wire meeting kind; unknown values pass through.
func (s Schema) CanonicalKind(wire string) string {
	if canonical, found := s.kindIn[wire]; found {
		return canonical
	}

	return wire
}

// WireKind translates a canonical meeting kind back to the sheet's value.
func (s Schema) WireKind(canonical string) string {
	if wire, found := s.kindOut[canonical]; found {
		return wire
	}

	return canonical
}

// FromRecord decodes one sheet row into the canonical booking.
func FromRecord(rec sheetapi.Record, s Schema) Booking {
	b := Booking{
		ID:          rec.String(s.ID),
		Requester:   rec.String(s.Requester),
		Department:  rec.String(s.Department),
		Title:       rec.String(s.Title),
		Kind:        s.CanonicalKind(rec.String(s.Kind)),
		Attendees:   rec.Int(s.Attendees),
		Room:        rec.String(s.Room),
		Status:      s.CanonicalStatus(rec.String(s.Status)),
		Hospitality: rec.String(s.Hospitality),
		Notes:       rec.String(s.Notes),
	}

	if s.Scheme == SchemeCombined {
		b.From = rec.String(s.From)
		b.To = rec.String(s.To)
	} else {
		b.Date = rec.String(s.Date)
		b.StartTime = rec.String(s.StartTime)
		b.EndTime = rec.String(s.EndTime)
	}

	return b
}

// ToRecord encodes the full canonical booking back into the sheet's wire
// shape. Writes always send the whole record; the remote store replaces the
// row wholesale (create when the identifier is empty, update otherwise).
func ToRecord(b Booking, s Schema) sheetapi.Record {
	rec := sheetapi.Record{
		s.ID:          b.ID,
		s.Requester:   b.Requester,
		s.Department:  b.Department,
		s.Title:       b.Title,
		s.Kind:        s.WireKind(b.Kind),
		s.Attendees:   b.Attendees,
		s.Room:        b.Room,
		s.Status:      s.WireStatus(b.Status),
		s.Hospitality: b.Hospitality,
		s.Notes:       b.Notes,
	}

	if s.Scheme == SchemeCombined {
		rec[s.From] = b.From
		rec[s.To] = b.To
	} else {
		rec[s.Date] = b.Date
		rec[s.StartTime] = b.StartTime
		rec[s.EndTime] = b.EndTime
	}

	return rec
}

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))

	for k, v := range m {
		out[v] = k
	}

	return out
}
