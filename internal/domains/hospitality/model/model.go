package model

import (
	"majlis/infras/sheetapi"
	bookingModel "majlis/internal/domains/booking/model"
)

const (
	EntityName = "hospitality"
)

// Sheet column names for the Hospitality collection.
const (
	FieldKind   = "نوع الاجتماع"
	FieldOption = "نوع الضيافة"
	FieldNotes  = "الملاحظات"
)

// Option is one hospitality package, tied to a meeting kind.
type Option struct {
	Kind   string
	Option string
	Notes  string
}

// FromRecord decodes one Hospitality row. The kind column uses the same
// localized values as bookings.
func FromRecord(rec sheetapi.Record) Option {
	schema := bookingModel.SplitSchema()

	return Option{
		Kind:   schema.CanonicalKind(rec.String(FieldKind)),
		Option: rec.String(FieldOption),
		Notes:  rec.String(FieldNotes),
	}
}
