package model

import (
	"majlis/infras/sheetapi"
)

const (
	EntityName = "dashboard"
)

// Sheet column names for the Dashboard collection.
const (
	FieldIndicator = "المؤشر"
	FieldValue     = "القيمة"
	FieldNotes     = "الملاحظات"
)

// Well-known indicator labels maintained by the sheet owners.
const (
	IndicatorTotalMeetings    = "عدد الاجتماعات الكلي"
	IndicatorInternalMeetings = "عدد الاجتماعات الداخلية"
	IndicatorExternalMeetings = "عدد الاجتماعات الخارجية"
	IndicatorBusiestDay       = "أكثر يوم استخدامًا"
)

// ValueUnavailable is the placeholder for a missing indicator.
const ValueUnavailable = "غير متوفر"

// Indicator is one row of the hand-maintained indicator table.
type Indicator struct {
	Label string
	Value string
	Notes string
}

func FromRecord(rec sheetapi.Record) Indicator {
	return Indicator{
		Label: rec.String(FieldIndicator),
		Value: rec.String(FieldValue),
		Notes: rec.String(FieldNotes),
	}
}

// Lookup finds an indicator value by label; missing labels yield the
// unavailable placeholder.
func Lookup(indicators []Indicator, label string) string {
	for _, ind := range indicators {
		if ind.Label == label {
			return ind.Value
		}
	}

	return ValueUnavailable
}
