package model

import (
	"majlis/infras/sheetapi"
)

const (
	EntityName = "room"
)

// Sheet column names for the Rooms collection.
const (
	FieldName      = "اسم القاعة"
	FieldLocation  = "الموقع"
	FieldCapacity  = "السعة"
	FieldAvailable = "متاحة"

	availableYes = "نعم"
)

type Room struct {
	Name      string
	Location  string
	Capacity  int
	Available bool
}

// FromRecord decodes one Rooms row. Availability is a yes/no string on the
// wire; anything that is not the yes value counts as unavailable.
func FromRecord(rec sheetapi.Record) Room {
	return Room{
		Name:      rec.String(FieldName),
		Location:  rec.String(FieldLocation),
		Capacity:  rec.Int(FieldCapacity),
		Available: rec.String(FieldAvailable) == availableYes,
	}
}
