package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"majlis/infras/sheetapi"
	"majlis/internal/domains/booking/model"
)

var riyadh = time.FixedZone("AST", 3*60*60)

func splitRecord() sheetapi.Record {
	return sheetapi.Record{
		"رقم الحجز":     "BK-104",
		"اسم الموظف":    "سارة",
		"الإدارة":       "الموارد البشرية",
		"عنوان الاجتماع": "مقابلة توظيف",
		"نوع الاجتماع":  "داخلي",
		"التاريخ":       "22/5/2025",
		"من الساعة":     "2:30 م",
		"إلى الساعة":    "3:30 م",
		"عدد الحضور":    float64(4),
		"القاعة":        "قاعة الشورى",
		"الحالة":        "معتمد",
		"الضيافة":       "قهوة وماء",
		"الملاحظات":     "",
	}
}

func TestFromRecord_SplitScheme(t *testing.T) {
	b := model.FromRecord(splitRecord(), model.SplitSchema())

	assert.Equal(t, "BK-104", b.ID)
	assert.Equal(t, model.KindInternal, b.Kind)
	assert.Equal(t, model.StatusApproved, b.Status)
	assert.Equal(t, 4, b.Attendees)
	assert.Equal(t, "قاعة الشورى", b.Room)
	assert.Empty(t, b.From)

	start, ok := b.Start(riyadh)
	assert.True(t, ok)
	assert.True(t, start.Equal(time.Date(2025, 5, 22, 14, 30, 0, 0, riyadh)))

	end, ok := b.End(riyadh)
	assert.True(t, ok)
	assert.True(t, end.Equal(time.Date(2025, 5, 22, 15, 30, 0, 0, riyadh)))

	assert.Equal(t, "2025-05-22", b.LocalDate(riyadh))
}

func TestFromRecord_CombinedScheme(t *testing.T) {
	rec := sheetapi.Record{
		"رقم الحجز":     "BK-77",
		"اسم الموظف":    "خالد",
		"الإدارة":       "تقنية المعلومات",
		"عنوان الاجتماع": "مراجعة المشروع",
		"نوع الاجتماع":  "خارجي",
		"من":            "2025/11/12 02:00 PM",
		"إلى":           "3:00:00 م 2025/11/12",
		"عدد الحضور":    "6",
		"القاعة":        "قاعة المجلس",
		"الحالة":        "قيد الانتظار",
	}

	b := model.FromRecord(rec, model.CombinedSchema())

	assert.Equal(t, model.KindExternal, b.Kind)
	assert.Equal(t, model.StatusPending, b.Status)
	assert.Equal(t, 6, b.Attendees)

	start, ok := b.Start(riyadh)
	assert.True(t, ok)
	assert.True(t, start.Equal(time.Date(2025, 11, 12, 14, 0, 0, 0, riyadh)))

	end, ok := b.End(riyadh)
	assert.True(t, ok)
	assert.True(t, end.Equal(time.Date(2025, 11, 12, 15, 0, 0, 0, riyadh)))

	assert.Equal(t, "2025-11-12", b.LocalDate(riyadh))
}

func TestFromRecord_UnknownStatusPassesThrough(t *testing.T) {
	rec := splitRecord()
	rec["الحالة"] = "ملغي"

	b := model.FromRecord(rec, model.SplitSchema())

	assert.Equal(t, "ملغي", b.Status)
}

func TestStartEnd_UnparseableYieldsFalse(t *testing.T) {
	b := model.Booking{Date: "garbage", StartTime: "soon", EndTime: "later"}

	_, ok := b.Start(riyadh)
	assert.False(t, ok)

	_, ok = b.End(riyadh)
	assert.False(t, ok)
}

func TestToRecord_RoundTrip(t *testing.T) {
	schema := model.SplitSchema()
	original := model.FromRecord(splitRecord(), schema)

	rec := model.ToRecord(original, schema)
	decoded := model.FromRecord(rec, schema)

	// Attendees comes back as int rather than float64, everything else is
	// the identical wire shape.
	assert.Equal(t, original, decoded)
	assert.Equal(t, "معتمد", rec.String("الحالة"))
	assert.Equal(t, "داخلي", rec.String("نوع الاجتماع"))
}

func TestSchemaFor(t *testing.T) {
	assert.Equal(t, model.SchemeCombined, model.SchemaFor("combined").Scheme)
	assert.Equal(t, model.SchemeSplit, model.SchemaFor("split").Scheme)
	assert.Equal(t, model.SchemeSplit, model.SchemaFor("").Scheme)
}

func TestSearchText(t *testing.T) {
	b := model.Booking{ID: "BK-9", Title: "Budget Review", Requester: "Huda", Department: "Finance"}

	text := b.SearchText()

	assert.Contains(t, text, "budget review")
	assert.Contains(t, text, "huda")
	assert.Contains(t, text, "finance")
	assert.Contains(t, text, "bk-9")
}
