package datetime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"majlis/shared/datetime"
)

var riyadh = time.FixedZone("AST", 3*60*60)

func TestParse_CombinedFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "slash date with english PM marker",
			input: "2025/11/12 02:00 PM",
			want:  time.Date(2025, 11, 12, 14, 0, 0, 0, riyadh),
		},
		{
			name:  "arabic time-then-date layout",
			input: "3:00:00 م 2025/11/12",
			want:  time.Date(2025, 11, 12, 15, 0, 0, 0, riyadh),
		},
		{
			name:  "arabic AM marker",
			input: "2025-03-01 9:15 ص",
			want:  time.Date(2025, 3, 1, 9, 15, 0, 0, riyadh),
		},
		{
			name:  "plain date",
			input: "2025-03-01",
			want:  time.Date(2025, 3, 1, 0, 0, 0, 0, riyadh),
		},
		{
			name:  "24 hour clock",
			input: "2025-03-01 14:30",
			want:  time.Date(2025, 3, 1, 14, 30, 0, 0, riyadh),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := datetime.Parse(tt.input, riyadh)

			assert.True(t, ok)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParse_ISOInstant(t *testing.T) {
	got, ok := datetime.Parse("2025-11-12T14:00:00.000Z", riyadh)

	assert.True(t, ok)
	assert.True(t, got.Equal(time.Date(2025, 11, 12, 14, 0, 0, 0, time.UTC)))
}

func TestParse_Unparseable(t *testing.T) {
	for _, input := range []string{"", "   ", "garbage", "tomorrow at noon", "99/99"} {
		_, ok := datetime.Parse(input, riyadh)
		assert.False(t, ok, "expected %q to be unparseable", input)
	}
}

func TestParseParts_WallClockFidelity(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
		timeStr string
		want    time.Time
	}{
		{
			name:    "iso date with arabic PM marker adds twelve",
			dateStr: "2025-03-01",
			timeStr: "2:30 م",
			want:    time.Date(2025, 3, 1, 14, 30, 0, 0, riyadh),
		},
		{
			name:    "day first date with english marker",
			dateStr: "01/03/2025",
			timeStr: "2:30 PM",
			want:    time.Date(2025, 3, 1, 14, 30, 0, 0, riyadh),
		},
		{
			name:    "arabic midnight is hour zero",
			dateStr: "2025-03-01",
			timeStr: "12:00 ص",
			want:    time.Date(2025, 3, 1, 0, 0, 0, 0, riyadh),
		},
		{
			name:    "noon stays twelve",
			dateStr: "2025-03-01",
			timeStr: "12:30 PM",
			want:    time.Date(2025, 3, 1, 12, 30, 0, 0, riyadh),
		},
		{
			name:    "bare clock without marker",
			dateStr: "22/5/2024",
			timeStr: "09:00",
			want:    time.Date(2024, 5, 22, 9, 0, 0, 0, riyadh),
		},
		{
			name:    "bidi control characters stripped",
			dateStr: "2025-03-01",
			timeStr: "‏‫2:30 م‏",
			want:    time.Date(2025, 3, 1, 14, 30, 0, 0, riyadh),
		},
		{
			name:    "spreadsheet serial time contributes utc clock",
			dateStr: "2025-03-01",
			timeStr: "1899-12-30T05:30:00.000Z",
			want:    time.Date(2025, 3, 1, 5, 30, 0, 0, riyadh),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := datetime.ParseParts(tt.dateStr, tt.timeStr, riyadh)

			assert.True(t, ok)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseParts_Unparseable(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
		timeStr string
	}{
		{name: "empty fields", dateStr: "", timeStr: ""},
		{name: "garbage time", dateStr: "2025-03-01", timeStr: "soon"},
		{name: "two segment date", dateStr: "2025-03", timeStr: "10:00"},
		{name: "non numeric date", dateStr: "a-b-c", timeStr: "10:00"},
		{name: "impossible calendar date", dateStr: "2025-13-40", timeStr: "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := datetime.ParseParts(tt.dateStr, tt.timeStr, riyadh)
			assert.False(t, ok)
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "2024-05-22", want: "2024-05-22"},
		{input: "22/5/2024", want: "2024-05-22"},
		{input: "2/5/2024", want: "2024-05-02"},
		{input: "2024-5-2", want: "2024-05-02"},
		{input: "2024-05-22T00:00:00.000Z", want: "2024-05-22"},
		{input: "not a date", want: "not a date"},
		{input: "1-2", want: "1-2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, datetime.NormalizeDate(tt.input))
		})
	}
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "5:00 AM", datetime.FormatTime("1899-12-30T05:00:00.000Z"))
	assert.Equal(t, "2:30 PM", datetime.FormatTime("1899-12-30T14:30:00Z"))
	assert.Equal(t, "10:00", datetime.FormatTime("10:00"))
	assert.Equal(t, "2:30 م", datetime.FormatTime("2:30 م"))
}

func TestRoundTrip_DisplayThenParse(t *testing.T) {
	parsed, ok := datetime.ParseParts("2025-03-01", "2:30 م", riyadh)
	assert.True(t, ok)

	display := datetime.Format(parsed)
	assert.Equal(t, "2025-03-01 2:30 PM", display)

	reparsed, ok := datetime.Parse(display, riyadh)
	assert.True(t, ok)
	assert.True(t, parsed.Equal(reparsed))
}
