package dto

import (
	"time"

	"majlis/internal/domains/booking/model"
	"majlis/shared/datetime"
	"majlis/shared/failure"
)

// CreateBookingRequest accepts canonical field names and date/time values;
// the schema translation to the deployed sheet's columns happens at write
// time, never in the transport layer.
type CreateBookingRequest struct {
	Requester   string `json:"requester"   validate:"required,max=100"`
	Department  string `json:"department"  validate:"required,max=100"`
	Title       string `json:"title"       validate:"required,max=200"`
	Kind        string `json:"kind"        validate:"required,oneof=internal external"`
	Date        string `json:"date"        validate:"required"`
	StartTime   string `json:"start_time"  validate:"required"`
	EndTime     string `json:"end_time"    validate:"required"`
	Attendees   int    `json:"attendees"   validate:"required,gte=1"`
	Room        string `json:"room"        validate:"required"`
	Hospitality string `json:"hospitality" validate:"omitempty"`
	Notes       string `json:"notes"       validate:"omitempty"`
}

// ToModel builds the canonical booking for a create. The identifier stays
// empty; the remote store assigns one. Both date/time field groups are
// populated so either wire scheme can encode the record.
func (c *CreateBookingRequest) ToModel(loc *time.Location) (model.Booking, error) {
	start, ok := datetime.ParseParts(c.Date, c.StartTime, loc)
	if !ok {
		return model.Booking{}, failure.BadRequestFromString("invalid booking date or start time")
	}

	end, ok := datetime.ParseParts(c.Date, c.EndTime, loc)
	if !ok {
		return model.Booking{}, failure.BadRequestFromString("invalid booking end time")
	}

	if !end.After(start) {
		return model.Booking{}, failure.BadRequestFromString("booking end time must be after start time")
	}

	return model.Booking{
		Requester:   c.Requester,
		Department:  c.Department,
		Title:       c.Title,
		Kind:        c.Kind,
		Date:        datetime.NormalizeDate(c.Date),
		StartTime:   c.StartTime,
		EndTime:     c.EndTime,
		From:        datetime.Format(start),
		To:          datetime.Format(end),
		Attendees:   c.Attendees,
		Room:        c.Room,
		Status:      model.StatusPending,
		Hospitality: c.Hospitality,
		Notes:       c.Notes,
	}, nil
}

// UpdateBookingRequest carries the full record; the sheet replaces the row
// wholesale, so partial updates are expressed by sending everything back.
type UpdateBookingRequest struct {
	Requester   string `json:"requester"   validate:"required,max=100"`
	Department  string `json:"department"  validate:"required,max=100"`
	Title       string `json:"title"       validate:"required,max=200"`
	Kind        string `json:"kind"        validate:"required,oneof=internal external"`
	Date        string `json:"date"        validate:"required"`
	StartTime   string `json:"start_time"  validate:"required"`
	EndTime     string `json:"end_time"    validate:"required"`
	Attendees   int    `json:"attendees"   validate:"required,gte=1"`
	Room        string `json:"room"        validate:"required"`
	Status      string `json:"status"      validate:"required"`
	Hospitality string `json:"hospitality" validate:"omitempty"`
	Notes       string `json:"notes"       validate:"omitempty"`
}

func (u *UpdateBookingRequest) ToModel(id string, loc *time.Location) (model.Booking, error) {
	create := CreateBookingRequest{
		Requester:   u.Requester,
		Department:  u.Department,
		Title:       u.Title,
		Kind:        u.Kind,
		Date:        u.Date,
		StartTime:   u.StartTime,
		EndTime:     u.EndTime,
		Attendees:   u.Attendees,
		Room:        u.Room,
		Hospitality: u.Hospitality,
		Notes:       u.Notes,
	}

	booking, err := create.ToModel(loc)
	if err != nil {
		return model.Booking{}, err
	}

	booking.ID = id
	booking.Status = u.Status

	return booking, nil
}

// ListBookingsRequest carries the free-text search term and the structured
// filters. All populated criteria must match (AND semantics); empty fields
// are skipped.
type ListBookingsRequest struct {
	Search string
	Room   string
	Status string
	Date   string
}

type BookingResponse struct {
	ID          string `json:"id"`
	Requester   string `json:"requester"`
	Department  string `json:"department"`
	Title       string `json:"title"`
	Kind        string `json:"kind"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	StartsAt    string `json:"starts_at,omitempty"`
	EndsAt      string `json:"ends_at,omitempty"`
	Attendees   int    `json:"attendees"`
	Room        string `json:"room"`
	Status      string `json:"status"`
	Hospitality string `json:"hospitality"`
	Notes       string `json:"notes"`
}

func (r *BookingResponse) FromModel(b model.Booking, loc *time.Location) {
	r.ID = b.ID
	r.Requester = b.Requester
	r.Department = b.Department
	r.Title = b.Title
	r.Kind = b.Kind
	r.Date = b.LocalDate(loc)
	r.StartTime = displayTime(b.From, b.StartTime, loc)
	r.EndTime = displayTime(b.To, b.EndTime, loc)
	r.Attendees = b.Attendees
	r.Room = b.Room
	r.Status = b.Status
	r.Hospitality = b.Hospitality
	r.Notes = b.Notes

	if t, ok := b.Start(loc); ok {
		r.StartsAt = t.Format(time.RFC3339)
	}

	if t, ok := b.End(loc); ok {
		r.EndsAt = t.Format(time.RFC3339)
	}
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, loc *time.Location) {
	r.Total = len(models)
	r.Bookings = make([]BookingResponse, len(models))

	for i, b := range models {
		r.Bookings[i].FromModel(b, loc)
	}
}

// Display states for the today schedule.
const (
	DisplayUpcoming   = "upcoming"
	DisplayInProgress = "in_progress"
	DisplayFinished   = "finished"
)

// TodayBookingResponse decorates a booking with its live display state.
// Progress is the elapsed share of the meeting in percent, pinned to 100
// once the meeting is over.
type TodayBookingResponse struct {
	BookingResponse
	DisplayState string `json:"display_state"`
	Progress     int    `json:"progress"`
}

type RoomScheduleResponse struct {
	Room     string                 `json:"room"`
	Bookings []TodayBookingResponse `json:"bookings"`
}

type GetTodayScheduleResponse struct {
	Date  string                 `json:"date"`
	Rooms []RoomScheduleResponse `json:"rooms"`
}

// displayTime renders whichever raw time field the record carries. Combined
// values are parsed and reformatted; split values only need the spreadsheet
// serial fixed up.
func displayTime(combined, split string, loc *time.Location) string {
	if combined != "" {
		if t, ok := datetime.Parse(combined, loc); ok {
			return t.In(loc).Format("3:04 PM")
		}

		return combined
	}

	return datetime.FormatTime(split)
}
