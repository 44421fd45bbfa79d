package service

import (
	"context"
	"sort"

	"majlis/infras/otel"
	bookingModel "majlis/internal/domains/booking/model"
	bookingRepo "majlis/internal/domains/booking/repository"
	"majlis/internal/domains/dashboard/model"
	"majlis/internal/domains/dashboard/model/dto"
	"majlis/internal/snapshot"
	"majlis/shared/constant"
)

// topDepartmentsLimit caps the busiest-departments chart.
const topDepartmentsLimit = 5

type Dashboard interface {
	Summary(ctx context.Context) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	store    snapshot.Store
	bookings bookingRepo.Booking
	otel     otel.Otel
}

func New(store snapshot.Store, bookings bookingRepo.Booking, ot otel.Otel) Dashboard {
	return &serviceImpl{
		store:    store,
		bookings: bookings,
		otel:     ot,
	}
}

func (s *serviceImpl) Summary(ctx context.Context) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DashboardSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	doc, err := s.store.Current(ctx)
	if err != nil {
		return res, err
	}

	indicators := make([]model.Indicator, 0, len(doc.Dashboard))
	for _, rec := range doc.Dashboard {
		indicators = append(indicators, model.FromRecord(rec))
	}

	bookings, err := s.bookings.GetAll(ctx)
	if err != nil {
		return res, err
	}

	res.TotalMeetings = model.Lookup(indicators, model.IndicatorTotalMeetings)
	res.InternalMeetings = model.Lookup(indicators, model.IndicatorInternalMeetings)
	res.ExternalMeetings = model.Lookup(indicators, model.IndicatorExternalMeetings)
	res.BusiestDay = model.Lookup(indicators, model.IndicatorBusiestDay)
	res.TopDepartments = topDepartments(bookings)
	res.MeetingTypes = meetingTypes(bookings)

	res.Indicators = make([]dto.IndicatorResponse, len(indicators))
	for i, ind := range indicators {
		res.Indicators[i] = dto.IndicatorResponse{Label: ind.Label, Value: ind.Value, Notes: ind.Notes}
	}

	return res, nil
}

// topDepartments counts bookings per department and keeps the five busiest,
// descending. Ties break alphabetically so the chart is stable between
// refreshes.
func topDepartments(bookings []bookingModel.Booking) []dto.DepartmentCount {
	counts := make(map[string]int)

	for _, b := range bookings {
		if b.Department == "" {
			continue
		}

		counts[b.Department]++
	}

	out := make([]dto.DepartmentCount, 0, len(counts))
	for dept, count := range counts {
		out = append(out, dto.DepartmentCount{Department: dept, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}

		return out[i].Department < out[j].Department
	})

	if len(out) > topDepartmentsLimit {
		out = out[:topDepartmentsLimit]
	}

	return out
}

func meetingTypes(bookings []bookingModel.Booking) []dto.MeetingTypeCount {
	internal, external := 0, 0

	for _, b := range bookings {
		switch b.Kind {
		case bookingModel.KindInternal:
			internal++
		case bookingModel.KindExternal:
			external++
		}
	}

	return []dto.MeetingTypeCount{
		{Kind: bookingModel.KindInternal, Count: internal},
		{Kind: bookingModel.KindExternal, Count: external},
	}
}
