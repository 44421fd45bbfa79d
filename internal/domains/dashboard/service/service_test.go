package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"majlis/infras/otel/mocks"
	"majlis/infras/sheetapi"
	bookingMocks "majlis/internal/domains/booking/mocks"
	bookingModel "majlis/internal/domains/booking/model"
	"majlis/internal/domains/dashboard/model"
	"majlis/internal/domains/dashboard/service"
	snapshotMocks "majlis/internal/snapshot/mocks"
)

func dashboardDoc() sheetapi.Document {
	return sheetapi.Document{
		Dashboard: []sheetapi.Record{
			{"المؤشر": "عدد الاجتماعات الكلي", "القيمة": float64(42)},
			{"المؤشر": "عدد الاجتماعات الداخلية", "القيمة": float64(30)},
			{"المؤشر": "عدد الاجتماعات الخارجية", "القيمة": float64(12)},
		},
	}
}

func deptBooking(dept, kind string) bookingModel.Booking {
	return bookingModel.Booking{Department: dept, Kind: kind}
}

func TestDashboardService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := snapshotMocks.NewMockStore(ctrl)
	mockRepo := bookingMocks.NewMockBooking(ctrl)

	bookings := []bookingModel.Booking{
		deptBooking("Finance", bookingModel.KindInternal),
		deptBooking("Finance", bookingModel.KindInternal),
		deptBooking("Finance", bookingModel.KindExternal),
		deptBooking("HR", bookingModel.KindInternal),
		deptBooking("HR", bookingModel.KindInternal),
		deptBooking("Legal", bookingModel.KindExternal),
		deptBooking("IT", bookingModel.KindInternal),
		deptBooking("Procurement", bookingModel.KindInternal),
		deptBooking("Operations", bookingModel.KindInternal),
		deptBooking("", bookingModel.KindInternal),
	}

	mockStore.EXPECT().Current(gomock.Any()).Return(dashboardDoc(), nil)
	mockRepo.EXPECT().GetAll(gomock.Any()).Return(bookings, nil)

	svc := service.New(mockStore, mockRepo, mocks.NewOtel())

	res, err := svc.Summary(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, "42", res.TotalMeetings)
	assert.Equal(t, "30", res.InternalMeetings)
	assert.Equal(t, "12", res.ExternalMeetings)

	// No busiest-day indicator row in the fixture.
	assert.Equal(t, model.ValueUnavailable, res.BusiestDay)

	// Six departments counted, top five kept, Finance first.
	assert.Len(t, res.TopDepartments, 5)
	assert.Equal(t, "Finance", res.TopDepartments[0].Department)
	assert.Equal(t, 3, res.TopDepartments[0].Count)
	assert.Equal(t, "HR", res.TopDepartments[1].Department)

	assert.Equal(t, 8, res.MeetingTypes[0].Count)
	assert.Equal(t, bookingModel.KindInternal, res.MeetingTypes[0].Kind)
	assert.Equal(t, 2, res.MeetingTypes[1].Count)
}
