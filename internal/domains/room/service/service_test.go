package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"majlis/infras/otel/mocks"
	"majlis/infras/sheetapi"
	"majlis/internal/domains/room/service"
	snapshotMocks "majlis/internal/snapshot/mocks"
	"majlis/shared/failure"
)

func TestRoomService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := snapshotMocks.NewMockStore(ctrl)

	doc := sheetapi.Document{
		Rooms: []sheetapi.Record{
			{
				"اسم القاعة": "Majlis A",
				"الموقع":     "Floor 2",
				"السعة":      float64(12),
				"متاحة":      "نعم",
			},
			{
				"اسم القاعة": "Majlis B",
				"الموقع":     "Floor 3",
				"السعة":      "8",
				"متاحة":      "لا",
			},
		},
	}

	mockStore.EXPECT().Current(gomock.Any()).Return(doc, nil)

	svc := service.New(mockStore, mocks.NewOtel())

	res, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, res.Total)

	assert.Equal(t, "Majlis A", res.Rooms[0].Name)
	assert.Equal(t, 12, res.Rooms[0].Capacity)
	assert.True(t, res.Rooms[0].Available)

	assert.Equal(t, 8, res.Rooms[1].Capacity)
	assert.False(t, res.Rooms[1].Available)
}

func TestRoomService_GetAllSnapshotEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := snapshotMocks.NewMockStore(ctrl)

	mockStore.EXPECT().Current(gomock.Any()).Return(sheetapi.Document{}, failure.SnapshotUnavailable)

	svc := service.New(mockStore, mocks.NewOtel())

	_, err := svc.GetAll(context.Background())
	assert.ErrorIs(t, err, failure.SnapshotUnavailable)
}
