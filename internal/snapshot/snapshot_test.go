package snapshot_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"majlis/config"
	"majlis/infras/otel/mocks"
	"majlis/infras/sheetapi"
	sheetMocks "majlis/infras/sheetapi/mocks"
	"majlis/internal/snapshot"
	cacheMocks "majlis/shared/cache/mocks"
	"majlis/shared/failure"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Sheet.RefreshIntervalSeconds = 1
	cfg.Cache.TTL = 60

	return cfg
}

func TestSnapshotStore_CurrentBeforeFirstFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := sheetMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))

	store := snapshot.New(mockClient, mockCache, testConfig(), mocks.NewOtel())

	_, err := store.Current(context.Background())
	assert.ErrorIs(t, err, failure.SnapshotUnavailable)

	_, loaded := store.Age()
	assert.False(t, loaded)
}

func TestSnapshotStore_RefreshReplacesDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := sheetMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	doc := sheetapi.Document{Bookings: []sheetapi.Record{{"رقم الحجز": "BK-1"}}}

	mockClient.EXPECT().Fetch(gomock.Any()).Return(doc, nil)
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	store := snapshot.New(mockClient, mockCache, testConfig(), mocks.NewOtel())

	assert.NoError(t, store.Refresh(context.Background()))

	got, err := store.Current(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got.Bookings, 1)

	age, loaded := store.Age()
	assert.True(t, loaded)
	assert.Less(t, age, time.Minute)
}

func TestSnapshotStore_RefreshFailureKeepsPrevious(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := sheetMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	doc := sheetapi.Document{Bookings: []sheetapi.Record{{"رقم الحجز": "BK-1"}}}

	first := mockClient.EXPECT().Fetch(gomock.Any()).Return(doc, nil)
	mockClient.EXPECT().Fetch(gomock.Any()).Return(sheetapi.Document{}, errors.New("upstream down")).After(first)
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	store := snapshot.New(mockClient, mockCache, testConfig(), mocks.NewOtel())

	assert.NoError(t, store.Refresh(context.Background()))
	assert.Error(t, store.Refresh(context.Background()))

	got, err := store.Current(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got.Bookings, 1)
}

func TestSnapshotStore_CurrentWarmsFromCacheMirror(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := sheetMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			doc := value.(*sheetapi.Document)
			doc.Bookings = []sheetapi.Record{{"رقم الحجز": "BK-9"}}
			return nil
		})

	store := snapshot.New(mockClient, mockCache, testConfig(), mocks.NewOtel())

	got, err := store.Current(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got.Bookings, 1)

	// The mirror counts as a load; no second cache read happens.
	got, err = store.Current(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got.Bookings, 1)
}

func TestSnapshotStore_RefresherStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := sheetMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockClient.EXPECT().Fetch(gomock.Any()).Return(sheetapi.Document{}, nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	store := snapshot.New(mockClient, mockCache, testConfig(), mocks.NewOtel())

	store.StartRefresher()
	store.Stop()

	// Stop before start is a no-op.
	snapshot.New(mockClient, mockCache, testConfig(), mocks.NewOtel()).Stop()
}
