package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"majlis/config"
	"majlis/infras/otel"
	"majlis/infras/sheetapi"
	"majlis/internal/domains/booking/model"
	"majlis/internal/snapshot"
	"majlis/shared/constant"
)

// Booking reads decoded bookings from the held snapshot and proxies writes
// to the remote sheet. There is no local persistence.
type Booking interface {
	GetAll(ctx context.Context) ([]model.Booking, error)
	Submit(ctx context.Context, booking model.Booking) error
	Refresh(ctx context.Context) error
}

type repositoryImpl struct {
	store  snapshot.Store
	client sheetapi.Client
	schema model.Schema
	otel   otel.Otel
}

func New(store snapshot.Store, client sheetapi.Client, cfg *config.Config, ot otel.Otel) Booking {
	return &repositoryImpl{
		store:  store,
		client: client,
		schema: model.SchemaFor(cfg.Sheet.Scheme),
		otel:   ot,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (bookings []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelSnapshotScopeName, constant.OtelSnapshotScopeName+".GetAllBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	doc, err := r.store.Current(ctx)
	if err != nil {
		return nil, err
	}

	bookings = make([]model.Booking, 0, len(doc.Bookings))
	for _, rec := range doc.Bookings {
		bookings = append(bookings, model.FromRecord(rec, r.schema))
	}

	return bookings, nil
}

func (r *repositoryImpl) Submit(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".SubmitBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.client.Submit(ctx, sheetapi.TargetBookings, model.ToRecord(booking, r.schema))
}

func (r *repositoryImpl) Refresh(ctx context.Context) error {
	return r.store.Refresh(ctx)
}
