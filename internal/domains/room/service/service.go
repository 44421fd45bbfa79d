package service

import (
	"context"

	"majlis/infras/otel"
	"majlis/internal/domains/room/model"
	"majlis/internal/domains/room/model/dto"
	"majlis/internal/snapshot"
	"majlis/shared/constant"
)

// Room serves the room catalog straight from the held snapshot. The
// collection is read-only and small, so there is no repository layer and no
// cache in front of it.
type Room interface {
	GetAll(ctx context.Context) (dto.GetRoomsResponse, error)
}

type serviceImpl struct {
	store snapshot.Store
	otel  otel.Otel
}

func New(store snapshot.Store, ot otel.Otel) Room {
	return &serviceImpl{
		store: store,
		otel:  ot,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	doc, err := s.store.Current(ctx)
	if err != nil {
		return res, err
	}

	rooms := make([]model.Room, 0, len(doc.Rooms))
	for _, rec := range doc.Rooms {
		rooms = append(rooms, model.FromRecord(rec))
	}

	res.FromModels(rooms)

	return res, nil
}
