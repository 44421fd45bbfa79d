package service

import (
	"context"

	"majlis/infras/otel"
	"majlis/internal/domains/hospitality/model"
	"majlis/internal/domains/hospitality/model/dto"
	"majlis/internal/snapshot"
	"majlis/shared/constant"
)

type Hospitality interface {
	GetAll(ctx context.Context) (dto.GetOptionsResponse, error)
	// Suggest returns the default package for a meeting kind: the first
	// option in sheet order whose kind matches. No match means an empty
	// suggestion, not an error.
	Suggest(ctx context.Context, kind string) (dto.SuggestionResponse, error)
}

type serviceImpl struct {
	store snapshot.Store
	otel  otel.Otel
}

func New(store snapshot.Store, ot otel.Otel) Hospitality {
	return &serviceImpl{
		store: store,
		otel:  ot,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetOptionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllHospitality")
	defer scope.End()
	defer scope.TraceIfError(err)

	opts, err := s.options(ctx)
	if err != nil {
		return res, err
	}

	res.FromModels(opts)

	return res, nil
}

func (s *serviceImpl) Suggest(ctx context.Context, kind string) (res dto.SuggestionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SuggestHospitality")
	defer scope.End()
	defer scope.TraceIfError(err)

	opts, err := s.options(ctx)
	if err != nil {
		return res, err
	}

	res.Kind = kind

	for _, opt := range opts {
		if opt.Kind == kind {
			res.Option = opt.Option

			break
		}
	}

	return res, nil
}

func (s *serviceImpl) options(ctx context.Context) ([]model.Option, error) {
	doc, err := s.store.Current(ctx)
	if err != nil {
		return nil, err
	}

	opts := make([]model.Option, 0, len(doc.Hospitality))
	for _, rec := range doc.Hospitality {
		opts = append(opts, model.FromRecord(rec))
	}

	return opts, nil
}
