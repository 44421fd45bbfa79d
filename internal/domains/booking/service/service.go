package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"majlis/config"
	"majlis/infras/otel"
	"majlis/internal/domains/booking/model"
	"majlis/internal/domains/booking/model/dto"
	"majlis/internal/domains/booking/repository"
	"majlis/shared"
	"majlis/shared/cache"
	"majlis/shared/constant"
	"majlis/shared/datetime"
	"majlis/shared/timezone"
	"majlis/shared/validator"
)

const (
	cacheGetAllBookings = "booking:gets"
)

type Booking interface {
	GetAll(ctx context.Context, req dto.ListBookingsRequest) (dto.GetBookingsResponse, error)
	Upcoming(ctx context.Context) (dto.GetBookingsResponse, error)
	Past(ctx context.Context) (dto.GetBookingsResponse, error)
	Today(ctx context.Context) (dto.GetTodayScheduleResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) error
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
}

type serviceImpl struct {
	repo  repository.Booking
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	now   func() time.Time
	loc   *time.Location
}

func New(repo repository.Booking, cfg *config.Config, redisCache cache.RedisCache, ot otel.Otel) Booking {
	return NewWithClock(repo, cfg, redisCache, ot, timezone.Now, timezone.GetLocation())
}

// NewWithClock wires an explicit clock and zone. Classification is a pure
// function of (snapshot, now, zone); tests pin both.
func NewWithClock(repo repository.Booking, cfg *config.Config, redisCache cache.RedisCache, ot otel.Otel, now func() time.Time, loc *time.Location) Booking {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: redisCache,
		otel:  ot,
		now:   now,
		loc:   loc,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req dto.ListBookingsRequest) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllBookings, req.Search, req.Room, req.Status, req.Date)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		return res, err
	}

	filtered := s.filter(bookings, req)
	s.sortByStart(filtered, false)

	res.FromModels(filtered, s.loc)

	if cacheErr := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); cacheErr != nil {
		log.Warn().Err(cacheErr).Str("cacheKey", cacheKey).Msg("failed to cache bookings")
	}

	return res, nil
}

func (s *serviceImpl) Upcoming(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upcoming")
	defer scope.End()
	defer scope.TraceIfError(err)

	upcoming, _, err := s.split(ctx)
	if err != nil {
		return res, err
	}

	res.FromModels(upcoming, s.loc)

	return res, nil
}

func (s *serviceImpl) Past(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Past")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, past, err := s.split(ctx)
	if err != nil {
		return res, err
	}

	res.FromModels(past, s.loc)

	return res, nil
}

func (s *serviceImpl) Today(ctx context.Context) (res dto.GetTodayScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Today")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		return res, err
	}

	now := s.now()
	today := now.In(s.loc).Format("2006-01-02")

	byRoom := make(map[string][]model.Booking)

	for _, b := range bookings {
		if b.Status != model.StatusApproved || b.LocalDate(s.loc) != today {
			continue
		}

		byRoom[b.Room] = append(byRoom[b.Room], b)
	}

	rooms := make([]string, 0, len(byRoom))
	for room := range byRoom {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)

	res.Date = today
	res.Rooms = make([]dto.RoomScheduleResponse, 0, len(rooms))

	for _, room := range rooms {
		group := byRoom[room]
		s.sortByStart(group, false)

		entries := make([]dto.TodayBookingResponse, len(group))
		for i, b := range group {
			entries[i].FromModel(b, s.loc)
			entries[i].DisplayState, entries[i].Progress = s.displayState(b, now)
		}

		res.Rooms = append(res.Rooms, dto.RoomScheduleResponse{Room: room, Bookings: entries})
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	booking, err := req.ToModel(s.loc)
	if err != nil {
		return err
	}

	return s.submit(ctx, booking)
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	booking, err := req.ToModel(id, s.loc)
	if err != nil {
		return err
	}

	return s.submit(ctx, booking)
}

// submit proxies the record to the remote store, then refreshes so the next
// read reflects the write. The store applies last-write-wins; a refresh
// failure after a successful write is only logged.
func (s *serviceImpl) submit(ctx context.Context, booking model.Booking) error {
	if err := s.repo.Submit(ctx, booking); err != nil {
		return err
	}

	if err := s.repo.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("snapshot refresh after booking write failed")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBookings)

	return nil
}

// split partitions bookings around now by their parsed end instant. Records
// whose end cannot be parsed belong to neither bucket; they are logged once
// as a data quality signal and dropped from both views.
func (s *serviceImpl) split(ctx context.Context) (upcoming, past []model.Booking, err error) {
	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()

	for _, b := range bookings {
		end, ok := b.End(s.loc)
		if !ok {
			log.Warn().
				Str("booking_id", b.ID).
				Str("room", b.Room).
				Msg("booking has unparseable end time, dropped from time views")

			continue
		}

		// A booking ending exactly now is still upcoming; past is strictly
		// before now.
		if !end.Before(now) {
			upcoming = append(upcoming, b)
		} else {
			past = append(past, b)
		}
	}

	s.sortByStart(upcoming, false)
	s.sortByStart(past, true)

	return upcoming, past, nil
}

// sortByStart orders bookings by parsed start instant. Unparseable starts
// sort after every parseable one so corrupt records sink to the bottom in
// both directions.
func (s *serviceImpl) sortByStart(bookings []model.Booking, desc bool) {
	sort.SliceStable(bookings, func(i, j int) bool {
		si, iOK := bookings[i].Start(s.loc)
		sj, jOK := bookings[j].Start(s.loc)

		if iOK != jOK {
			return iOK
		}

		if !iOK {
			return false
		}

		if desc {
			return si.After(sj)
		}

		return si.Before(sj)
	})
}

func (s *serviceImpl) filter(bookings []model.Booking, req dto.ListBookingsRequest) []model.Booking {
	search := strings.ToLower(strings.TrimSpace(req.Search))
	date := ""

	if req.Date != "" {
		date = datetime.NormalizeDate(req.Date)
	}

	filtered := make([]model.Booking, 0, len(bookings))

	for _, b := range bookings {
		if search != "" && !strings.Contains(b.SearchText(), search) {
			continue
		}

		if req.Room != "" && b.Room != req.Room {
			continue
		}

		if req.Status != "" && b.Status != req.Status {
			continue
		}

		if date != "" && b.LocalDate(s.loc) != date {
			continue
		}

		filtered = append(filtered, b)
	}

	return filtered
}

// displayState derives the live state of a today entry. Progress is the
// elapsed share of the meeting in percent, clamped to [0, 100].
func (s *serviceImpl) displayState(b model.Booking, now time.Time) (string, int) {
	start, startOK := b.Start(s.loc)
	end, endOK := b.End(s.loc)

	switch {
	case startOK && now.Before(start):
		return dto.DisplayUpcoming, 0
	case endOK && now.After(end):
		return dto.DisplayFinished, 100
	case startOK && endOK:
		total := end.Sub(start)
		if total <= 0 {
			return dto.DisplayInProgress, 100
		}

		progress := int(now.Sub(start) * 100 / total)
		if progress < 0 {
			progress = 0
		}

		if progress > 100 {
			progress = 100
		}

		return dto.DisplayInProgress, progress
	default:
		return dto.DisplayUpcoming, 0
	}
}
