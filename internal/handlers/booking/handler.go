package booking

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"majlis/infras/otel"
	"majlis/internal/domains/booking/model/dto"
	"majlis/internal/domains/booking/service"
	"majlis/shared/constant"
	"majlis/shared/failure"
	"majlis/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/upcoming", handler.GetUpcomingBookings)
		routerGroup.Get("/past", handler.GetPastBookings)
		routerGroup.Get("/today", handler.GetTodaySchedule)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Put("/{id}", handler.UpdateBooking)
	})
}

// GetBookings retrieves bookings with optional search and filters.
// @Summary List bookings
// @Description Retrieve all bookings, optionally narrowed by a free-text search and exact filters on room, status and date. All criteria combine with AND.
// @Tags Booking
// @Produce json
// @Param q query string false "Free-text search over title, requester, department and identifier"
// @Param room query string false "Exact room name"
// @Param status query string false "Canonical status (pending, approved, rejected)"
// @Param date query string false "Calendar date, any supported order"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 502 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	query := request.URL.Query()
	req := dto.ListBookingsRequest{
		Search: query.Get(constant.RequestParamSearch),
		Room:   query.Get(constant.RequestParamRoom),
		Status: query.Get(constant.RequestParamStatus),
		Date:   query.Get(constant.RequestParamDate),
	}

	res, err := handler.service.GetAll(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetUpcomingBookings retrieves bookings that have not ended yet.
// @Summary List upcoming bookings
// @Description Bookings whose end time is at or after now, ascending by start time. Records with an unreadable end time are omitted.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 502 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings/upcoming [get]
func (handler *Handler) GetUpcomingBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUpcomingBookings")
	defer scope.End()

	res, err := handler.service.Upcoming(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get upcoming bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetPastBookings retrieves bookings that have already ended.
// @Summary List past bookings
// @Description Bookings whose end time is before now, descending by start time.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 502 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings/past [get]
func (handler *Handler) GetPastBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPastBookings")
	defer scope.End()

	res, err := handler.service.Past(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get past bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetTodaySchedule retrieves today's approved bookings grouped by room.
// @Summary Today's schedule
// @Description Approved bookings for the current day in the application timezone, grouped by room with a live display state and progress percentage per entry.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetTodayScheduleResponse]
// @Failure 502 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings/today [get]
func (handler *Handler) GetTodaySchedule(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodaySchedule")
	defer scope.End()

	res, err := handler.service.Today(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get today schedule")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateBooking submits a new booking request to the remote store.
// @Summary Create a booking
// @Description Create a new booking in pending status. The record is proxied to the remote store and the snapshot is refreshed.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} response.Message "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	var req dto.CreateBookingRequest
	if err := json.NewDecoder(request.Body).Decode(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode create booking request")

		response.WithError(writer, failure.BadRequest(err))

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Booking created successfully")
}

// UpdateBooking replaces a booking record on the remote store.
// @Summary Update a booking
// @Description Full-record update; the remote store replaces the row wholesale and applies last-write-wins.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking identifier"
// @Param request body dto.UpdateBookingRequest true "Booking details"
// @Success 200 {object} response.Message "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings/{id} [put]
func (handler *Handler) UpdateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	if id == "" {
		response.WithError(writer, failure.BadRequestFromString("booking identifier is required"))

		return
	}

	var req dto.UpdateBookingRequest
	if err := json.NewDecoder(request.Body).Decode(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode update booking request")

		response.WithError(writer, failure.BadRequest(err))

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking updated successfully")
}
