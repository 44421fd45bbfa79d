package room

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"majlis/infras/otel"
	"majlis/internal/domains/room/service"
	"majlis/shared/constant"
	"majlis/transport/http/response"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
	})
}

// GetRooms retrieves the room catalog.
// @Summary List rooms
// @Description Retrieve all meeting rooms with location, capacity and availability.
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[dto.GetRoomsResponse]
// @Failure 502 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
