package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"majlis/infras/otel"
	"majlis/internal/domains/dashboard/service"
	"majlis/shared/constant"
	"majlis/transport/http/response"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSummary)
	})
}

// GetSummary retrieves the dashboard cards and chart aggregates.
// @Summary Dashboard summary
// @Description Hand-maintained indicator cards plus aggregates computed from live bookings: the five busiest departments and the meeting-type distribution.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Data[dto.SummaryResponse]
// @Failure 502 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/dashboard [get]
func (handler *Handler) GetSummary(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	res, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard summary")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
