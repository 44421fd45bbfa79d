package hospitality

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"majlis/infras/otel"
	"majlis/internal/domains/hospitality/service"
	"majlis/shared/constant"
	"majlis/transport/http/response"
)

type Handler struct {
	service service.Hospitality
	otel    otel.Otel
}

func New(service service.Hospitality, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hospitality", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetOptions)
		routerGroup.Get("/suggest", handler.Suggest)
	})
}

// GetOptions retrieves the hospitality packages.
// @Summary List hospitality options
// @Description Retrieve all hospitality packages with the meeting kind each one applies to.
// @Tags Hospitality
// @Produce json
// @Success 200 {object} response.Data[dto.GetOptionsResponse]
// @Failure 502 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/hospitality [get]
func (handler *Handler) GetOptions(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOptions")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hospitality options")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Suggest retrieves the default hospitality package for a meeting kind.
// @Summary Suggest a hospitality package
// @Description First package matching the given meeting kind, in sheet order. No match yields an empty suggestion.
// @Tags Hospitality
// @Produce json
// @Param kind query string true "Meeting kind (internal or external)"
// @Success 200 {object} response.Data[dto.SuggestionResponse]
// @Failure 502 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/hospitality/suggest [get]
func (handler *Handler) Suggest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Suggest")
	defer scope.End()

	kind := request.URL.Query().Get(constant.RequestParamKind)

	res, err := handler.service.Suggest(ctx, kind)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to suggest hospitality")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
