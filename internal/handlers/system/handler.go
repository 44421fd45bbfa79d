package system

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"majlis/infras/otel"
	"majlis/internal/snapshot"
	"majlis/shared/constant"
	"majlis/transport/http/response"
)

type Handler struct {
	store snapshot.Store
	otel  otel.Otel
}

func New(store snapshot.Store, otel otel.Otel) Handler {
	return Handler{
		store: store,
		otel:  otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/refresh", handler.Refresh)
}

// HealthRouter mounts the liveness endpoint outside the versioned prefix.
func (handler *Handler) HealthRouter(router chi.Router) {
	router.Get("/health", handler.Health)
}

type healthResponse struct {
	Status             string `json:"status"`
	SnapshotLoaded     bool   `json:"snapshot_loaded"`
	SnapshotAgeSeconds int    `json:"snapshot_age_seconds,omitempty"`
}

// Health reports liveness and the age of the held snapshot.
// @Summary Health check
// @Description Liveness probe. Reports whether a snapshot has been loaded and how old it is.
// @Tags System
// @Produce json
// @Success 200 {object} response.Data[healthResponse]
// @Router /health [get]
func (handler *Handler) Health(writer http.ResponseWriter, request *http.Request) {
	age, loaded := handler.store.Age()

	res := healthResponse{
		Status:         "ok",
		SnapshotLoaded: loaded,
	}

	if loaded {
		res.SnapshotAgeSeconds = int(age / time.Second)
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Refresh forces an immediate snapshot refresh.
// @Summary Force a snapshot refresh
// @Description Fetch a fresh document from the remote store and replace the held snapshot.
// @Tags System
// @Produce json
// @Success 200 {object} response.Message "Snapshot refreshed"
// @Failure 502 {object} response.Error
// @Router /v1/refresh [post]
func (handler *Handler) Refresh(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Refresh")
	defer scope.End()

	if err := handler.store.Refresh(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh snapshot")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Snapshot refreshed")
}
