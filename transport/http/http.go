package http

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"

	"majlis/config"
	"majlis/internal/snapshot"
	"majlis/transport/http/middleware"
	"majlis/transport/http/response"
	"majlis/transport/http/router"
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	State      ServerState
	middleware middleware.AppMiddleware
	store      snapshot.Store
	mux        *chi.Mux
}

func New(cfg *config.Config, r router.Router, appMiddleware middleware.AppMiddleware, store snapshot.Store) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		middleware: appMiddleware,
		store:      store,
	}
}

func (h *HTTP) Serve() {
	h.setup()
	h.store.StartRefresher()

	server := &http.Server{
		Addr:    net.JoinHostPort("0.0.0.0", h.Config.Server.Port),
		Handler: h.mux,
	}

	h.setupGracefulShutdown(server)

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// ServeHTTP lets the whole service run behind a serverless adapter. The
// background refresher is not started in that mode; reads fall back to the
// cache mirror or fetch on demand via the refresh endpoint.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()
	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	if h.mux != nil {
		return
	}

	h.setupRoutes()
	h.State = ServerStateReady
}

func (h *HTTP) setupRoutes() {
	mux := chi.NewRouter()

	mux.Use(h.middleware.Tracing)
	mux.Use(h.middleware.RateLimit())

	if h.Config.App.CORS.Enable {
		mux.Use(cors.Handler(cors.Options{
			AllowCredentials: h.Config.App.CORS.AllowCredentials,
			AllowedHeaders:   h.Config.App.CORS.AllowedHeaders,
			AllowedMethods:   h.Config.App.CORS.AllowedMethods,
			AllowedOrigins:   h.Config.App.CORS.AllowedOrigins,
			MaxAge:           h.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	mux.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if h.State > ServerStateReady {
				response.WithPreparingShutdown(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	})

	mux.Get("/swagger/*", httpSwagger.WrapHandler)

	h.Router.SetupRoutes(mux)

	h.mux = mux
}

func (h *HTTP) setupGracefulShutdown(server *http.Server) {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh, server)
}

func (h *HTTP) respondToSigterm(done chan os.Signal, server *http.Server) {
	<-done

	defer os.Exit(0)

	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env != "development" {
		log.Info().Msg("Received SIGTERM.")
		log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

		h.State = ServerStateInGracePeriod

		time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)
	} else {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")
	}

	h.State = ServerStateInCleanupPeriod

	h.store.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown was not clean")
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
