//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"majlis/config"
	"majlis/infras/otel"
	"majlis/infras/redis"
	"majlis/infras/sheetapi"
	"majlis/internal/snapshot"
	"majlis/shared/cache"
	"majlis/transport/http"
	"majlis/transport/http/middleware"
	"majlis/transport/http/router"

	bookingRepository "majlis/internal/domains/booking/repository"
	bookingService "majlis/internal/domains/booking/service"
	dashboardService "majlis/internal/domains/dashboard/service"
	hospitalityService "majlis/internal/domains/hospitality/service"
	roomService "majlis/internal/domains/room/service"

	bookingHandler "majlis/internal/handlers/booking"
	dashboardHandler "majlis/internal/handlers/dashboard"
	hospitalityHandler "majlis/internal/handlers/hospitality"
	roomHandler "majlis/internal/handlers/room"
	systemHandler "majlis/internal/handlers/system"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	sheetapi.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	snapshot.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var readDomains = wire.NewSet(
	roomService.New,
	hospitalityService.New,
	dashboardService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	readDomains,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	roomHandler.New,
	hospitalityHandler.New,
	dashboardHandler.New,
	systemHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
