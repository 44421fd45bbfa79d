package router

import (
	"github.com/go-chi/chi/v5"

	"majlis/internal/handlers/booking"
	"majlis/internal/handlers/dashboard"
	"majlis/internal/handlers/hospitality"
	"majlis/internal/handlers/room"
	"majlis/internal/handlers/system"
)

type DomainHandlers struct {
	Booking     booking.Handler
	Room        room.Handler
	Hospitality hospitality.Handler
	Dashboard   dashboard.Handler
	System      system.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.System.HealthRouter(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Hospitality.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.System.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
