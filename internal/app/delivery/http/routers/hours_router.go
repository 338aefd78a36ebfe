package routers

import (
	"openstatus-service/internal/app/services/hours"

	"github.com/go-chi/chi/v5"
)

func attachTimeRouter(router chi.Router, c *hours.HoursController) {
	router.Get("/hk", c.GetCurrentTime)
}

func attachOpenStatusRouter(router chi.Router, c *hours.HoursController) {
	// The static /hk route is the legacy path and must stay registered
	// ahead of the parameterized one.
	router.Get("/hk", c.GetOpenStatusHongKong)
	router.Get("/{locationKey}", c.GetOpenStatusByLocation)
}
