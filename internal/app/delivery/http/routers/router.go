package routers

import (
	"openstatus-service/internal/app/config"
	"openstatus-service/internal/app/delivery/http/middlewares"
	"openstatus-service/internal/app/services/hours"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	m *middlewares.Middlewares,
	hoursController *hours.HoursController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(
		internalConfig.App.MaxRequests,
		time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second,
	)
	router.Use(rateLimiter)

	router.Use(m.RequestIDMiddleware)
	router.Use(m.Logging(m.Log))
	router.Use(m.ErrorHandler)

	router.Get("/", hoursController.Index)

	router.Route("/time", func(r chi.Router) {
		attachTimeRouter(r, hoursController)
	})

	router.Route("/open", func(r chi.Router) {
		attachOpenStatusRouter(r, hoursController)
	})
}
