package main

import (
	"context"
	"net/http"
	"openstatus-service/internal/app/config"
	"openstatus-service/internal/app/delivery/http/middlewares"
	"openstatus-service/internal/app/delivery/http/routers"
	"openstatus-service/internal/app/drivers/logger"
	"openstatus-service/internal/app/services/calcom"
	"openstatus-service/internal/app/services/hours"
	"openstatus-service/internal/app/services/locations"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()
	log.Info("Server started", zap.String("address", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Middlewares
	m := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Provider gateway
	scheduleClient := calcom.NewScheduleCalcomClient(bootstrap.InternalConfig)

	// Locations
	locationRegistry := locations.NewStaticRegistry(bootstrap.InternalConfig)

	// Hours
	clock := hours.NewClock()
	hoursUsecase := hours.NewHoursUsecase(clock, locationRegistry, scheduleClient, bootstrap.InternalConfig)
	hoursController := hours.NewHoursController(hoursUsecase, bootstrap.InternalConfig, bootstrap.Logger)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, m, hoursController)
}
