package config

import (
	"openstatus-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1.0"),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 1),
		},
		Calcom: Calcom{
			BaseURL: utils.GetEnvString("CALCOM_BASE_URL", "https://api.cal.com/v2"),
			// No default on purpose: an unset key only surfaces when an
			// /open route is hit, never at startup.
			APIKey:                utils.GetEnvString("CALCOM_API_KEY", ""),
			APIVersion:            utils.GetEnvString("CALCOM_API_VERSION", "2024-06-11"),
			TimeoutInSeconds:      utils.GetEnvInt("CALCOM_TIMEOUT_IN_SECONDS", 8),
			ScheduleIDHongKong:    utils.GetEnvString("CALCOM_SCHEDULE_ID_HK", "441618"),
			ScheduleIDTsimShaTsui: utils.GetEnvString("CALCOM_SCHEDULE_ID_TST", "441619"),
		},
	}
}
