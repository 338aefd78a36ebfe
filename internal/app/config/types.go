package config

type (
	InternalConfig struct {
		App    App
		Calcom Calcom
	}

	DriverConfig struct {
		Logger Logger
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		ShutdownTimeout           int
		MaxRequests               int
		MaxTimeRequestsPerSeconds int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	Calcom struct {
		BaseURL               string
		APIKey                string
		APIVersion            string
		TimeoutInSeconds      int
		ScheduleIDHongKong    string
		ScheduleIDTsimShaTsui string
	}
)
