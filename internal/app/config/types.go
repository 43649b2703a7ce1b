package config

type (
	InternalConfig struct {
		App  App
		SAMS SAMS
	}

	DriverConfig struct {
		Logger Logger
	}

	App struct {
		Env     string
		Version string
	}

	SAMS struct {
		BaseUrl         string
		CredentialsFile string
		Username        string
		Password        string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
