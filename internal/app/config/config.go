package config

import (
	"github.com/KuechlerO/simple-sams-api/internal/pkg/constvars"
	"github.com/KuechlerO/simple-sams-api/internal/pkg/utils"

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
			Env:     utils.GetEnvString("APP_ENV", "development"),
			Version: utils.GetEnvString("APP_VERSION", "v1.0"),
		},
		SAMS: SAMS{
			BaseUrl:         utils.GetEnvString("SAMS_BASE_URL", constvars.SamsDefaultBaseUrl),
			CredentialsFile: utils.GetEnvString("SAMS_CREDENTIALS_FILE", ""),
			Username:        utils.GetEnvString("SAMS_USERNAME", ""),
			Password:        utils.GetEnvString("SAMS_PASSWORD", ""),
		},
	}
}
