package utils

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// LoadEnv pulls a local .env into the process environment; absence is fine,
// container deployments set everything through real env vars.
func LoadEnv(logger *zap.Logger) {
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file loaded, relying on process environment")
	} else {
		logger.Info("Loaded .env file")
	}
}
