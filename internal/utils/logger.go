package utils

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger returns a production logger unless ENV asks for dev output.
func NewLogger() (*zap.Logger, error) {
	if os.Getenv("ENV") == "dev" {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
