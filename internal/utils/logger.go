package utils

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger picks the zap preset from ENV: production config everywhere
// except dev.
func NewLogger() (*zap.Logger, error) {
	if os.Getenv("ENV") == "dev" || os.Getenv("ENV") == "" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
