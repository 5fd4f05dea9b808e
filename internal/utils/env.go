package utils

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// LoadEnv pulls a local .env into the process environment. Missing
// files are fine; deployments set the variables directly.
func LoadEnv(logger *zap.Logger) {
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file loaded, relying on process environment")
		return
	}
	logger.Info(".env file loaded")
}
