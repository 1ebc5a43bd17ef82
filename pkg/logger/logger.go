package logger

import (
	"os"

	"go.uber.org/zap"
)

// New builds the process-wide logger. Development mode when GIN_MODE is not
// "release" so local runs keep the readable console encoder.
func New() (*zap.Logger, error) {
	if os.Getenv("GIN_MODE") == "release" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
