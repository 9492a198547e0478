package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"smart-home/internal/config"
)

// New builds the process logger: production defaults, stdout output, no
// sampling, stack traces from error level.
func New(cfg *config.Config) (*zap.Logger, error) {
	logCfg := zap.NewProductionConfig()

	level, err := zap.ParseAtomicLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	logCfg.Level = level
	logCfg.Encoding = strings.ToLower(cfg.LogFormat)
	logCfg.OutputPaths = []string{"stdout"}
	logCfg.ErrorOutputPaths = []string{"stdout"}
	logCfg.Sampling = nil

	return logCfg.Build(zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}
