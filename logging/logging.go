// Package logging builds the application's zap logger.
package logging

import (
	"fmt"

	"go.uber.org/zap"

	"nodegraph/config"
)

// New returns a logger writing to cfg.Log.File. The terminal belongs to
// the editor, so with no file configured all output is discarded.
func New(cfg config.Config) (*zap.Logger, error) {
	if cfg.Log.File == "" {
		return zap.NewNop(), nil
	}

	var zc zap.Config
	if cfg.Environment == config.Production {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc.Level = level
	zc.OutputPaths = []string{cfg.Log.File}
	zc.ErrorOutputPaths = []string{cfg.Log.File}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
