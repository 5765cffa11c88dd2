package main

import (
	"path/filepath"

	"github.com/coincost/coincost/infrastructure/logger"
)

const (
	logFilename    = "costctl.log"
	errLogFilename = "costctl_err.log"
)

var log = logger.RegisterSubSystem("CTL")

func initLog(cfg *configFlags) error {
	if cfg.LogDir != "" {
		logger.InitLog(filepath.Join(cfg.LogDir, logFilename), filepath.Join(cfg.LogDir, errLogFilename))
	}
	return logger.ParseAndSetLogLevels(cfg.LogLevel)
}
