package main

import (
	"go.uber.org/zap"

	"github.com/3-lines-studio/bottletags/internal/logging"
)

var newLogger = func(verbose bool) (*zap.Logger, error) {
	return logging.New(verbose)
}
