package utils

import (
	"testing"

	"docport/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestInitializeLoggerHonorsConfiguredLevel(t *testing.T) {
	prev := config.AppConfig.LogLevel
	prevLogger := Logger
	defer func() {
		config.AppConfig.LogLevel = prev
		Logger = prevLogger
	}()

	config.AppConfig.LogLevel = "warn"
	Logger = nil
	InitializeLogger()

	assert.False(t, Logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Logger.Core().Enabled(zapcore.WarnLevel))
}

func TestInitializeLoggerIgnoresUnknownLevel(t *testing.T) {
	prev := config.AppConfig.LogLevel
	prevLogger := Logger
	defer func() {
		config.AppConfig.LogLevel = prev
		Logger = prevLogger
	}()

	config.AppConfig.LogLevel = "shouty"
	Logger = nil
	InitializeLogger()

	assert.True(t, Logger.Core().Enabled(zapcore.InfoLevel))
}
