package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"persona-registry/cmd/personas/di"
	"persona-registry/internal/adapter/tui"
	"persona-registry/internal/config"
	"persona-registry/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		App:    config.AppConfig{Env: "development", HTTPPort: "0", ShutdownTimeoutSeconds: 1},
		Shell:  config.ShellConfig{FormMode: config.FormModeInline, EditMode: config.EditModeAtomic},
		Logger: config.LoggerConfig{Level: "debug", Format: "console", OutputPath: "stdout"},
	}
}

func TestShellOptions(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, tui.Options{Form: tui.FormInline, Edit: tui.EditAtomic}, ShellOptions(cfg))

	cfg.Shell.FormMode = config.FormModeModal
	cfg.Shell.EditMode = config.EditModeReinsert
	assert.Equal(t, tui.Options{Form: tui.FormModal, Edit: tui.EditReinsert}, ShellOptions(cfg))
}

func TestLoggerConfig_InteractiveLogsToFile(t *testing.T) {
	cfg := testConfig()

	assert.Equal(t, "stdout", LoggerConfig(cfg, false).OutputPath)
	assert.Equal(t, logger.DefaultFilePath, LoggerConfig(cfg, true).OutputPath)

	cfg.Logger.OutputPath = "/var/log/personas.log"
	assert.Equal(t, "/var/log/personas.log", LoggerConfig(cfg, true).OutputPath)
}

func TestRunServe_StopsOnCancel(t *testing.T) {
	cfg := testConfig()
	core, logs := observer.New(zapcore.InfoLevel)
	l := zap.New(core)
	container, err := di.NewContainer(cfg, l)
	require.NoError(t, err)

	a := &App{Config: cfg, Logger: l, Container: container}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.RunServe(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
		assert.Equal(t, 1, logs.FilterMessage("HTTP server running").Len())
		assert.Equal(t, 1, logs.FilterMessage("application shutdown complete").Len())
	case <-time.After(5 * time.Second):
		t.Fatal("RunServe did not return after cancel")
	}
}
