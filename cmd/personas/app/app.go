package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"persona-registry/cmd/personas/di"
	"persona-registry/cmd/personas/server"
	"persona-registry/internal/adapter/tui"
	"persona-registry/internal/config"
	"persona-registry/pkg/logger"
)

// Options selects how the application is assembled
type Options struct {
	ConfigPath  string // directory holding app.env
	Interactive bool   // the terminal shell owns stdout
}

// App represents the application
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Container *di.Container
}

// New creates a new application instance
func New(opts Options) (*App, error) {
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := initLogger(cfg, opts.Interactive)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	container, err := di.NewContainer(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}

	return &App{
		Config:    cfg,
		Logger:    l,
		Container: container,
	}, nil
}

// RunTUI runs the terminal form shell until the user quits or ctx is done.
func (a *App) RunTUI(ctx context.Context) error {
	defer a.syncLogger()

	opts := ShellOptions(a.Config)
	a.Logger.Info("starting terminal shell",
		zap.String("form_mode", a.Config.Shell.FormMode),
		zap.String("edit_mode", a.Config.Shell.EditMode),
	)

	model := tui.New(ctx, a.Container.PersonaUC, opts, a.Logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	_, err := p.Run()
	switch {
	case err == nil, errors.Is(err, tea.ErrInterrupted):
		return nil
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		return nil
	default:
		return fmt.Errorf("terminal shell: %w", err)
	}
}

// RunServe serves the JSON shell until ctx is done, then shuts it down.
func (a *App) RunServe(ctx context.Context) error {
	defer a.syncLogger()

	a.Logger.Info("starting application",
		zap.String("service", a.Config.Logger.ServiceName),
		zap.String("version", a.Config.Logger.ServiceVersion),
		zap.String("environment", a.Config.App.Env),
	)

	srv := server.New(a.Config, a.Logger, a.Container.GinHandler)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return a.shutdown(srv)
	})

	return g.Wait()
}

// shutdown gracefully shuts down the HTTP server
func (a *App) shutdown(srv *server.Server) error {
	timeout := time.Duration(a.Config.App.ShutdownTimeoutSeconds) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	a.Logger.Info("starting graceful shutdown",
		zap.Int("timeout_seconds", a.Config.App.ShutdownTimeoutSeconds),
	)

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("failed to shutdown HTTP server", zap.Error(err))
		return fmt.Errorf("HTTP shutdown: %w", err)
	}

	a.Logger.Info("application shutdown complete")
	return nil
}

func (a *App) syncLogger() {
	// Sync on stdout/stderr fails with EINVAL on most terminals
	_ = a.Logger.Sync()
}

// ShellOptions maps the configured modes onto the terminal shell options.
func ShellOptions(cfg *config.Config) tui.Options {
	var opts tui.Options
	if cfg.Shell.FormMode == config.FormModeModal {
		opts.Form = tui.FormModal
	}
	if cfg.Shell.EditMode == config.EditModeReinsert {
		opts.Edit = tui.EditReinsert
	}
	return opts
}

// LoggerConfig builds the logger configuration. The terminal shell draws on
// stdout, so console output is redirected to a rotating file.
func LoggerConfig(cfg *config.Config, interactive bool) logger.Config {
	lc := logger.Config{
		Level:          cfg.Logger.Level,
		Format:         cfg.Logger.Format,
		OutputPath:     cfg.Logger.OutputPath,
		EnableSampling: cfg.Logger.EnableSampling,
		ServiceName:    cfg.Logger.ServiceName,
		ServiceVersion: cfg.Logger.ServiceVersion,
		Environment:    cfg.App.Env,
	}
	if interactive && lc.IsConsole() {
		lc.OutputPath = logger.DefaultFilePath
	}
	return lc
}

func initLogger(cfg *config.Config, interactive bool) (*zap.Logger, error) {
	return logger.NewWithConfig(LoggerConfig(cfg, interactive))
}
