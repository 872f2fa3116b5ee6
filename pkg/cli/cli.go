package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/Agrysif/ghrelease/pkg/cli/config"
	"github.com/Agrysif/ghrelease/pkg/domain/types"
)

type runConfig struct {
	stdout io.Writer
	stderr io.Writer
}

// Option is a functional option for Run
type Option func(*runConfig)

// WithStdout sets the destination of the release report
func WithStdout(w io.Writer) Option {
	return func(c *runConfig) {
		c.stdout = w
	}
}

// WithStderr sets the destination of logs and CLI errors
func WithStderr(w io.Writer) Option {
	return func(c *runConfig) {
		c.stderr = w
	}
}

// Run runs the CLI application
func Run(ctx context.Context, args []string, opts ...Option) error {
	rc := &runConfig{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(rc)
	}

	loggerCfg := config.Logger{Output: rc.stderr}
	var sentryCfg config.Sentry
	var logger *slog.Logger
	var hub *sentry.Hub

	var flags []cli.Flag
	flags = append(flags, loggerCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	app := &cli.Command{
		Name:           "ghrelease",
		Usage:          "Create GitHub releases and upload installer artifacts",
		Version:        types.Version,
		Flags:          flags,
		Writer:         rc.stdout,
		ErrWriter:      rc.stderr,
		DefaultCommand: "publish",
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			runID := uuid.NewString()
			logger = logger.With("run_id", runID)
			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)

			hub, err = sentryCfg.Configure()
			if err != nil {
				return nil, err
			}
			if hub != nil {
				hub.Scope().SetTag("run_id", runID)
				ctx = sentry.SetHubOnContext(ctx, hub)
				logger.Debug("Sentry error reporting enabled", "environment", sentryCfg.Environment)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdPublish(rc.stdout),
		},
	}

	err := app.Run(ctx, args)
	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		if hub != nil {
			hub.CaptureException(err)
		}
	}

	if hub != nil && !hub.Flush(2*time.Second) {
		logger.Warn("Timed out sending events to Sentry")
	}

	return err
}
