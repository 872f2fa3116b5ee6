package config_test

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"

	"github.com/Agrysif/ghrelease/pkg/cli/config"
	"github.com/Agrysif/ghrelease/pkg/domain/types"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{level: "debug"},
		{level: "DEBUG"},
		{level: "info"},
		{level: "Info"},
		{level: "warn"},
		{level: "error"},
		{level: "ERROR"},
		{level: "verbose", wantErr: true},
		{level: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("level="+tt.level, func(t *testing.T) {
			logger := &config.Logger{
				Level:  tt.level,
				Output: io.Discard,
			}

			result, err := logger.Configure()
			if tt.wantErr {
				gt.Error(t, err)
				gt.Value(t, result).Nil()
				return
			}

			gt.NoError(t, err)
			gt.Value(t, result).NotNil()
		})
	}
}

func TestLogger_Configure_Format(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := &config.Logger{Level: "info", JSON: true, Output: &buf}

		result, err := logger.Configure()
		gt.NoError(t, err)
		result.Info("release created", "release_id", 42)

		gt.String(t, buf.String()).Contains(`"msg":"release created"`)
		gt.String(t, buf.String()).Contains(`"release_id":42`)
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		logger := &config.Logger{Level: "info", Output: &buf}

		result, err := logger.Configure()
		gt.NoError(t, err)
		result.Info("release created", "release_id", 42)

		gt.String(t, buf.String()).Contains("release created")
		gt.String(t, buf.String()).Contains("release_id")
		gt.String(t, buf.String()).NotContains("\x1b[")
	})
}

func TestLogger_Configure_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := &config.Logger{Level: "warn", Output: &buf}

	result, err := logger.Configure()
	gt.NoError(t, err)

	result.Info("hidden message")
	result.Warn("visible message")

	gt.String(t, buf.String()).NotContains("hidden message")
	gt.String(t, buf.String()).Contains("visible message")
}

func TestLogger_RedactsToken(t *testing.T) {
	var buf bytes.Buffer
	logger := &config.Logger{
		Level:  "debug",
		JSON:   true,
		Output: &buf,
	}

	result, err := logger.Configure()
	gt.NoError(t, err)

	result.Info("token loaded", slog.Any("token", types.GitHubToken("ghp_supersecret")))

	gt.String(t, buf.String()).NotContains("ghp_supersecret")
	gt.String(t, buf.String()).Contains("token loaded")
}

func TestLogger_RedactsToken_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := &config.Logger{Level: "debug", Output: &buf}

	result, err := logger.Configure()
	gt.NoError(t, err)

	result.Info("token loaded", slog.Any("token", types.GitHubToken("ghp_supersecret")))

	gt.String(t, buf.String()).NotContains("ghp_supersecret")
	gt.String(t, buf.String()).Contains("token loaded")
}

func TestLogger_Flags(t *testing.T) {
	logger := &config.Logger{}
	names := flagNames(logger.Flags())

	gt.Number(t, len(names)).Equal(2)
	gt.True(t, names["log-level"])
	gt.True(t, names["log-json"])
}

func flagNames(flags []cli.Flag) map[string]bool {
	names := make(map[string]bool)
	for _, f := range flags {
		if n := f.Names(); len(n) > 0 {
			names[n[0]] = true
		}
	}
	return names
}
