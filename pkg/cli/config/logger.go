package config

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
	"github.com/secmon-lab/bridgerisk/pkg/utils/logging"
	"github.com/secmon-lab/bridgerisk/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

// Logger holds the logging configuration resolved from CLI flags
type Logger struct {
	level  string
	format string
	output string
}

// Flags returns CLI flags for logging configuration
func (x *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level [debug, info, warn, error]",
			Value:       "warn",
			Sources:     cli.EnvVars("BRIDGERISK_LOG_LEVEL"),
			Destination: &x.level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format [console, json]",
			Value:       "console",
			Sources:     cli.EnvVars("BRIDGERISK_LOG_FORMAT"),
			Destination: &x.format,
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output destination [stderr, -, or file path]",
			Value:       "stderr",
			Sources:     cli.EnvVars("BRIDGERISK_LOG_OUTPUT"),
			Destination: &x.output,
		},
	}
}

var logLevelMap = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Configure builds the process-wide logger from the resolved flags and
// installs it via logging.SetDefault. The returned closer releases the log
// file when one was opened.
func (x *Logger) Configure() (func(), error) {
	closer := func() {}

	var w io.Writer
	switch x.output {
	case "-", "stdout":
		w = os.Stdout
	case "stderr":
		w = os.Stderr
	default:
		f, err := os.OpenFile(x.output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", x.output))
		}
		w = f
		closer = func() {
			safe.Close(context.Background(), f)
		}
	}

	level, ok := logLevelMap[x.level]
	if !ok {
		return nil, goerr.New("invalid log level", goerr.V("level", x.level))
	}

	var handler slog.Handler
	switch x.format {
	case "console":
		handler = clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithSource(level == slog.LevelDebug),
		)
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: masq.New(),
		})
	default:
		return nil, goerr.New("invalid log format", goerr.V("format", x.format))
	}

	logging.SetDefault(slog.New(handler))

	return closer, nil
}

// LogValue returns the configuration as structured log attributes
func (x Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", x.level),
		slog.String("format", x.format),
		slog.String("output", x.output),
	)
}
