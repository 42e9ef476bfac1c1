package main

import (
	"os"

	"github.com/rathijitpapon/snowflakeid/internal/cmd/idtool"
	logpkg "github.com/rathijitpapon/snowflakeid/pkg/log"
)

func main() {
	// Respect SNOWID_LOG_LEVEL / SNOWID_LOG_FORMAT for CLI diagnostics.
	level := os.Getenv("SNOWID_LOG_LEVEL")
	parsed, err := logpkg.ParseLevel(level)
	if err != nil || level == "" {
		parsed = logpkg.InfoLevel
	}
	format := logpkg.FormatText
	if os.Getenv("SNOWID_LOG_FORMAT") == "json" {
		format = logpkg.FormatJSON
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(parsed),
		logpkg.WithFormat(format),
	)
	logger = logger.With(logpkg.Component("snowid"))

	if err := idtool.NewRoot(logger).Execute(); err != nil {
		os.Exit(1)
	}
}
