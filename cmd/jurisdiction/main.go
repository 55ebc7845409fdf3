package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mycoria/jurisdiction/config"
)

var (
	rootCmd = &cobra.Command{
		Use:           "jurisdiction",
		Short:         "Look up countries and areas of the world",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	configFile = pflag.String("config", "", "set config file")
	logLevel   = pflag.String("log", "", "set log level")
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err) // CLI output.
		os.Exit(1)
	}
}

// loadConfig loads the config file, if one is set, and applies the global flags.
func loadConfig() (*config.Config, error) {
	if *configFile == "" {
		store := config.Store{}
		store.Log.Level = *logLevel
		return store.Parse()
	}

	c, err := config.LoadConfig(*configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if *logLevel != "" {
		if err := c.LogLevel.UnmarshalText([]byte(*logLevel)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", *logLevel, err)
		}
	}
	return c, nil
}

// setupLogging configures the default logger.
func setupLogging(level slog.Level) {
	logOutput := os.Stdout
	slog.SetDefault(slog.New(
		tint.NewHandler(colorable.NewColorable(logOutput), &tint.Options{
			AddSource:  level <= slog.LevelDebug,
			Level:      level,
			TimeFormat: time.DateTime,
			NoColor:    !isatty.IsTerminal(logOutput.Fd()),
		}),
	))
}
