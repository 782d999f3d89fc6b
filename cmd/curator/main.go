package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
)

type options struct {
	Config string `short:"c" long:"config" env:"CURATOR_CONFIG" default:"config.yaml" description:"Path to the YAML config file"`
}

func main() {
	var opts options

	parser := flags.NewParser(&opts, flags.Default)
	parser.SubcommandsOptional = false

	addCommand(parser, "serve", "Run the scheduler and HTTP API", &serveCommand{opts: &opts})
	addCommand(parser, "fetch", "Fetch every source once", &fetchCommand{opts: &opts})
	addCommand(parser, "process", "Classify one batch of unprocessed items", &processCommand{opts: &opts})
	addCommand(parser, "trending", "Recompute today's trending topics", &trendingCommand{opts: &opts})
	addCommand(parser, "cleanup", "Delete items past retention", &cleanupCommand{opts: &opts})
	addCommand(parser, "select", "Select articles for topics", &selectCommand{opts: &opts})
	addCommand(parser, "migrate", "Apply database migrations", &migrateCommand{opts: &opts})

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return
		}
		if flagsErr == nil {
			setupLogger("info").Error("command failed", "error", err)
		}
		os.Exit(1)
	}
}

func addCommand(parser *flags.Parser, name, short string, cmd flags.Commander) {
	if _, err := parser.AddCommand(name, short, "", cmd); err != nil {
		panic(err)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
