package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/clipcut/clipcut"
)

func main() {
	setupLogging()

	parser := buildGrammar()

	result, err := parser.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, clipcut.ErrHelp) {
			return
		}

		fatal(err)
	}

	config, err := clipcut.LoadConfig(result.String("config"))
	if err != nil {
		fatal(err)
	}

	args, err := buildArgs(result, config)
	if err != nil {
		fatal(err)
	}

	if err := run(args, config); err != nil {
		fatal(err)
	}
}

func setupLogging() {
	level := slog.LevelWarn
	if os.Getenv("CLIPCUT_LOG") == "debug" {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func fatal(err error) {
	color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "Error! %s\n", err)
	os.Exit(1)
}
