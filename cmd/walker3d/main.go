package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"walker3d/internal/config"
	"walker3d/internal/game"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	log = log.Level(logLevel(cfg.LogLevel))

	game.New(cfg, log).Run()
}

func logLevel(name string) zerolog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
