package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := newApp().Run(os.Args); err != nil {
		logger.Error("fatal", "err", err)
		os.Exit(1)
	}
}
