// Command migrate applies the embedded schema migrations.
//
//	migrate -direction up
//	migrate -direction down -dsn postgres://...
package main

import (
	"flag"
	"log/slog"
	"os"

	"huntlog/config"
	"huntlog/internal/infra/persistence/migrate"
)

func main() {
	direction := flag.String("direction", migrate.DirectionUp, "up or down")
	dsn := flag.String("dsn", "", "database url, defaults to changeFeed.dsn from config")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if *dsn == "" {
		cfg, err := config.New()
		if err != nil {
			logger.Error("Failed to load config", slog.Any("error", err))
			os.Exit(1)
		}
		*dsn = cfg.ChangeFeed.DSN
	}

	if err := migrate.Run(*dsn, *direction); err != nil {
		logger.Error("Migration failed", slog.Any("error", err), slog.String("direction", *direction))
		os.Exit(1)
	}

	logger.Info("Migration applied", slog.String("direction", *direction))
}
