package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/fashionistas/fashionistas-api/internal/config"
	"github.com/fashionistas/fashionistas-api/internal/postgres"
	postgresrepo "github.com/fashionistas/fashionistas-api/internal/repository/postgres"
	"github.com/fashionistas/fashionistas-api/internal/seed"
)

func main() {
	payloadPath := flag.String("payload", "", "path to a JSON seed payload; defaults to the built-in swimwear edition")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.New()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := postgres.New(ctx, postgres.Config{DSN: cfg.Postgres.DSN()})
	if err != nil {
		logger.Error("failed to initialize postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	payload := seed.SwimwearPayload()
	if *payloadPath != "" {
		b, err := os.ReadFile(*payloadPath)
		if err != nil {
			logger.Error("failed to read payload file", "path", *payloadPath, "error", err)
			os.Exit(1)
		}
		payload = &seed.Payload{}
		if err := json.Unmarshal(b, payload); err != nil {
			logger.Error("failed to parse payload file", "path", *payloadPath, "error", err)
			os.Exit(1)
		}
	}

	seeder := seed.NewSeeder(postgresrepo.NewStore(pool), logger)
	if err := seeder.Seed(ctx, payload); err != nil {
		logger.Error("seed failed", "event_id", payload.Event.ID, "error", err)
		os.Exit(1)
	}

	logger.Info("seed complete", "event_id", payload.Event.ID, "tickets", len(payload.Tickets))
}
