// Command seeder inserts the built-in starter templates. It is idempotent:
// labels that already exist are left untouched, so it is safe to run on
// every deploy.
//
// Flags:
//
//	--file      path to a templates JSON file (default: embedded set)
//	--migrate   run database migrations first
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/promptstash/promptstash-backend/internal/adapter/postgres"
	promptrepo "github.com/promptstash/promptstash-backend/internal/adapter/postgres/prompt"
	templaterepo "github.com/promptstash/promptstash-backend/internal/adapter/postgres/template"
	"github.com/promptstash/promptstash-backend/internal/app"
	"github.com/promptstash/promptstash-backend/internal/config"
	"github.com/promptstash/promptstash-backend/internal/service/impex"
)

//go:embed templates.json
var defaultTemplates []byte

func main() {
	fileFlag := flag.String("file", "", "path to a templates JSON file (default: embedded set)")
	migrateFlag := flag.Bool("migrate", false, "run database migrations first")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	ctx := context.Background()

	raw := defaultTemplates
	if *fileFlag != "" {
		raw, err = os.ReadFile(*fileFlag)
		if err != nil {
			logger.Error("read templates file", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	var records []impex.TemplateRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		logger.Error("parse templates file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *migrateFlag {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			logger.Error("run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := impex.NewService(
		logger,
		promptrepo.New(pool),
		templaterepo.New(pool),
		postgres.NewTxManager(pool),
		cfg.Prompts,
	)

	inserted, err := svc.SeedTemplates(ctx, records)
	if err != nil {
		logger.Error("seed templates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("done",
		slog.Int("inserted", inserted),
		slog.Int("total", len(records)),
	)
}
