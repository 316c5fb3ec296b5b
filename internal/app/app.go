// Package app wires configuration, storage, services, and the HTTP server
// into a running application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/promptstash/promptstash-backend/internal/adapter/postgres"
	promptrepo "github.com/promptstash/promptstash-backend/internal/adapter/postgres/prompt"
	templaterepo "github.com/promptstash/promptstash-backend/internal/adapter/postgres/template"
	versionrepo "github.com/promptstash/promptstash-backend/internal/adapter/postgres/version"
	"github.com/promptstash/promptstash-backend/internal/config"
	"github.com/promptstash/promptstash-backend/internal/service/impex"
	"github.com/promptstash/promptstash-backend/internal/service/prompt"
	"github.com/promptstash/promptstash-backend/internal/service/taxonomy"
	"github.com/promptstash/promptstash-backend/internal/service/template"
	"github.com/promptstash/promptstash-backend/internal/transport/middleware"
	"github.com/promptstash/promptstash-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, runs migrations, builds the service graph, and serves HTTP
// until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	prompts := promptrepo.New(pool)
	versions := versionrepo.New(pool)
	templates := templaterepo.New(pool)

	promptSvc := prompt.NewService(logger, prompts, versions, txManager, cfg.Prompts)
	templateSvc := template.NewService(logger, templates, txManager)
	taxonomySvc := taxonomy.NewService(logger, prompts)
	impexSvc := impex.NewService(logger, prompts, templates, txManager, cfg.Prompts)

	mux := rest.NewRouter(rest.Handlers{
		Prompts:   rest.NewPromptHandler(promptSvc, logger),
		Templates: rest.NewTemplateHandler(templateSvc, logger),
		Taxonomy:  rest.NewTaxonomyHandler(taxonomySvc, logger),
		Impex:     rest.NewImpexHandler(impexSvc, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimitPerMin),
	)(mux)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
