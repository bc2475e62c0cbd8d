package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai/completion"
	infra "resume-builder/pkg/infrastructure"
	"resume-builder/templates"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	// the audit database is optional
	pool, err := infra.NewAuditPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Warn("Audit database not available", "error", err)
		pool = nil
	}
	if pool != nil {
		defer pool.Close()
		if err := migration.RunMigrations(ctx, pool); err != nil {
			return err
		}
	}
	improvements := repo.NewImprovementsRepo(pool)

	completer, err := completion.New(ctx, completion.Config{
		Provider: cfg.CompletionProvider,
		APIKey:   cfg.APIKey(),
		Model:    cfg.CompletionModel,
		BaseURL:  cfg.OpenAIBaseURL,
	})
	if err != nil {
		return err
	}
	if cfg.APIKey() == "" {
		slog.Warn("No completion API key configured; improvement requests will fail", "provider", cfg.CompletionProvider)
	}

	engine := templates.NewEngine()
	previewer := usecase.NewPreviewer(engine, templates.Stylesheet())
	exporter := usecase.NewExporter(previewer, infra.NewChromedpRenderer(cfg.ChromePath, cfg.RenderTimeout))
	improver := usecase.NewImprover(completer, improvements, cfg.CompletionProvider, cfg.DefaultLanguage, cfg.ImproveTimeout)
	sessions := usecase.NewSessionStore(func() *usecase.Editor { return usecase.NewEditor(improver, exporter) })

	h := httpadapter.NewHandler(improver, sessions, previewer, improvements, cfg.DefaultLanguage)
	app := httpadapter.NewApp(httpadapter.AppConfig{
		Name:             "resume-builder",
		CORSOrigins:      cfg.CORSOrigins,
		Production:       cfg.IsProduction(),
		ImproveRateLimit: cfg.ImproveRateLimit,
		Views:            engine,
	}, h)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Server listening", "port", cfg.Port, "provider", cfg.CompletionProvider, "audit_db", pool != nil)
		return app.Listen(":" + cfg.Port)
	})

	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("Shutting down")
		return app.ShutdownWithTimeout(10 * time.Second)
	})

	g.Go(func() error {
		ticker := time.NewTicker(cfg.SessionTTL / 4)
		defer ticker.Stop()
		for {
			select {
			case <-gCtx.Done():
				return nil
			case <-ticker.C:
				if n := sessions.Sweep(cfg.SessionTTL); n > 0 {
					slog.Info("Expired idle sessions", "count", n, "active", sessions.Len())
				}
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
