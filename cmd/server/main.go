package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"storefront/internal/bot"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/email"
	"storefront/internal/jobs"
	"storefront/internal/logger"
	"storefront/internal/metrics"
	"storefront/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("migrations completed successfully")

	if cfg.SeedProducts {
		n, err := database.SeedProducts(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
		if n > 0 {
			log.Info("seeded sample products", zap.Int("count", n))
		}
	}

	engine, err := buildEngine(cfg, log)
	if err != nil {
		return err
	}

	recorder := metrics.Init(database, log)
	notifier := email.NewNotifier(cfg, log)

	// Background cart cleanup
	janitor := jobs.NewCartJanitor(database, log, cfg.CartSweepInterval, cfg.CartTTL)
	go janitor.Start(ctx)

	srv := server.New(cfg, log)
	srv.RegisterRoutes(server.Deps{
		Store:    database,
		Engine:   engine,
		Recorder: recorder,
		Notifier: notifier,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("server exited")
	return nil
}

// buildEngine assembles the assistant from the built-in vocabulary, the
// optional lexicon overlay, and the configured match policy.
func buildEngine(cfg *config.Config, log *zap.Logger) (*bot.Engine, error) {
	policy, err := bot.PolicyByName(cfg.BotMatchPolicy)
	if err != nil {
		return nil, err
	}

	lex := bot.DefaultLexicon()
	tpl := bot.DefaultTemplates()

	overlay, err := config.LoadLexiconConfig(cfg.LexiconFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon overlay: %w", err)
	}
	if overlay != nil {
		if err := overlay.Apply(&lex, &tpl); err != nil {
			return nil, fmt.Errorf("invalid lexicon overlay %s: %w", cfg.LexiconFile, err)
		}
		log.Info("lexicon overlay applied", zap.String("file", cfg.LexiconFile))
	}

	engine, err := bot.New(lex, tpl, bot.WithPolicy(policy))
	if err != nil {
		return nil, err
	}
	log.Info("shopping assistant ready", zap.String("match_policy", cfg.BotMatchPolicy))
	return engine, nil
}
