package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hatchforge/brood-api/internal/clients/external"
	"github.com/hatchforge/brood-api/internal/config"
	"github.com/hatchforge/brood-api/internal/engine"
	v1alpha1 "github.com/hatchforge/brood-api/internal/handlers/api/v1alpha1"
	"github.com/hatchforge/brood-api/internal/orchestrators/breeding"
	"github.com/hatchforge/brood-api/internal/orchestrators/catalog"
	"github.com/hatchforge/brood-api/internal/pkg/clock"
	"github.com/hatchforge/brood-api/internal/pkg/idgen"
	redisclient "github.com/hatchforge/brood-api/internal/redis"
	"github.com/hatchforge/brood-api/internal/repositories/species"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the brood API HTTP server with the catalog and breeding services.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	deps, err := buildDependencies(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := deps.redisClient.Close(); closeErr != nil {
			slog.Warn("Failed to close redis client", "error", closeErr)
		}
	}()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CatalogService:  deps.catalogService,
		BreedingService: deps.breedingService,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.NewMux(),
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping")
		cancel()
	}()

	if cfg.SyncOnStartup {
		go syncCatalog(ctx, deps.catalogService)
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "addr", cfg.HTTPAddr)
		if serveErr := srv.ListenAndServe(); !errors.Is(serveErr, http.ErrServerClosed) {
			errChan <- serveErr
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			slog.Error("Graceful shutdown failed", "error", shutdownErr)
			return shutdownErr
		}
		slog.Info("Server stopped")
		return nil
	case err := <-errChan:
		return err
	}
}

// dependencies wires the full service graph from configuration
type dependencies struct {
	redisClient     redisclient.Client
	catalogService  catalog.Service
	breedingService breeding.Service
}

func buildDependencies(cfg *config.Config) (*dependencies, error) {
	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, err
	}

	speciesRepo, err := species.NewRedisRepository(&species.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		return nil, err
	}

	bestiaryClient, err := external.New(&external.Config{
		BaseURL:     cfg.BestiaryBaseURL,
		HTTPTimeout: cfg.BestiaryTimeout,
	})
	if err != nil {
		return nil, err
	}

	catalogService, err := catalog.NewOrchestrator(&catalog.Config{
		SpeciesRepo:    speciesRepo,
		ExternalClient: bestiaryClient,
	})
	if err != nil {
		return nil, err
	}

	breedingService, err := breeding.NewOrchestrator(&breeding.Config{
		SpeciesRepo: speciesRepo,
		Engine:      engine.New(),
		IDGenerator: idgen.NewUUID("calc"),
	})
	if err != nil {
		return nil, err
	}

	return &dependencies{
		redisClient:     client,
		catalogService:  catalogService,
		breedingService: breedingService,
	}, nil
}

func syncCatalog(ctx context.Context, svc catalog.Service) {
	output, err := svc.Sync(ctx, &catalog.SyncInput{})
	if err != nil {
		slog.Error("Startup catalog sync failed", "error", err)
		return
	}
	slog.Info("Startup catalog sync complete",
		"upstream_count", output.UpstreamCount,
		"added", output.Added,
		"failed", output.Failed)
}
