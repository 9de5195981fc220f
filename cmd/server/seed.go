package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hatchforge/brood-api/internal/config"
	"github.com/hatchforge/brood-api/internal/orchestrators/catalog"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Sync the species catalog from the bestiary API",
	Long:  `Fetch species, temperaments, and kin groups from the upstream bestiary API and store them in Redis. Safe to run repeatedly; only missing species are fetched.`,
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
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

	output, err := deps.catalogService.Sync(cmd.Context(), &catalog.SyncInput{})
	if err != nil {
		return err
	}

	slog.Info("Catalog sync complete",
		"upstream_count", output.UpstreamCount,
		"stored_before", output.StoredBefore,
		"added", output.Added,
		"failed", output.Failed)
	return nil
}
