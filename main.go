package main

import (
	bidding "auction-house/internal/biddingService"
	"auction-house/internal/config"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	"auction-house/utils"
	"fmt"
	"os"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}
	if err := utils.ConfigureLogger(cfg.Logging.Level, cfg.Logging.Format, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid logging config: %v\n", err)
		os.Exit(1)
	}

	repo := repository.NewMemoryRepo()

	// seed auctions are a deployment default, not part of the catalog API
	repo.Seed(cfg.SeedList())

	biddingSvc := bidding.NewBiddingService(repo)

	router := server.SetupRouter(biddingSvc)

	utils.Info("starting auction server", map[string]any{
		"addr":          cfg.Addr(),
		"seed_auctions": len(cfg.SeedList()),
	})
	if err := router.Run(cfg.Addr()); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}
