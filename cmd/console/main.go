package main

import (
	bidding "auction-house/internal/biddingService"
	"auction-house/internal/config"
	"auction-house/internal/console"
	"auction-house/internal/repository"
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

	// prompts own stdout; logs go to stderr and stay quiet unless something is off
	level := cfg.Logging.Level
	if os.Getenv("LOG_LEVEL") == "" {
		level = "warn"
	}
	if err := utils.ConfigureLogger(level, "text", os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid logging config: %v\n", err)
		os.Exit(1)
	}

	repo := repository.NewMemoryRepo()
	repo.Seed(cfg.SeedList())

	session := console.NewSession(bidding.NewBiddingService(repo), os.Stdin, os.Stdout)
	if err := session.Run(); err != nil {
		utils.Fatal("console session failed", map[string]any{"error": err.Error()})
	}
}
