package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidbz/tariff/internal/config"
	"github.com/davidbz/tariff/internal/observability"
	"github.com/davidbz/tariff/internal/pricing"
)

var rootCmd = &cobra.Command{
	Use:           "tariff",
	Short:         "Current AI API pricing, cached locally with automatic updates",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// newPricingCache wires a cache for the one-shot CLI commands. The serve
// command builds its own graph through dig instead.
func newPricingCache() (*pricing.Cache, error) {
	if _, err := observability.InitLogger(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg := config.Load()
	return pricing.NewFromConfig(&cfg.Pricing, &cfg.Redis, nil)
}
