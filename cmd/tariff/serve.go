package main

import (
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/tariff/internal/config"
	"github.com/davidbz/tariff/internal/domain"
	tariffhttp "github.com/davidbz/tariff/internal/http"
	"github.com/davidbz/tariff/internal/http/middleware"
	"github.com/davidbz/tariff/internal/observability"
	"github.com/davidbz/tariff/internal/pricing"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the pricing HTTP API",
	RunE: func(_ *cobra.Command, _ []string) error {
		container := buildContainer()

		return container.Invoke(func(server *tariffhttp.Server) error {
			return server.Start()
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func(logger *zap.Logger) domain.EventPublisher {
		return observability.NewEventBus(logger)
	}); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}

	// Pricing cache
	if err := container.Provide(pricing.NewFromConfig); err != nil {
		log.Fatalf("Failed to provide pricing cache: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(func(corsCfg *config.CORSConfig) middleware.Middleware {
		return middleware.BuildMiddlewareChain(corsCfg)
	}); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(tariffhttp.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(tariffhttp.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
