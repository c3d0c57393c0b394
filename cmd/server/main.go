package main

import (
	"fmt"
	"log/slog"

	log "github.com/charmbracelet/log"
	"github.com/harubank/account/infra/initializer"
	"github.com/harubank/account/pkg/app"
	"github.com/harubank/account/pkg/config"
	"github.com/harubank/account/webapi"
)

// @title Account API
// @version 1.0.0
// @description Banking-account management API: accounts, balance use and cancellation.
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	application := app.New(deps, cfg)
	fiberApp := webapi.SetupApp(application)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	slog.Default().Info("starting server", "env", cfg.Env, "address", addr)

	return fiberApp.Listen(addr)
}
