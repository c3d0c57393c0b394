// Package app wires infrastructure dependencies into the services.
package app

import (
	"log/slog"

	"github.com/harubank/account/pkg/config"
	"github.com/harubank/account/pkg/repository"
	accountsvc "github.com/harubank/account/pkg/service/account"
	transactionsvc "github.com/harubank/account/pkg/service/transaction"
)

// Deps holds all infrastructure dependencies for building the app.
type Deps struct {
	Uow    repository.UnitOfWork
	Logger *slog.Logger
}

// App bundles the configured services for the boundary layer.
type App struct {
	Deps               *Deps
	Config             *config.App
	AccountService     *accountsvc.Service
	TransactionService *transactionsvc.Service
}

// New builds the application from its dependencies and configuration.
func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:           deps,
		Config:         cfg,
		AccountService: accountsvc.NewService(deps.Uow, deps.Logger),
		TransactionService: transactionsvc.NewService(
			deps.Uow, cfg.Transaction.CancelWindow, deps.Logger),
	}
}
