// Package initializer builds the application dependencies: logger, database
// connection, schema migration, unit of work, and the development fixtures.
package initializer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/harubank/account/infra"
	infraaccount "github.com/harubank/account/infra/repository/account"
	infratransaction "github.com/harubank/account/infra/repository/transaction"
	infrauser "github.com/harubank/account/infra/repository/user"
	"github.com/harubank/account/pkg/app"
	"github.com/harubank/account/pkg/config"
	"github.com/harubank/account/pkg/repository"

	infrarepository "github.com/harubank/account/infra/repository"

	domainuser "github.com/harubank/account/pkg/domain/user"
	"gorm.io/gorm"
)

// InitializeDependencies initializes all the application dependencies.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	deps := &app.Deps{}
	deps.Logger = setupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		deps.Logger.Error("failed to initialize database", "error", err)
		return nil, err
	}
	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	deps.Uow = infrarepository.NewUoW(db)

	if cfg.Env == "development" {
		if err := seedDemoUsers(deps.Uow, deps.Logger); err != nil {
			return nil, fmt.Errorf("failed to seed demo users: %w", err)
		}
	}

	return deps, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&infrauser.AccountUser{},
		&infraaccount.Account{},
		&infratransaction.Transaction{},
	)
}

// seedDemoUsers inserts fixture account users on an empty development
// database so the API is usable right after first start.
func seedDemoUsers(uow repository.UnitOfWork, logger *slog.Logger) error {
	return uow.Do(context.Background(), func(uow repository.UnitOfWork) error {
		userRepo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		for id, name := range map[int64]string{1: "pobi", 2: "susu", 3: "nana"} {
			existing, err := userRepo.Get(id)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}
			if err := userRepo.Create(&domainuser.AccountUser{ID: id, Name: name}); err != nil {
				return err
			}
			logger.Info("seeded demo user", "id", id, "name", name)
		}
		return nil
	})
}
