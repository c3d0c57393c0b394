// Package account provides the account lifecycle service: creating accounts,
// soft-deleting them, and querying them per owner. All writes of one call run
// inside a single unit of work so they commit or roll back together.
package account

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/harubank/account/pkg/domain"
	"github.com/harubank/account/pkg/domain/account"
	"github.com/harubank/account/pkg/dto"
	"github.com/harubank/account/pkg/repository"
)

// maxAccountsPerUser is fixed by the MAX_ACCOUNT_PER_USER_10 contract.
const maxAccountsPerUser = 10

// ErrNegativeID is the intentionally generic failure for negative id lookups.
var ErrNegativeID = errors.New("id must not be negative")

// Service owns the account lifecycle and its invariants.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewService creates a Service with the provided dependencies.
func NewService(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// CreateAccount opens a new IN_USE account for the user with the given
// initial balance, allocating the next account number from the global
// sequence. Fails with USER_NOT_FOUND when the user does not exist and
// MAX_ACCOUNT_PER_USER_10 when the user already owns ten accounts.
func (s *Service) CreateAccount(
	ctx context.Context,
	userID, initialBalance int64,
) (read *dto.AccountRead, err error) {
	logger := s.logger.With("userID", userID)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		userRepo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		seq, err := uow.AccountNumberSequence()
		if err != nil {
			return err
		}

		owner, err := userRepo.Get(userID)
		if err != nil {
			return err
		}
		if owner == nil {
			return domain.ErrUserNotFound
		}
		count, err := accountRepo.CountByUser(owner.ID)
		if err != nil {
			return err
		}
		if count >= maxAccountsPerUser {
			return domain.ErrMaxAccountPerUser10
		}

		number, err := seq.Next()
		if err != nil {
			return err
		}
		acct, err := account.New().
			WithUserID(owner.ID).
			WithNumber(number).
			WithBalance(initialBalance).
			Build()
		if err != nil {
			return err
		}
		if err = accountRepo.Create(acct); err != nil {
			return err
		}
		read = dto.NewAccountRead(acct)
		return nil
	})
	if err != nil {
		read = nil
		logger.Error("create account failed", "error", err)
		return
	}
	logger.Info("account created",
		"accountNumber", read.AccountNumber, "balance", read.Balance)
	return
}

// DeleteAccount soft-deletes the account identified by accountNumber on
// behalf of userID. The account must belong to the user, still be IN_USE,
// and hold a zero balance.
func (s *Service) DeleteAccount(
	ctx context.Context,
	userID int64,
	accountNumber string,
) (read *dto.AccountRead, err error) {
	logger := s.logger.With("userID", userID, "accountNumber", accountNumber)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		userRepo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}

		owner, err := userRepo.Get(userID)
		if err != nil {
			return err
		}
		if owner == nil {
			return domain.ErrUserNotFound
		}
		acct, err := accountRepo.GetByNumber(accountNumber)
		if err != nil {
			return err
		}
		if acct == nil {
			return domain.ErrAccountNotFound
		}
		if err = validateDeleteAccount(owner.ID, acct); err != nil {
			return err
		}

		now := time.Now()
		acct.Status = account.StatusUnregistered
		acct.UnregisteredAt = &now
		if err = accountRepo.Update(acct); err != nil {
			return err
		}
		read = dto.NewAccountRead(acct)
		return nil
	})
	if err != nil {
		read = nil
		logger.Error("delete account failed", "error", err)
		return
	}
	logger.Info("account unregistered")
	return
}

func validateDeleteAccount(userID int64, acct *account.Account) error {
	if acct.UserID != userID {
		return domain.ErrUserAccountUnMatch
	}
	if acct.Unregistered() {
		return domain.ErrAccountAlreadyUnregistered
	}
	if acct.Balance > 0 {
		return domain.ErrBalanceNotEmpty
	}
	return nil
}

// GetAccountsByUserID returns the projections of every account the user
// owns. Fails with USER_NOT_FOUND when the user does not exist.
func (s *Service) GetAccountsByUserID(
	ctx context.Context,
	userID int64,
) (reads []*dto.AccountRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		userRepo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}

		owner, err := userRepo.Get(userID)
		if err != nil {
			return err
		}
		if owner == nil {
			return domain.ErrUserNotFound
		}
		accts, err := accountRepo.ListByUser(owner.ID)
		if err != nil {
			return err
		}
		reads = make([]*dto.AccountRead, 0, len(accts))
		for _, acct := range accts {
			reads = append(reads, dto.NewAccountRead(acct))
		}
		return nil
	})
	if err != nil {
		reads = nil
		s.logger.Error("list accounts failed", "userID", userID, "error", err)
	}
	return
}

// GetAccount returns the raw account with the given id. Negative ids fail
// with a plain invalid-argument error rather than a domain error.
func (s *Service) GetAccount(ctx context.Context, id int64) (acct *account.Account, err error) {
	if id < 0 {
		return nil, ErrNegativeID
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acct, err = accountRepo.Get(id)
		if err != nil {
			return err
		}
		if acct == nil {
			return domain.ErrAccountNotFound
		}
		return nil
	})
	if err != nil {
		acct = nil
	}
	return
}
