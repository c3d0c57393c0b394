// Package transaction provides the balance-mutation service: spending
// balance, cancelling a prior spend, recording failed attempts for audit,
// and querying transaction records.
//
// Successful mutations persist the updated account and the transaction
// record inside one unit of work, so both are committed or neither is.
// Failure records are written by the boundary layer through the dedicated
// SaveFailed operations as separate, independently committed calls.
package transaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/harubank/account/pkg/domain"
	"github.com/harubank/account/pkg/domain/account"
	"github.com/harubank/account/pkg/domain/transaction"
	"github.com/harubank/account/pkg/dto"
	"github.com/harubank/account/pkg/repository"
)

// Service owns balance mutation and cancellation rules.
type Service struct {
	uow          repository.UnitOfWork
	cancelWindow time.Duration
	logger       *slog.Logger
}

// NewService creates a Service. cancelWindow bounds how long after the
// original transaction a cancellation is still accepted.
func NewService(
	uow repository.UnitOfWork,
	cancelWindow time.Duration,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, cancelWindow: cancelWindow, logger: logger}
}

// UseBalance debits amount from the account identified by accountNumber on
// behalf of userID and records a successful USE transaction carrying the
// post-debit balance snapshot.
//
// Validation failures abort before any write; this call records nothing on
// failure. The boundary layer records rejected attempts separately via
// SaveFailedUseTransaction.
func (s *Service) UseBalance(
	ctx context.Context,
	userID int64,
	accountNumber string,
	amount int64,
) (read *dto.TransactionRead, err error) {
	logger := s.logger.With(
		"userID", userID, "accountNumber", accountNumber, "amount", amount)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		userRepo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		txRepo, err := uow.TransactionRepository()
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
		if acct.UserID != owner.ID {
			return domain.ErrUserAccountUnMatch
		}
		if acct.Unregistered() {
			return domain.ErrAccountAlreadyUnregistered
		}

		debited, err := acct.Debit(amount)
		if err != nil {
			return err
		}
		if err = accountRepo.Update(&debited); err != nil {
			return err
		}
		tx := transaction.New(
			transaction.TypeUse, transaction.ResultSuccess,
			debited.ID, debited.AccountNumber, amount, debited.Balance)
		if err = txRepo.Create(tx); err != nil {
			return err
		}
		read = dto.NewTransactionRead(tx)
		return nil
	})
	if err != nil {
		read = nil
		logger.Error("use balance failed", "error", err)
		return
	}
	logger.Info("balance used",
		"transactionID", read.TransactionID, "balanceSnapshot", read.BalanceSnapshot)
	return
}

// SaveFailedUseTransaction records a failed USE attempt against the account
// for audit. The balance snapshot is the current, unchanged balance. Only the
// account is looked up; user and ownership are not re-validated here.
func (s *Service) SaveFailedUseTransaction(
	ctx context.Context,
	accountNumber string,
	amount int64,
) error {
	return s.saveFailedTransaction(ctx, transaction.TypeUse, accountNumber, amount)
}

// SaveFailedCancelTransaction mirrors SaveFailedUseTransaction for the
// cancel path.
func (s *Service) SaveFailedCancelTransaction(
	ctx context.Context,
	accountNumber string,
	amount int64,
) error {
	return s.saveFailedTransaction(ctx, transaction.TypeCancel, accountNumber, amount)
}

func (s *Service) saveFailedTransaction(
	ctx context.Context,
	txType transaction.Type,
	accountNumber string,
	amount int64,
) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}

		acct, err := accountRepo.GetByNumber(accountNumber)
		if err != nil {
			return err
		}
		if acct == nil {
			return domain.ErrAccountNotFound
		}
		tx := transaction.New(
			txType, transaction.ResultFailure,
			acct.ID, acct.AccountNumber, amount, acct.Balance)
		return txRepo.Create(tx)
	})
	if err != nil {
		s.logger.Error("save failed transaction record failed",
			"type", txType, "accountNumber", accountNumber, "error", err)
	}
	return err
}

// CancelBalance reverses a prior USE transaction by crediting amount back to
// the account and recording a CANCEL transaction with the post-credit
// balance snapshot. Partial cancellation is not permitted: amount must equal
// the original transaction's amount exactly, the original must belong to the
// given account, and it must not be older than the cancel window.
func (s *Service) CancelBalance(
	ctx context.Context,
	transactionID, accountNumber string,
	amount int64,
) (read *dto.TransactionRead, err error) {
	logger := s.logger.With(
		"transactionID", transactionID, "accountNumber", accountNumber, "amount", amount)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}

		original, err := txRepo.Get(transactionID)
		if err != nil {
			return err
		}
		if original == nil {
			return domain.ErrTransactionNotFound
		}
		acct, err := accountRepo.GetByNumber(accountNumber)
		if err != nil {
			return err
		}
		if acct == nil {
			return domain.ErrAccountNotFound
		}
		if err = s.validateCancelBalance(original, acct, amount); err != nil {
			return err
		}

		credited, err := acct.Credit(amount)
		if err != nil {
			return err
		}
		if err = accountRepo.Update(&credited); err != nil {
			return err
		}
		tx := transaction.New(
			transaction.TypeCancel, transaction.ResultSuccess,
			credited.ID, credited.AccountNumber, amount, credited.Balance)
		if err = txRepo.Create(tx); err != nil {
			return err
		}
		read = dto.NewTransactionRead(tx)
		return nil
	})
	if err != nil {
		read = nil
		logger.Error("cancel balance failed", "error", err)
		return
	}
	logger.Info("balance use cancelled",
		"cancelTransactionID", read.TransactionID, "balanceSnapshot", read.BalanceSnapshot)
	return
}

func (s *Service) validateCancelBalance(
	original *transaction.Transaction,
	acct *account.Account,
	amount int64,
) error {
	if original.AccountID != acct.ID {
		return domain.ErrTransactionAccountUnMatch
	}
	if original.Amount != amount {
		return domain.ErrCancelMustFully
	}
	if original.TransactedAt.Before(time.Now().Add(-s.cancelWindow)) {
		return domain.ErrTooOldOrderToCancel
	}
	return nil
}

// QueryTransaction returns the full projection of a transaction record,
// including type and result, regardless of whether it succeeded.
func (s *Service) QueryTransaction(
	ctx context.Context,
	transactionID string,
) (read *dto.TransactionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		tx, err := txRepo.Get(transactionID)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.ErrTransactionNotFound
		}
		read = dto.NewTransactionRead(tx)
		return nil
	})
	if err != nil {
		read = nil
		s.logger.Error("query transaction failed",
			"transactionID", transactionID, "error", err)
	}
	return
}
