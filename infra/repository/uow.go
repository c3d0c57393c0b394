// Package repository provides the gorm-backed unit of work binding the
// per-entity repositories to one database transaction.
package repository

import (
	"context"
	"errors"

	infraaccount "github.com/harubank/account/infra/repository/account"
	infratransaction "github.com/harubank/account/infra/repository/transaction"
	infrauser "github.com/harubank/account/infra/repository/user"
	"github.com/harubank/account/pkg/repository"
	"gorm.io/gorm"
)

// ErrNoTransaction is returned when a repository accessor is used outside Do.
var ErrNoTransaction = errors.New("unit of work: no active transaction")

// UoW provides the transaction boundary and repository access in one
// abstraction. Repositories handed out inside Do all share the transaction
// session, so the writes of one service call commit or roll back together.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn inside a database transaction, providing a UoW bound to it.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// AccountRepository returns the account repository bound to the transaction.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	if u.tx == nil {
		return nil, ErrNoTransaction
	}
	return infraaccount.New(u.tx), nil
}

// AccountNumberSequence returns the number sequence bound to the transaction.
func (u *UoW) AccountNumberSequence() (repository.AccountNumberSequence, error) {
	if u.tx == nil {
		return nil, ErrNoTransaction
	}
	return infraaccount.NewSequence(u.tx), nil
}

// TransactionRepository returns the transaction repository bound to the
// transaction.
func (u *UoW) TransactionRepository() (repository.TransactionRepository, error) {
	if u.tx == nil {
		return nil, ErrNoTransaction
	}
	return infratransaction.New(u.tx), nil
}

// UserRepository returns the account-user repository bound to the transaction.
func (u *UoW) UserRepository() (repository.UserRepository, error) {
	if u.tx == nil {
		return nil, ErrNoTransaction
	}
	return infrauser.New(u.tx), nil
}
