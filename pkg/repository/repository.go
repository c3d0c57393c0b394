// Package repository defines the collaborator contracts the services depend
// on. Adapters live under infra/repository; tests use the mocks under
// internal/fixtures/mocks.
package repository

import (
	"github.com/harubank/account/pkg/domain/account"
	"github.com/harubank/account/pkg/domain/transaction"
	"github.com/harubank/account/pkg/domain/user"
)

// AccountRepository defines account data access.
// Get-style methods return (nil, nil) when no row matches; the services turn
// that into the appropriate domain error.
type AccountRepository interface {
	Get(id int64) (*account.Account, error)
	GetByNumber(number string) (*account.Account, error)
	ListByUser(userID int64) ([]*account.Account, error)
	CountByUser(userID int64) (int64, error)
	Create(a *account.Account) error
	Update(a *account.Account) error
}

// AccountNumberSequence allocates the next account number. Implementations
// must be atomic with respect to concurrent allocations within the storage
// layer, preserving the strictly increasing global sequence.
type AccountNumberSequence interface {
	Next() (string, error)
}

// TransactionRepository defines transaction-record data access. Records are
// append-only; there is no update operation.
type TransactionRepository interface {
	Get(transactionID string) (*transaction.Transaction, error)
	Create(tx *transaction.Transaction) error
}

// UserRepository defines account-user data access.
type UserRepository interface {
	Get(id int64) (*user.AccountUser, error)
	Create(u *user.AccountUser) error
}
