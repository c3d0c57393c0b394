// Package mocks provides testify-backed mocks for the repository contracts,
// plus a unit of work that runs closures directly against them with no real
// transaction.
package mocks

import (
	"context"

	"github.com/harubank/account/pkg/domain/account"
	"github.com/harubank/account/pkg/domain/transaction"
	"github.com/harubank/account/pkg/domain/user"
	"github.com/harubank/account/pkg/repository"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository mocks repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Get(id int64) (*account.Account, error) {
	args := m.Called(id)
	var a *account.Account
	if v := args.Get(0); v != nil {
		a = v.(*account.Account)
	}
	return a, args.Error(1)
}

func (m *MockAccountRepository) GetByNumber(number string) (*account.Account, error) {
	args := m.Called(number)
	var a *account.Account
	if v := args.Get(0); v != nil {
		a = v.(*account.Account)
	}
	return a, args.Error(1)
}

func (m *MockAccountRepository) ListByUser(userID int64) ([]*account.Account, error) {
	args := m.Called(userID)
	var accts []*account.Account
	if v := args.Get(0); v != nil {
		accts = v.([]*account.Account)
	}
	return accts, args.Error(1)
}

func (m *MockAccountRepository) CountByUser(userID int64) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) Create(a *account.Account) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(a *account.Account) error {
	args := m.Called(a)
	return args.Error(0)
}

// MockAccountNumberSequence mocks repository.AccountNumberSequence.
type MockAccountNumberSequence struct {
	mock.Mock
}

func (m *MockAccountNumberSequence) Next() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// MockTransactionRepository mocks repository.TransactionRepository.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Get(transactionID string) (*transaction.Transaction, error) {
	args := m.Called(transactionID)
	var tx *transaction.Transaction
	if v := args.Get(0); v != nil {
		tx = v.(*transaction.Transaction)
	}
	return tx, args.Error(1)
}

func (m *MockTransactionRepository) Create(tx *transaction.Transaction) error {
	args := m.Called(tx)
	return args.Error(0)
}

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Get(id int64) (*user.AccountUser, error) {
	args := m.Called(id)
	var u *user.AccountUser
	if v := args.Get(0); v != nil {
		u = v.(*user.AccountUser)
	}
	return u, args.Error(1)
}

func (m *MockUserRepository) Create(u *user.AccountUser) error {
	args := m.Called(u)
	return args.Error(0)
}

// MockUnitOfWork satisfies repository.UnitOfWork. Do runs the closure
// immediately against the mock repositories; there is no rollback, so tests
// assert on repository calls instead.
type MockUnitOfWork struct {
	Accounts     *MockAccountRepository
	Sequence     *MockAccountNumberSequence
	Transactions *MockTransactionRepository
	Users        *MockUserRepository

	// DoErr, when set, makes Do fail without running the closure.
	DoErr error
}

// NewMockUnitOfWork creates a MockUnitOfWork with fresh mock repositories.
func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		Accounts:     &MockAccountRepository{},
		Sequence:     &MockAccountNumberSequence{},
		Transactions: &MockTransactionRepository{},
		Users:        &MockUserRepository{},
	}
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if m.DoErr != nil {
		return m.DoErr
	}
	return fn(m)
}

func (m *MockUnitOfWork) AccountRepository() (repository.AccountRepository, error) {
	return m.Accounts, nil
}

func (m *MockUnitOfWork) AccountNumberSequence() (repository.AccountNumberSequence, error) {
	return m.Sequence, nil
}

func (m *MockUnitOfWork) TransactionRepository() (repository.TransactionRepository, error) {
	return m.Transactions, nil
}

func (m *MockUnitOfWork) UserRepository() (repository.UserRepository, error) {
	return m.Users, nil
}

// AssertExpectations asserts every underlying mock's expectations.
func (m *MockUnitOfWork) AssertExpectations(t mock.TestingT) bool {
	ok := m.Accounts.AssertExpectations(t)
	ok = m.Sequence.AssertExpectations(t) && ok
	ok = m.Transactions.AssertExpectations(t) && ok
	ok = m.Users.AssertExpectations(t) && ok
	return ok
}
