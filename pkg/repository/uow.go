package repository

import "context"

// UnitOfWork provides the transaction boundary and repository access in one
// abstraction. Keeping repository accessors on the UnitOfWork guarantees that
// every repository used inside Do shares the same storage session, so all
// writes of one service call commit or roll back together.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. fn receives a UnitOfWork
	// whose repositories are bound to that transaction; returning an error
	// rolls everything back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	AccountRepository() (AccountRepository, error)
	AccountNumberSequence() (AccountNumberSequence, error)
	TransactionRepository() (TransactionRepository, error)
	UserRepository() (UserRepository, error)
}
