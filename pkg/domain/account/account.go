// Package account defines the Account entity and its balance invariants.
//
// Balance mutation is expressed as pure operations: Debit and Credit take the
// current state plus an amount and return the next state or a typed domain
// failure, never mutating the receiver. Callers persist the returned value.
package account

import (
	"time"

	"github.com/harubank/account/pkg/domain"
)

// Status is the lifecycle state of an account.
type Status string

const (
	// StatusInUse marks an open account that can hold and move balance.
	StatusInUse Status = "IN_USE"
	// StatusUnregistered marks a soft-deleted account. Its balance was zero
	// at the moment of transition and never changes again.
	StatusUnregistered Status = "UNREGISTERED"
)

// NumberSeed is the account number assigned when no accounts exist yet.
// Subsequent numbers are max(existing)+1, zero-padded to NumberLength digits.
const (
	NumberSeed   = "1000000000"
	NumberLength = 10
)

// Account is one bank account. Invariants:
//   - Balance >= 0 at all times.
//   - An UNREGISTERED account's balance is 0 and never changes again.
type Account struct {
	ID             int64
	UserID         int64
	AccountNumber  string
	Status         Status
	Balance        int64
	RegisteredAt   time.Time
	UnregisteredAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	acct Account
}

// New creates a Builder for an open account registered now.
func New() *Builder {
	return &Builder{acct: Account{
		Status:       StatusInUse,
		RegisteredAt: time.Now(),
	}}
}

// WithUserID sets the owning user. Mandatory.
func (b *Builder) WithUserID(userID int64) *Builder {
	b.acct.UserID = userID
	return b
}

// WithNumber sets the allocated account number. Mandatory.
func (b *Builder) WithNumber(number string) *Builder {
	b.acct.AccountNumber = number
	return b
}

// WithBalance sets the initial balance.
func (b *Builder) WithBalance(balance int64) *Builder {
	b.acct.Balance = balance
	return b
}

// WithRegisteredAt overrides the registration timestamp. Primarily for
// hydrating an existing account from a data store or for test setup.
func (b *Builder) WithRegisteredAt(t time.Time) *Builder {
	b.acct.RegisteredAt = t
	return b
}

// WithStatus overrides the lifecycle status. Primarily for hydration.
func (b *Builder) WithStatus(s Status) *Builder {
	b.acct.Status = s
	return b
}

// Build finalizes construction, validating the entity invariants.
func (b *Builder) Build() (*Account, error) {
	if b.acct.UserID <= 0 {
		return nil, domain.ErrInvalidRequest
	}
	if len(b.acct.AccountNumber) != NumberLength {
		return nil, domain.ErrInvalidRequest
	}
	if b.acct.Balance < 0 {
		return nil, domain.ErrInvalidRequest
	}
	a := b.acct
	return &a, nil
}

// Debit returns a copy of the account with amount subtracted from the
// balance. It fails with AMOUNT_EXCEED_BALANCE when amount is larger than
// the current balance; the receiver is never modified.
func (a Account) Debit(amount int64) (Account, error) {
	if amount > a.Balance {
		return a, domain.ErrAmountExceedBalance
	}
	a.Balance -= amount
	return a, nil
}

// Credit returns a copy of the account with amount added to the balance.
// Negative amounts fail with INVALID_REQUEST.
func (a Account) Credit(amount int64) (Account, error) {
	if amount < 0 {
		return a, domain.ErrInvalidRequest
	}
	a.Balance += amount
	return a, nil
}

// Unregistered reports whether the account has been soft-deleted.
func (a *Account) Unregistered() bool {
	return a.Status == StatusUnregistered
}
