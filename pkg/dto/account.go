package dto

import (
	"time"

	"github.com/harubank/account/pkg/domain/account"
)

// AccountRead is the projection of an account returned by the account service.
type AccountRead struct {
	ID             int64
	UserID         int64
	AccountNumber  string
	Status         string
	Balance        int64
	RegisteredAt   time.Time
	UnregisteredAt *time.Time
}

// NewAccountRead maps an account entity to its read projection.
func NewAccountRead(a *account.Account) *AccountRead {
	return &AccountRead{
		ID:             a.ID,
		UserID:         a.UserID,
		AccountNumber:  a.AccountNumber,
		Status:         string(a.Status),
		Balance:        a.Balance,
		RegisteredAt:   a.RegisteredAt,
		UnregisteredAt: a.UnregisteredAt,
	}
}
