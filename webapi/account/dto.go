package account

import (
	"time"

	"github.com/harubank/account/pkg/dto"
)

//revive:disable

// CreateAccountRequest represents the request body for opening an account.
type CreateAccountRequest struct {
	UserID         int64 `json:"user_id" validate:"required,min=1"`
	InitialBalance int64 `json:"initial_balance" validate:"min=0"`
}

// CreateAccountResponse is the API response for account creation.
type CreateAccountResponse struct {
	UserID        int64     `json:"user_id"`
	AccountNumber string    `json:"account_number"`
	RegisteredAt  time.Time `json:"registered_at"`
}

// DeleteAccountRequest represents the request body for unregistering an account.
type DeleteAccountRequest struct {
	UserID        int64  `json:"user_id" validate:"required,min=1"`
	AccountNumber string `json:"account_number" validate:"required,len=10"`
}

// DeleteAccountResponse is the API response for account unregistration.
type DeleteAccountResponse struct {
	UserID         int64      `json:"user_id"`
	AccountNumber  string     `json:"account_number"`
	UnregisteredAt *time.Time `json:"unregistered_at"`
}

// AccountInfo is one element of the per-user account listing.
type AccountInfo struct {
	AccountNumber string `json:"account_number"`
	Balance       int64  `json:"balance"`
}

// GetAccountResponse is the API response for a single-account lookup.
type GetAccountResponse struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	AccountNumber  string     `json:"account_number"`
	Status         string     `json:"status"`
	Balance        int64      `json:"balance"`
	RegisteredAt   time.Time  `json:"registered_at"`
	UnregisteredAt *time.Time `json:"unregistered_at,omitempty"`
}

//revive:enable

// ToCreateAccountResponse maps an account projection to the create response.
func ToCreateAccountResponse(a *dto.AccountRead) *CreateAccountResponse {
	return &CreateAccountResponse{
		UserID:        a.UserID,
		AccountNumber: a.AccountNumber,
		RegisteredAt:  a.RegisteredAt,
	}
}

// ToDeleteAccountResponse maps an account projection to the delete response.
func ToDeleteAccountResponse(a *dto.AccountRead) *DeleteAccountResponse {
	return &DeleteAccountResponse{
		UserID:         a.UserID,
		AccountNumber:  a.AccountNumber,
		UnregisteredAt: a.UnregisteredAt,
	}
}

// ToGetAccountResponse maps an account projection to the lookup response.
func ToGetAccountResponse(a *dto.AccountRead) *GetAccountResponse {
	return &GetAccountResponse{
		ID:             a.ID,
		UserID:         a.UserID,
		AccountNumber:  a.AccountNumber,
		Status:         a.Status,
		Balance:        a.Balance,
		RegisteredAt:   a.RegisteredAt,
		UnregisteredAt: a.UnregisteredAt,
	}
}

// ToAccountInfos maps account projections to the listing representation.
func ToAccountInfos(accounts []*dto.AccountRead) []AccountInfo {
	infos := make([]AccountInfo, 0, len(accounts))
	for _, a := range accounts {
		infos = append(infos, AccountInfo{
			AccountNumber: a.AccountNumber,
			Balance:       a.Balance,
		})
	}
	return infos
}
