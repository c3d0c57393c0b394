package transaction

import (
	"time"

	"github.com/harubank/account/pkg/dto"
)

//revive:disable

// UseBalanceRequest represents the request body for spending balance.
type UseBalanceRequest struct {
	UserID        int64  `json:"user_id" validate:"required,min=1"`
	AccountNumber string `json:"account_number" validate:"required,len=10"`
	Amount        int64  `json:"amount" validate:"required,min=10,max=1000000000"`
}

// UseBalanceResponse is the API response for a spend.
type UseBalanceResponse struct {
	AccountNumber     string    `json:"account_number"`
	TransactionResult string    `json:"transaction_result"`
	TransactionID     string    `json:"transaction_id"`
	Amount            int64     `json:"amount"`
	TransactedAt      time.Time `json:"transacted_at"`
}

// CancelBalanceRequest represents the request body for cancelling a spend.
// The response shape is kept separate from UseBalanceResponse on purpose so
// the two payloads can evolve independently.
type CancelBalanceRequest struct {
	TransactionID string `json:"transaction_id" validate:"required"`
	AccountNumber string `json:"account_number" validate:"required,len=10"`
	Amount        int64  `json:"amount" validate:"required,min=10,max=1000000000"`
}

// CancelBalanceResponse is the API response for a cancellation.
type CancelBalanceResponse struct {
	AccountNumber     string    `json:"account_number"`
	TransactionResult string    `json:"transaction_result"`
	TransactionID     string    `json:"transaction_id"`
	Amount            int64     `json:"amount"`
	TransactedAt      time.Time `json:"transacted_at"`
}

// QueryTransactionResponse is the API response for a transaction lookup,
// including failure records.
type QueryTransactionResponse struct {
	AccountNumber     string    `json:"account_number"`
	TransactionType   string    `json:"transaction_type"`
	TransactionResult string    `json:"transaction_result"`
	TransactionID     string    `json:"transaction_id"`
	Amount            int64     `json:"amount"`
	TransactedAt      time.Time `json:"transacted_at"`
}

//revive:enable

// ToUseBalanceResponse maps a transaction projection to the use response.
func ToUseBalanceResponse(tx *dto.TransactionRead) *UseBalanceResponse {
	return &UseBalanceResponse{
		AccountNumber:     tx.AccountNumber,
		TransactionResult: tx.Result,
		TransactionID:     tx.TransactionID,
		Amount:            tx.Amount,
		TransactedAt:      tx.TransactedAt,
	}
}

// ToCancelBalanceResponse maps a transaction projection to the cancel response.
func ToCancelBalanceResponse(tx *dto.TransactionRead) *CancelBalanceResponse {
	return &CancelBalanceResponse{
		AccountNumber:     tx.AccountNumber,
		TransactionResult: tx.Result,
		TransactionID:     tx.TransactionID,
		Amount:            tx.Amount,
		TransactedAt:      tx.TransactedAt,
	}
}

// ToQueryTransactionResponse maps a transaction projection to the query response.
func ToQueryTransactionResponse(tx *dto.TransactionRead) *QueryTransactionResponse {
	return &QueryTransactionResponse{
		AccountNumber:     tx.AccountNumber,
		TransactionType:   tx.Type,
		TransactionResult: tx.Result,
		TransactionID:     tx.TransactionID,
		Amount:            tx.Amount,
		TransactedAt:      tx.TransactedAt,
	}
}
