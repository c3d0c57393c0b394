package dto

import (
	"time"

	"github.com/harubank/account/pkg/domain/transaction"
)

// TransactionRead is the projection of a transaction record returned by the
// transaction service, including failure records.
type TransactionRead struct {
	TransactionID   string
	AccountNumber   string
	Type            string
	Result          string
	Amount          int64
	BalanceSnapshot int64
	TransactedAt    time.Time
}

// NewTransactionRead maps a transaction entity to its read projection.
func NewTransactionRead(tx *transaction.Transaction) *TransactionRead {
	return &TransactionRead{
		TransactionID:   tx.TransactionID,
		AccountNumber:   tx.AccountNumber,
		Type:            string(tx.Type),
		Result:          string(tx.Result),
		Amount:          tx.Amount,
		BalanceSnapshot: tx.BalanceSnapshot,
		TransactedAt:    tx.TransactedAt,
	}
}
