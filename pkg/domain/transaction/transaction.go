// Package transaction defines the Transaction entity: one immutable,
// append-only record per attempted balance operation, success or failure.
package transaction

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Type distinguishes debit (USE) from compensating credit (CANCEL) records.
type Type string

const (
	TypeUse    Type = "USE"
	TypeCancel Type = "CANCEL"
)

// ResultType records whether the attempted operation was applied.
type ResultType string

const (
	ResultSuccess ResultType = "S"
	ResultFailure ResultType = "F"
)

// Transaction is one balance-affecting event tied to exactly one account.
// Records are never mutated after creation; a cancellation is a new record
// of TypeCancel referencing the same account.
type Transaction struct {
	ID              int64
	TransactionID   string
	AccountID       int64
	AccountNumber   string
	Type            Type
	Result          ResultType
	Amount          int64
	BalanceSnapshot int64
	TransactedAt    time.Time
	CreatedAt       time.Time
}

// NewID generates a globally unique transaction id.
func NewID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// New builds a transaction record for the given account state.
//
// balanceSnapshot is the account balance immediately after the event, or the
// unchanged balance for failure records.
func New(
	txType Type,
	result ResultType,
	accountID int64,
	accountNumber string,
	amount, balanceSnapshot int64,
) *Transaction {
	return &Transaction{
		TransactionID:   NewID(),
		AccountID:       accountID,
		AccountNumber:   accountNumber,
		Type:            txType,
		Result:          result,
		Amount:          amount,
		BalanceSnapshot: balanceSnapshot,
		TransactedAt:    time.Now(),
	}
}
