// Package transaction implements the transaction repository contract over gorm.
package transaction

import (
	"errors"

	domaintx "github.com/harubank/account/pkg/domain/transaction"
	repo "github.com/harubank/account/pkg/repository"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a transaction repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.TransactionRepository {
	return &repository{db: db}
}

// Get implements repo.TransactionRepository. It returns (nil, nil) when no
// record with the given transaction id exists.
func (r *repository) Get(transactionID string) (*domaintx.Transaction, error) {
	var m Transaction
	if err := r.db.First(&m, "transaction_id = ?", transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDomain(&m), nil
}

// Create implements repo.TransactionRepository.
func (r *repository) Create(tx *domaintx.Transaction) error {
	m := Transaction{
		TransactionID:   tx.TransactionID,
		AccountID:       tx.AccountID,
		AccountNumber:   tx.AccountNumber,
		Type:            string(tx.Type),
		Result:          string(tx.Result),
		Amount:          tx.Amount,
		BalanceSnapshot: tx.BalanceSnapshot,
		TransactedAt:    tx.TransactedAt,
	}
	if err := r.db.Create(&m).Error; err != nil {
		return err
	}
	*tx = *mapModelToDomain(&m)
	return nil
}

func mapModelToDomain(m *Transaction) *domaintx.Transaction {
	return &domaintx.Transaction{
		ID:              m.ID,
		TransactionID:   m.TransactionID,
		AccountID:       m.AccountID,
		AccountNumber:   m.AccountNumber,
		Type:            domaintx.Type(m.Type),
		Result:          domaintx.ResultType(m.Result),
		Amount:          m.Amount,
		BalanceSnapshot: m.BalanceSnapshot,
		TransactedAt:    m.TransactedAt,
		CreatedAt:       m.CreatedAt,
	}
}
