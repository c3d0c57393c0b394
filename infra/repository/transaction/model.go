package transaction

import "time"

// Transaction represents a persisted balance-affecting event. Rows are
// append-only; nothing updates them after creation.
type Transaction struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	TransactionID   string `gorm:"type:varchar(64);uniqueIndex;not null"`
	AccountID       int64  `gorm:"index;not null"`
	AccountNumber   string `gorm:"type:varchar(10);not null"`
	Type            string `gorm:"type:varchar(16);not null"`
	Result          string `gorm:"type:varchar(1);not null"`
	Amount          int64  `gorm:"not null"`
	BalanceSnapshot int64  `gorm:"not null"`
	TransactedAt    time.Time
	CreatedAt       time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
