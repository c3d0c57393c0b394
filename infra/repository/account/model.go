package account

import "time"

// Account represents an account record in the database.
type Account struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	UserID         int64  `gorm:"index;not null"`
	AccountNumber  string `gorm:"type:varchar(10);uniqueIndex;not null"`
	Status         string `gorm:"type:varchar(16);not null"`
	Balance        int64  `gorm:"not null"`
	RegisteredAt   time.Time
	UnregisteredAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
