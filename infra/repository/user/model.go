package user

import "time"

// AccountUser represents an account owner record in the database.
type AccountUser struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(64);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the AccountUser model.
func (AccountUser) TableName() string {
	return "account_users"
}
