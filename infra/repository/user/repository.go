// Package user implements the account-user repository contract over gorm.
package user

import (
	"errors"

	domainuser "github.com/harubank/account/pkg/domain/user"
	repo "github.com/harubank/account/pkg/repository"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates an account-user repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.UserRepository {
	return &repository{db: db}
}

// Get implements repo.UserRepository. It returns (nil, nil) when no user
// with the given id exists.
func (r *repository) Get(id int64) (*domainuser.AccountUser, error) {
	var m AccountUser
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDomain(&m), nil
}

// Create implements repo.UserRepository.
func (r *repository) Create(u *domainuser.AccountUser) error {
	m := AccountUser{ID: u.ID, Name: u.Name}
	if err := r.db.Create(&m).Error; err != nil {
		return err
	}
	*u = *mapModelToDomain(&m)
	return nil
}

func mapModelToDomain(m *AccountUser) *domainuser.AccountUser {
	return &domainuser.AccountUser{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
