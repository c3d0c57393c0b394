// Package account implements the account repository contract and the
// account number sequence over gorm.
package account

import (
	"errors"
	"fmt"
	"strconv"

	domainaccount "github.com/harubank/account/pkg/domain/account"
	repo "github.com/harubank/account/pkg/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New creates an account repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.AccountRepository {
	return &repository{db: db}
}

// Get implements repo.AccountRepository. It returns (nil, nil) when no
// account with the given id exists.
func (r *repository) Get(id int64) (*domainaccount.Account, error) {
	var m Account
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDomain(&m), nil
}

// GetByNumber implements repo.AccountRepository.
func (r *repository) GetByNumber(number string) (*domainaccount.Account, error) {
	var m Account
	if err := r.db.First(&m, "account_number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDomain(&m), nil
}

// ListByUser implements repo.AccountRepository.
func (r *repository) ListByUser(userID int64) ([]*domainaccount.Account, error) {
	var ms []Account
	if err := r.db.Where("user_id = ?", userID).Find(&ms).Error; err != nil {
		return nil, err
	}
	result := make([]*domainaccount.Account, 0, len(ms))
	for i := range ms {
		result = append(result, mapModelToDomain(&ms[i]))
	}
	return result, nil
}

// CountByUser implements repo.AccountRepository.
func (r *repository) CountByUser(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&Account{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// Create implements repo.AccountRepository. The stored record's generated id
// and timestamps are written back to the passed entity.
func (r *repository) Create(a *domainaccount.Account) error {
	m := mapDomainToModel(a)
	if err := r.db.Create(&m).Error; err != nil {
		return err
	}
	*a = *mapModelToDomain(&m)
	return nil
}

// Update implements repo.AccountRepository.
func (r *repository) Update(a *domainaccount.Account) error {
	m := mapDomainToModel(a)
	if err := r.db.Save(&m).Error; err != nil {
		return err
	}
	*a = *mapModelToDomain(&m)
	return nil
}

// ErrNumberSpaceExhausted is returned when the ten-digit account number
// space has no successor left to allocate.
var ErrNumberSpaceExhausted = errors.New("account number space exhausted")

// maxAccountNumber is the largest value expressible in NumberLength digits.
const maxAccountNumber = 9_999_999_999

type sequence struct {
	db *gorm.DB
}

// NewSequence creates the account number sequence backed by the accounts
// table. Must be used inside the same transaction as the Create that
// consumes the number.
func NewSequence(db *gorm.DB) repo.AccountNumberSequence {
	return &sequence{db: db}
}

// Next returns max(existing account number)+1, zero-padded to ten digits,
// or the fixed seed when no accounts exist. The row with the highest number
// is read under a row lock so concurrent allocations serialize.
func (s *sequence) Next() (string, error) {
	var m Account
	err := s.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("account_number DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainaccount.NumberSeed, nil
		}
		return "", err
	}
	last, err := strconv.ParseInt(m.AccountNumber, 10, 64)
	if err != nil {
		return "", fmt.Errorf("malformed account number %q: %w", m.AccountNumber, err)
	}
	if last >= maxAccountNumber {
		return "", ErrNumberSpaceExhausted
	}
	return fmt.Sprintf("%0*d", domainaccount.NumberLength, last+1), nil
}

func mapDomainToModel(a *domainaccount.Account) Account {
	return Account{
		ID:             a.ID,
		UserID:         a.UserID,
		AccountNumber:  a.AccountNumber,
		Status:         string(a.Status),
		Balance:        a.Balance,
		RegisteredAt:   a.RegisteredAt,
		UnregisteredAt: a.UnregisteredAt,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func mapModelToDomain(m *Account) *domainaccount.Account {
	return &domainaccount.Account{
		ID:             m.ID,
		UserID:         m.UserID,
		AccountNumber:  m.AccountNumber,
		Status:         domainaccount.Status(m.Status),
		Balance:        m.Balance,
		RegisteredAt:   m.RegisteredAt,
		UnregisteredAt: m.UnregisteredAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
