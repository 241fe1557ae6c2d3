package repository

import (
	"errors"
	"time"

	authdomain "fizzy-backend/internal/auth/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountRepository defines the interface for account (tenant) data access
type AccountRepository interface {
	Create(account *authdomain.Account) error
	FindByID(id string) (*authdomain.Account, error)
	FindByJoinCode(joinCode string) (*authdomain.Account, error)
	Update(account *authdomain.Account) error
}

// accountRepository implements AccountRepository interface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new instance of accountRepository
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (r *accountRepository) Create(account *authdomain.Account) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	if account.JoinCode == "" {
		account.JoinCode = uuid.New().String()
	}
	account.CreatedAt = time.Now()
	account.UpdatedAt = time.Now()
	return r.db.Create(account).Error
}

func (r *accountRepository) FindByID(id string) (*authdomain.Account, error) {
	var account authdomain.Account
	err := r.db.Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) FindByJoinCode(joinCode string) (*authdomain.Account, error) {
	var account authdomain.Account
	err := r.db.Where("join_code = ?", joinCode).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) Update(account *authdomain.Account) error {
	account.UpdatedAt = time.Now()
	return r.db.Save(account).Error
}
