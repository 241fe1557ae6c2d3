package repository

import (
	"errors"
	"time"

	boarddomain "fizzy-backend/internal/board/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// columnRepository implements ColumnRepository interface
type columnRepository struct {
	db *gorm.DB
}

// NewColumnRepository creates a new instance of columnRepository
func NewColumnRepository(db *gorm.DB) ColumnRepository {
	return &columnRepository{
		db: db,
	}
}

func (r *columnRepository) Create(column *boarddomain.Column) error {
	if column.ID == "" {
		column.ID = uuid.New().String()
	}
	column.CreatedAt = time.Now()
	column.UpdatedAt = time.Now()
	return r.db.Create(column).Error
}

func (r *columnRepository) FindByID(accountID, id string) (*boarddomain.Column, error) {
	var column boarddomain.Column
	err := r.db.Where("account_id = ? AND id = ?", accountID, id).First(&column).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &column, nil
}

func (r *columnRepository) FindByBoard(accountID, boardID string) ([]*boarddomain.Column, error) {
	var columns []*boarddomain.Column
	err := r.db.Where("account_id = ? AND board_id = ?", accountID, boardID).
		Order("position ASC").Find(&columns).Error
	return columns, err
}

func (r *columnRepository) FindByBoardAndName(accountID, boardID, name string) (*boarddomain.Column, error) {
	var column boarddomain.Column
	err := r.db.Where("account_id = ? AND board_id = ? AND name = ?", accountID, boardID, name).
		First(&column).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &column, nil
}

// Update saves the column. When the name or color changed the caller passes
// touchCards so every contained card gets its updated_at bumped in the same
// transaction, keeping card ETags honest.
func (r *columnRepository) Update(column *boarddomain.Column, touchCards bool) error {
	column.UpdatedAt = time.Now()
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(column).Error; err != nil {
			return err
		}
		if touchCards {
			if err := tx.Model(&boarddomain.Card{}).Where("column_id = ?", column.ID).
				Update("updated_at", time.Now()).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the column and sends its cards back to the triage stream
func (r *columnRepository) Delete(accountID, id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&boarddomain.Card{}).Where("column_id = ?", id).
			Updates(map[string]interface{}{
				"column_id":  nil,
				"updated_at": time.Now(),
			}).Error; err != nil {
			return err
		}
		return tx.Where("account_id = ? AND id = ?", accountID, id).Delete(&boarddomain.Column{}).Error
	})
}
