package repository

import (
	"errors"
	"time"

	boarddomain "fizzy-backend/internal/board/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// boardRepository implements BoardRepository interface
type boardRepository struct {
	db *gorm.DB
}

// NewBoardRepository creates a new instance of boardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepository{
		db: db,
	}
}

func (r *boardRepository) Create(board *boarddomain.Board) error {
	if board.ID == "" {
		board.ID = uuid.New().String()
	}
	board.CreatedAt = time.Now()
	board.UpdatedAt = time.Now()
	return r.db.Create(board).Error
}

func (r *boardRepository) FindByID(accountID, id string) (*boarddomain.Board, error) {
	var board boarddomain.Board
	err := r.db.Where("account_id = ? AND id = ?", accountID, id).First(&board).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &board, nil
}

func (r *boardRepository) FindByIDAnyAccount(id string) (*boarddomain.Board, error) {
	var board boarddomain.Board
	err := r.db.Where("id = ?", id).First(&board).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &board, nil
}

func (r *boardRepository) FindByAccount(accountID string) ([]*boarddomain.Board, error) {
	var boards []*boarddomain.Board
	err := r.db.Where("account_id = ?", accountID).Order("lower(name) ASC").Find(&boards).Error
	return boards, err
}

func (r *boardRepository) FindByAccountAndName(accountID, name string) (*boarddomain.Board, error) {
	var board boarddomain.Board
	err := r.db.Where("account_id = ? AND name = ?", accountID, name).First(&board).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &board, nil
}

func (r *boardRepository) FindAll() ([]*boarddomain.Board, error) {
	var boards []*boarddomain.Board
	err := r.db.Find(&boards).Error
	return boards, err
}

func (r *boardRepository) Update(board *boarddomain.Board) error {
	board.UpdatedAt = time.Now()
	return r.db.Save(board).Error
}

func (r *boardRepository) Delete(accountID, id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var cardIDs []string
		if err := tx.Model(&boarddomain.Card{}).Where("board_id = ?", id).Pluck("id", &cardIDs).Error; err != nil {
			return err
		}
		if len(cardIDs) > 0 {
			if err := tx.Where("card_id IN ?", cardIDs).Delete(&boarddomain.TimeEntry{}).Error; err != nil {
				return err
			}
			if err := tx.Where("card_id IN ?", cardIDs).Delete(&boarddomain.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("card_id IN ?", cardIDs).Delete(&boarddomain.CardTag{}).Error; err != nil {
				return err
			}
			if err := tx.Where("board_id = ?", id).Delete(&boarddomain.Card{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("board_id = ?", id).Delete(&boarddomain.Column{}).Error; err != nil {
			return err
		}
		return tx.Where("account_id = ? AND id = ?", accountID, id).Delete(&boarddomain.Board{}).Error
	})
}
