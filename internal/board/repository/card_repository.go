package repository

import (
	"errors"
	"time"

	boarddomain "fizzy-backend/internal/board/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// cardRepository implements CardRepository interface
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new instance of cardRepository
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{
		db: db,
	}
}

func (r *cardRepository) Create(card *boarddomain.Card) error {
	if card.ID == "" {
		card.ID = uuid.New().String()
	}
	card.CreatedAt = time.Now()
	card.UpdatedAt = time.Now()
	if card.LastActiveAt.IsZero() {
		card.LastActiveAt = card.CreatedAt
	}
	return r.db.Create(card).Error
}

func (r *cardRepository) FindByID(accountID, id string) (*boarddomain.Card, error) {
	var card boarddomain.Card
	err := r.db.Where("account_id = ? AND id = ?", accountID, id).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

func (r *cardRepository) FindByBoard(accountID, boardID string) ([]*boarddomain.Card, error) {
	var cards []*boarddomain.Card
	err := r.db.Where("account_id = ? AND board_id = ?", accountID, boardID).
		Order("last_active_at DESC").Find(&cards).Error
	return cards, err
}

func (r *cardRepository) FindAwaitingTriage(accountID, boardID string) ([]*boarddomain.Card, error) {
	var cards []*boarddomain.Card
	err := r.db.Where("account_id = ? AND board_id = ? AND status = ? AND column_id IS NULL AND postponed_at IS NULL AND closed_at IS NULL",
		accountID, boardID, boarddomain.CardStatusPublished).
		Order("created_at DESC").Find(&cards).Error
	return cards, err
}

func (r *cardRepository) FindAutoPostponeCandidates(boardID string, cutoff time.Time) ([]*boarddomain.Card, error) {
	var cards []*boarddomain.Card
	err := r.db.Where("board_id = ? AND status = ? AND column_id IS NOT NULL AND postponed_at IS NULL AND closed_at IS NULL AND last_active_at < ?",
		boardID, boarddomain.CardStatusPublished, cutoff).Find(&cards).Error
	return cards, err
}

func (r *cardRepository) Update(card *boarddomain.Card) error {
	card.UpdatedAt = time.Now()
	return r.db.Save(card).Error
}

// Delete removes the card together with its time entries, comments and tag
// attachments. Cascade is explicit so a card referenced by entries never
// leaves them orphaned.
func (r *cardRepository) Delete(accountID, id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("card_id = ?", id).Delete(&boarddomain.TimeEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("card_id = ?", id).Delete(&boarddomain.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("card_id = ?", id).Delete(&boarddomain.CardTag{}).Error; err != nil {
			return err
		}
		return tx.Where("account_id = ? AND id = ?", accountID, id).Delete(&boarddomain.Card{}).Error
	})
}

// commentRepository implements CommentRepository interface
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of commentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{
		db: db,
	}
}

func (r *commentRepository) Create(comment *boarddomain.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	comment.CreatedAt = time.Now()
	return r.db.Create(comment).Error
}

func (r *commentRepository) FindByCard(accountID, cardID string) ([]*boarddomain.Comment, error) {
	var comments []*boarddomain.Comment
	err := r.db.Where("account_id = ? AND card_id = ?", accountID, cardID).
		Order("created_at DESC").Find(&comments).Error
	return comments, err
}
