package repository

import (
	"errors"
	"time"

	boarddomain "fizzy-backend/internal/board/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// tagRepository implements TagRepository interface
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new instance of tagRepository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{
		db: db,
	}
}

func (r *tagRepository) Create(tag *boarddomain.Tag) error {
	if tag.ID == "" {
		tag.ID = uuid.New().String()
	}
	tag.CreatedAt = time.Now()
	return r.db.Create(tag).Error
}

// FindByLabel matches exactly and case-sensitively within the account
func (r *tagRepository) FindByLabel(accountID, label string) (*boarddomain.Tag, error) {
	var tag boarddomain.Tag
	err := r.db.Where("account_id = ? AND label = ?", accountID, label).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) FindByCard(cardID string) ([]*boarddomain.Tag, error) {
	var tags []*boarddomain.Tag
	err := r.db.Model(&boarddomain.Tag{}).
		Joins("JOIN card_tags ON card_tags.tag_id = tags.id").
		Where("card_tags.card_id = ?", cardID).
		Order("tags.label ASC").Find(&tags).Error
	return tags, err
}

func (r *tagRepository) Attached(cardID, tagID string) (bool, error) {
	var count int64
	err := r.db.Model(&boarddomain.CardTag{}).
		Where("card_id = ? AND tag_id = ?", cardID, tagID).Count(&count).Error
	return count > 0, err
}

func (r *tagRepository) Attach(cardID, tagID string) error {
	cardTag := &boarddomain.CardTag{
		ID:        uuid.New().String(),
		CardID:    cardID,
		TagID:     tagID,
		CreatedAt: time.Now(),
	}
	return r.db.Create(cardTag).Error
}

func (r *tagRepository) Detach(cardID, tagID string) error {
	return r.db.Where("card_id = ? AND tag_id = ?", cardID, tagID).Delete(&boarddomain.CardTag{}).Error
}
