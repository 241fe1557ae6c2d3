package notification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for notification data access
type Repository interface {
	Create(n *Notification) error
	FindByUser(accountID, userID string, unreadOnly bool) ([]*Notification, error)
	MarkRead(accountID, userID, id string) error
	MarkAllRead(accountID, userID string) error
}

// repository implements Repository interface
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new instance of repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) Create(n *Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.CreatedAt = time.Now()
	return r.db.Create(n).Error
}

func (r *repository) FindByUser(accountID, userID string, unreadOnly bool) ([]*Notification, error) {
	var notifications []*Notification
	query := r.db.Where("account_id = ? AND user_id = ?", accountID, userID)
	if unreadOnly {
		query = query.Where("read_at IS NULL")
	}
	err := query.Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

func (r *repository) MarkRead(accountID, userID, id string) error {
	return r.db.Model(&Notification{}).
		Where("account_id = ? AND user_id = ? AND id = ?", accountID, userID, id).
		Update("read_at", time.Now()).Error
}

func (r *repository) MarkAllRead(accountID, userID string) error {
	return r.db.Model(&Notification{}).
		Where("account_id = ? AND user_id = ? AND read_at IS NULL", accountID, userID).
		Update("read_at", time.Now()).Error
}
