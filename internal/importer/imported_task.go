package importer

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImportedClickupTask records one external task we have already pulled in, so
// re-running an import never duplicates cards
type ImportedClickupTask struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	AccountID  string    `json:"account_id" gorm:"uniqueIndex:idx_account_external;not null"`
	ExternalID string    `json:"external_id" gorm:"uniqueIndex:idx_account_external;not null"`
	CardID     string    `json:"card_id"`
	FolderName string    `json:"folder_name"`
	ListName   string    `json:"list_name"`
	Title      string    `json:"title"`
	Status     string    `json:"status"`
	Priority   string    `json:"priority"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Repository defines the interface for imported task records
type Repository interface {
	FindByExternalID(accountID, externalID string) (*ImportedClickupTask, error)
	Save(task *ImportedClickupTask) error
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

func (r *repository) FindByExternalID(accountID, externalID string) (*ImportedClickupTask, error) {
	var task ImportedClickupTask
	err := r.db.Where("account_id = ? AND external_id = ?", accountID, externalID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *repository) Save(task *ImportedClickupTask) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
		task.CreatedAt = time.Now()
	}
	task.UpdatedAt = time.Now()
	return r.db.Save(task).Error
}
