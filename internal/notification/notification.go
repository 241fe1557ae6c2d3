package notification

import "time"

// Notification is a per-user record of something that happened to a card they
// care about. Created from lifecycle events, never updated except to mark read.
type Notification struct {
	ID        string     `json:"id" gorm:"primaryKey"`
	AccountID string     `json:"account_id" gorm:"index;not null"`
	UserID    string     `json:"user_id" gorm:"index;not null"`
	ActorID   string     `json:"actor_id" gorm:"not null"`
	CardID    string     `json:"card_id" gorm:"index;not null"`
	Kind      string     `json:"kind" gorm:"not null"`
	Body      string     `json:"body" gorm:"not null"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (n *Notification) Read() bool {
	return n.ReadAt != nil
}
