package domain

import "time"

// TimeEntry is an append-only record of hours logged against a card.
// Entries are immutable once created and are destroyed only when their
// card is destroyed.
type TimeEntry struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CardID    string    `json:"card_id" gorm:"index;not null"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	AccountID string    `json:"account_id" gorm:"index;not null"`
	Hours     float64   `json:"hours" gorm:"type:decimal(10,2);not null"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is a discussion or activity entry on a card. Time-entry comments
// are synthesized by the lifecycle, not typed by a user.
type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CardID    string    `json:"card_id" gorm:"index;not null"`
	AccountID string    `json:"account_id" gorm:"index;not null"`
	CreatorID string    `json:"creator_id" gorm:"index;not null"`
	Body      string    `json:"body" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
