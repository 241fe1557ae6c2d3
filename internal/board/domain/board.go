package domain

import "time"

// DefaultColumnNames are created for every new board that starts empty
var DefaultColumnNames = []string{"Todo", "In Progress", "Verifying"}

// Board groups columns and cards inside an account
type Board struct {
	ID        string `json:"id" gorm:"primaryKey"`
	AccountID string `json:"account_id" gorm:"index;not null"`
	CreatorID string `json:"creator_id" gorm:"index;not null"`
	Name      string `json:"name" gorm:"not null"`

	// Inactivity period in days before cards are auto-postponed.
	// Nil means fall back to the account-level period.
	AutoPostponeDays *int `json:"auto_postpone_days,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Column is an ordered workflow lane on a board
type Column struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	AccountID string    `json:"account_id" gorm:"index;not null"`
	BoardID   string    `json:"board_id" gorm:"index;not null"`
	Name      string    `json:"name" gorm:"not null"`
	Color     string    `json:"color" gorm:"default:''"`
	Position  int       `json:"position" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
