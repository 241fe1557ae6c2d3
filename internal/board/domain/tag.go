package domain

import "time"

// Tag is a free-text label scoped to an account. Matching is exact and
// case-sensitive.
type Tag struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	AccountID string    `json:"account_id" gorm:"index:idx_account_label,unique;not null"`
	Label     string    `json:"label" gorm:"index:idx_account_label,unique;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// CardTag attaches a tag to a card
type CardTag struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CardID    string    `json:"card_id" gorm:"index:idx_card_tag,unique;not null"`
	TagID     string    `json:"tag_id" gorm:"index:idx_card_tag,unique;not null"`
	CreatedAt time.Time `json:"created_at"`
}
