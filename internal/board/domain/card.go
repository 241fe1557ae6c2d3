package domain

import "time"

// CardStatus tracks whether a card has been published into the triage stream
type CardStatus string

const (
	CardStatusDraft     CardStatus = "draft"
	CardStatusPublished CardStatus = "published"
)

// CardState is the derived lifecycle state of a card. It is never stored;
// it is computed from the raw column/postponed/closed fields.
type CardState string

const (
	CardStateAwaitingTriage CardState = "awaiting_triage"
	CardStateInColumn       CardState = "in_column"
	CardStatePostponed      CardState = "postponed"
	CardStateClosed         CardState = "closed"
)

// Card represents a unit of work on a board. Its lifecycle position is derived
// from ColumnID, PostponedAt and ClosedAt; postponed is an overlay flag and does
// not clear the column assignment.
type Card struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	AccountID    string     `json:"account_id" gorm:"index;not null"`
	BoardID      string     `json:"board_id" gorm:"index;not null"`
	ColumnID     *string    `json:"column_id,omitempty" gorm:"index"`
	Title        string     `json:"title" gorm:"not null"`
	Description  string     `json:"description,omitempty"`
	Status       CardStatus `json:"status" gorm:"default:draft"`
	CreatorID    string     `json:"creator_id" gorm:"index"`
	PostponedAt  *time.Time `json:"postponed_at,omitempty"`
	ClosedAt     *time.Time `json:"closed_at,omitempty"`
	ClosedBy     string     `json:"closed_by,omitempty"`
	LastActiveAt time.Time  `json:"last_active_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (c *Card) Closed() bool {
	return c.ClosedAt != nil
}

// PostponedOverlay reports the raw overlay flag, independent of the
// primary state. A closed card can still carry it.
func (c *Card) PostponedOverlay() bool {
	return c.PostponedAt != nil
}

func (c *Card) Published() bool {
	return c.Status == CardStatusPublished
}

// State resolves the four-state machine view used by transition preconditions.
// Closed wins over everything, then the postponed overlay, then column assignment.
func (c *Card) State() CardState {
	switch {
	case c.ClosedAt != nil:
		return CardStateClosed
	case c.PostponedAt != nil:
		return CardStatePostponed
	case c.ColumnID != nil:
		return CardStateInColumn
	default:
		return CardStateAwaitingTriage
	}
}

// PrimaryState resolves the mutually exclusive position ignoring the postponed
// overlay: exactly one of closed, in_column, awaiting_triage holds at any instant.
func (c *Card) PrimaryState() CardState {
	switch {
	case c.ClosedAt != nil:
		return CardStateClosed
	case c.ColumnID != nil:
		return CardStateInColumn
	default:
		return CardStateAwaitingTriage
	}
}
