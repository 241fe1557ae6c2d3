package repository

import (
	"time"

	boarddomain "fizzy-backend/internal/board/domain"
)

// CardRepository defines the interface for card data access
type CardRepository interface {
	// Create creates a new card
	Create(card *boarddomain.Card) error

	// FindByID finds a card by ID within an account
	FindByID(accountID, id string) (*boarddomain.Card, error)

	// FindByBoard returns the board's cards, most recently active first
	FindByBoard(accountID, boardID string) ([]*boarddomain.Card, error)

	// FindAwaitingTriage returns published cards in the triage stream
	FindAwaitingTriage(accountID, boardID string) ([]*boarddomain.Card, error)

	// FindAutoPostponeCandidates returns published, open, un-postponed cards in a
	// column whose last activity predates the cutoff
	FindAutoPostponeCandidates(boardID string, cutoff time.Time) ([]*boarddomain.Card, error)

	// Update updates an existing card
	Update(card *boarddomain.Card) error

	// Delete removes the card and cascades to its time entries, comments and tag
	// attachments in one transaction
	Delete(accountID, id string) error
}

// CommentRepository defines the interface for card comment access
type CommentRepository interface {
	// Create creates a new comment
	Create(comment *boarddomain.Comment) error

	// FindByCard returns a card's comments, newest first
	FindByCard(accountID, cardID string) ([]*boarddomain.Comment, error)
}
