package repository

import (
	boarddomain "fizzy-backend/internal/board/domain"
)

// TimeEntryRepository defines the interface for the append-only time ledger.
// Entries have no update path; they are removed only by card cascade.
type TimeEntryRepository interface {
	// CreateWithComment writes the entry and its synthesized activity comment as
	// a single atomic unit: either both are visible or neither is
	CreateWithComment(entry *boarddomain.TimeEntry, comment *boarddomain.Comment) error

	// FindByCard returns a card's entries, newest first
	FindByCard(accountID, cardID string) ([]*boarddomain.TimeEntry, error)

	// FindByCardAndUser returns one user's entries on a card, newest first
	FindByCardAndUser(accountID, cardID, userID string) ([]*boarddomain.TimeEntry, error)

	// SumHoursForCard totals hours logged against a card. Returns 0, never an
	// absent value, when the card has no entries.
	SumHoursForCard(accountID, cardID string) (float64, error)

	// SumHoursAwaitingTriage totals hours over cards currently awaiting triage
	SumHoursAwaitingTriage(accountID, boardID string) (float64, error)

	// SumHoursPostponed totals hours over cards currently postponed (open only)
	SumHoursPostponed(accountID, boardID string) (float64, error)

	// SumHoursClosed totals hours over closed cards
	SumHoursClosed(accountID, boardID string) (float64, error)

	// SumHoursForColumn totals hours over open published cards in a column
	SumHoursForColumn(accountID, columnID string) (float64, error)
}

// TagRepository defines the interface for account-scoped tags and their
// card attachments
type TagRepository interface {
	// Create creates a new tag
	Create(tag *boarddomain.Tag) error

	// FindByLabel finds a tag by exact, case-sensitive label
	FindByLabel(accountID, label string) (*boarddomain.Tag, error)

	// FindByCard returns the tags attached to a card
	FindByCard(cardID string) ([]*boarddomain.Tag, error)

	// Attached reports whether the tag is attached to the card
	Attached(cardID, tagID string) (bool, error)

	// Attach attaches the tag to the card
	Attach(cardID, tagID string) error

	// Detach removes the tag from the card
	Detach(cardID, tagID string) error
}
