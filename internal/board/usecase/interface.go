package usecase

import (
	boarddomain "fizzy-backend/internal/board/domain"
)

// LifecycleUsecase governs a card's position among the triage stream, a named
// column, the postponed overlay and the closed state. Every operation takes an
// explicit actor; there is no ambient current-user context.
type LifecycleUsecase interface {
	// CreateCard creates a card, as a draft or published straight into triage
	CreateCard(accountID, actorID string, req CreateCardRequest) (*boarddomain.Card, error)

	// PublishCard moves a draft into the awaiting-triage stream
	PublishCard(accountID, actorID, cardID string) (*boarddomain.Card, error)

	// GetCard retrieves a card within the account
	GetCard(accountID, cardID string) (*boarddomain.Card, error)

	// ListCards returns the board's cards, most recently active first
	ListCards(accountID, boardID string) ([]*boarddomain.Card, error)

	// ListAwaitingTriage returns the board's triage stream
	ListAwaitingTriage(accountID, boardID string) ([]*boarddomain.Card, error)

	// DeleteCard removes a card and everything hanging off it
	DeleteCard(accountID, actorID, cardID string) error

	// TriageInto assigns an awaiting-triage or postponed card to a column on its
	// own board. The result says whether the UI should offer to log time.
	TriageInto(accountID, actorID, cardID, columnID string) (*TriageResult, error)

	// SendBackToTriage clears column and postponed flags. Idempotent when the
	// card is already awaiting triage.
	SendBackToTriage(accountID, actorID, cardID string) (*boarddomain.Card, error)

	// Postpone sets the postponed overlay without clearing the column
	Postpone(accountID, actorID, cardID string) (*boarddomain.Card, error)

	// Close closes the card, recording when and by whom
	Close(accountID, actorID, cardID string) (*boarddomain.Card, error)

	// Reopen clears the closed flag; the card lands wherever its remaining
	// column/postponed fields imply
	Reopen(accountID, actorID, cardID string) (*boarddomain.Card, error)

	// AddTimeEntry appends to the card's time ledger and synthesizes the
	// activity comment, atomically
	AddTimeEntry(accountID, actorID, cardID string, hours float64, notes string) (*boarddomain.TimeEntry, error)

	// CardTimeEntries returns the card's ledger, newest first
	CardTimeEntries(accountID, cardID string) ([]*boarddomain.TimeEntry, error)

	// CardTimeEntriesForUser returns one user's entries on the card, newest first
	CardTimeEntriesForUser(accountID, cardID, userID string) ([]*boarddomain.TimeEntry, error)

	// CardTotalHours totals the card's ledger; 0 when empty
	CardTotalHours(accountID, cardID string) (float64, error)

	// CardComments returns the card's comments, newest first
	CardComments(accountID, cardID string) ([]*boarddomain.Comment, error)

	// RunAutoPostpone evaluates one board's auto-postpone policy. Idempotent;
	// per-card failures are reported, never raised.
	RunAutoPostpone(boardID string) (*AutoPostponeResult, error)

	// SetEventDispatcher wires the notification collaborator
	SetEventDispatcher(d EventDispatcher)
}

// CreateCardRequest carries the data to create a card
type CreateCardRequest struct {
	BoardID     string
	Title       string
	Description string
	Publish     bool
}

// TriageResult is returned by TriageInto
type TriageResult struct {
	Card          *boarddomain.Card     `json:"card"`
	NewState      boarddomain.CardState `json:"new_state"`
	PromptForTime bool                  `json:"prompt_for_time"`
}

// AutoPostponeResult reports one policy run over a board
type AutoPostponeResult struct {
	BoardID   string                `json:"board_id"`
	Evaluated int                   `json:"evaluated"`
	Postponed int                   `json:"postponed"`
	Failures  []AutoPostponeFailure `json:"failures,omitempty"`
}

// AutoPostponeFailure isolates a single card's error inside a batch run
type AutoPostponeFailure struct {
	CardID string `json:"card_id"`
	Error  string `json:"error"`
}

// BoardUsecase manages boards and columns and answers aggregate queries
type BoardUsecase interface {
	// CreateBoard creates a board with the default columns and, when neither
	// board nor account carries one, the default auto-postpone period
	CreateBoard(accountID, creatorID string, req CreateBoardRequest) (*boarddomain.Board, error)

	// GetBoard retrieves a board within the account
	GetBoard(accountID, boardID string) (*boarddomain.Board, error)

	// ListBoards returns the account's boards alphabetically
	ListBoards(accountID string) ([]*boarddomain.Board, error)

	// UpdateBoard updates name and auto-postpone override
	UpdateBoard(accountID, boardID string, req UpdateBoardRequest) (*boarddomain.Board, error)

	// DeleteBoard removes the board with its columns and cards
	DeleteBoard(accountID, boardID string) error

	// CreateColumn appends a column to the board
	CreateColumn(accountID, boardID string, req CreateColumnRequest) (*boarddomain.Column, error)

	// ListColumns returns the board's columns ordered by position
	ListColumns(accountID, boardID string) ([]*boarddomain.Column, error)

	// UpdateColumn updates a column, touching contained cards on rename/recolor
	UpdateColumn(accountID, columnID string, req UpdateColumnRequest) (*boarddomain.Column, error)

	// DeleteColumn removes a column, sending its cards back to triage
	DeleteColumn(accountID, columnID string) error

	// TotalTrackedHours sums logged hours over cards currently in the given
	// state on the board. State is one of "awaiting_triage", "postponed",
	// "closed" or "column:<id>". Returns 0, never an absent value.
	TotalTrackedHours(accountID, boardID, state string) (float64, error)
}

// CreateBoardRequest carries the data to create a board
type CreateBoardRequest struct {
	Name             string
	AutoPostponeDays *int
}

// UpdateBoardRequest carries optional board updates; nil means keep
type UpdateBoardRequest struct {
	Name             *string
	AutoPostponeDays *int
}

// CreateColumnRequest carries the data to create a column
type CreateColumnRequest struct {
	Name     string
	Color    string
	Position int
}

// UpdateColumnRequest carries optional column updates; nil means keep
type UpdateColumnRequest struct {
	Name     *string
	Color    *string
	Position *int
}

// TagUsecase toggles account-scoped labels on cards. Collaborators (the
// importer in particular) rely on toggle semantics rather than separate
// add/remove verbs.
type TagUsecase interface {
	// ToggleTag attaches the label if absent, detaches it if present. The tag
	// record is created on first use. Returns true when the tag ended attached.
	ToggleTag(accountID, cardID, label string) (bool, error)

	// CardTags returns the tags attached to a card
	CardTags(accountID, cardID string) ([]*boarddomain.Tag, error)
}

// EventDispatcher consumes lifecycle events. Implementations must not block;
// the lifecycle never waits on delivery.
type EventDispatcher interface {
	Dispatch(events []boarddomain.Event)
}

// AccountSettings exposes the account-level auto-postpone override to the
// policy without coupling the board module to the auth store
type AccountSettings interface {
	AutoPostponeDaysFor(accountID string) (*int, error)
}

// UserDirectory resolves display names for synthesized activity comments
type UserDirectory interface {
	DisplayName(userID string) (string, error)
}
