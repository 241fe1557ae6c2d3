package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	boarddomain "fizzy-backend/internal/board/domain"
	"fizzy-backend/internal/board/repository"
)

// lifecycleUsecase implements LifecycleUsecase interface
type lifecycleUsecase struct {
	cardRepo      repository.CardRepository
	boardRepo     repository.BoardRepository
	columnRepo    repository.ColumnRepository
	timeEntryRepo repository.TimeEntryRepository
	commentRepo   repository.CommentRepository
	accounts      AccountSettings
	users         UserDirectory
	dispatcher    EventDispatcher

	// fallback when neither board nor account carries a period
	defaultPostponeDays int
}

// NewLifecycleUsecase creates a new instance of lifecycleUsecase
func NewLifecycleUsecase(
	cardRepo repository.CardRepository,
	boardRepo repository.BoardRepository,
	columnRepo repository.ColumnRepository,
	timeEntryRepo repository.TimeEntryRepository,
	commentRepo repository.CommentRepository,
	accounts AccountSettings,
	users UserDirectory,
	defaultPostponeDays int,
) LifecycleUsecase {
	return &lifecycleUsecase{
		cardRepo:            cardRepo,
		boardRepo:           boardRepo,
		columnRepo:          columnRepo,
		timeEntryRepo:       timeEntryRepo,
		commentRepo:         commentRepo,
		accounts:            accounts,
		users:               users,
		defaultPostponeDays: defaultPostponeDays,
	}
}

// SetEventDispatcher wires the notification collaborator. Optional; without it
// transitions still succeed, events are simply not delivered.
func (u *lifecycleUsecase) SetEventDispatcher(d EventDispatcher) {
	u.dispatcher = d
}

func (u *lifecycleUsecase) CreateCard(accountID, actorID string, req CreateCardRequest) (*boarddomain.Card, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrEmptyTitle
	}

	board, err := u.boardRepo.FindByID(accountID, req.BoardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, ErrBoardNotFound
	}

	status := boarddomain.CardStatusDraft
	if req.Publish {
		status = boarddomain.CardStatusPublished
	}

	card := &boarddomain.Card{
		AccountID:    accountID,
		BoardID:      board.ID,
		Title:        req.Title,
		Description:  req.Description,
		Status:       status,
		CreatorID:    actorID,
		LastActiveAt: time.Now(),
	}
	if err := u.cardRepo.Create(card); err != nil {
		return nil, err
	}

	if req.Publish {
		u.emit(card, actorID, boarddomain.EventCardPublished, "")
	}
	return card, nil
}

func (u *lifecycleUsecase) PublishCard(accountID, actorID, cardID string) (*boarddomain.Card, error) {
	card, err := u.ownedCard(accountID, cardID)
	if err != nil {
		return nil, err
	}
	if card.Published() {
		return card, nil
	}

	card.Status = boarddomain.CardStatusPublished
	card.LastActiveAt = time.Now()
	if err := u.cardRepo.Update(card); err != nil {
		return nil, err
	}

	u.emit(card, actorID, boarddomain.EventCardPublished, "")
	return card, nil
}

func (u *lifecycleUsecase) GetCard(accountID, cardID string) (*boarddomain.Card, error) {
	return u.ownedCard(accountID, cardID)
}

func (u *lifecycleUsecase) ListCards(accountID, boardID string) ([]*boarddomain.Card, error) {
	return u.cardRepo.FindByBoard(accountID, boardID)
}

func (u *lifecycleUsecase) ListAwaitingTriage(accountID, boardID string) ([]*boarddomain.Card, error) {
	return u.cardRepo.FindAwaitingTriage(accountID, boardID)
}

func (u *lifecycleUsecase) DeleteCard(accountID, actorID, cardID string) error {
	card, err := u.ownedCard(accountID, cardID)
	if err != nil {
		return err
	}
	return u.cardRepo.Delete(accountID, card.ID)
}

// TriageInto assigns the card to a column. Valid only from awaiting_triage or
// postponed; the column must belong to the card's own board. The card is not
// mutated when a precondition fails.
func (u *lifecycleUsecase) TriageInto(accountID, actorID, cardID, columnID string) (*TriageResult, error) {
	card, err := u.ownedCard(accountID, cardID)
	if err != nil {
		return nil, err
	}
	if !card.Published() {
		return nil, ErrCardNotPublished
	}

	state := card.State()
	if state != boarddomain.CardStateAwaitingTriage && state != boarddomain.CardStatePostponed {
		return nil, fmt.Errorf("%w: cannot triage a card in state %q", ErrInvalidTransition, state)
	}

	column, err := u.columnRepo.FindByID(accountID, columnID)
	if err != nil {
		return nil, err
	}
	if column == nil {
		return nil, ErrColumnNotFound
	}
	if column.BoardID != card.BoardID {
		return nil, ErrColumnOnOtherBoard
	}

	// A postponed card may still carry a column; remember it for the prompt check
	oldColumnName := ""
	if card.ColumnID != nil {
		if oldColumn, err := u.columnRepo.FindByID(accountID, *card.ColumnID); err == nil && oldColumn != nil {
			oldColumnName = oldColumn.Name
		}
	}

	card.ColumnID = &column.ID
	card.PostponedAt = nil
	card.LastActiveAt = time.Now()
	if err := u.cardRepo.Update(card); err != nil {
		return nil, err
	}

	u.emit(card, actorID, boarddomain.EventCardTriaged, "moved into "+column.Name)

	return &TriageResult{
		Card:          card,
		NewState:      card.State(),
		PromptForTime: ShouldPromptForTime(oldColumnName, column.Name),
	}, nil
}

func (u *lifecycleUsecase) SendBackToTriage(accountID, actorID, cardID string) (*boarddomain.Card, error) {
	card, err := u.ownedCard(accountID, cardID)
	if err != nil {
		return nil, err
	}
	if card.Closed() {
		return nil, ErrAlreadyClosed
	}
	if card.State() == boarddomain.CardStateAwaitingTriage {
		// Already there; calling again changes nothing
		return card, nil
	}

	card.ColumnID = nil
	card.PostponedAt = nil
	card.LastActiveAt = time.Now()
	if err := u.cardRepo.Update(card); err != nil {
		return nil, err
	}

	u.emit(card, actorID, boarddomain.EventCardSentToTriage, "")
	return card, nil
}

// Postpone sets the postponed overlay. The column reference is kept: postponed
// is an overlay on top of column assignment, not a replacement for it.
func (u *lifecycleUsecase) Postpone(accountID, actorID, cardID string) (*boarddomain.Card, error) {
	card, err := u.ownedCard(accountID, cardID)
	if err != nil {
		return nil, err
	}
	if card.Closed() {
		return nil, ErrAlreadyClosed
	}
	if card.PostponedOverlay() {
		// Re-postponing is a no-op
		return card, nil
	}

	now := time.Now()
	card.PostponedAt = &now
	if err := u.cardRepo.Update(card); err != nil {
		return nil, err
	}

	u.emit(card, actorID, boarddomain.EventCardPostponed, "")
	return card, nil
}

// Close is valid from any non-closed state. The postponed flag survives a
// close so a later reopen restores the card where it was.
func (u *lifecycleUsecase) Close(accountID, actorID, cardID string) (*boarddomain.Card, error) {
	card, err := u.ownedCard(accountID, cardID)
	if err != nil {
		return nil, err
	}
	if card.Closed() {
		return nil, ErrAlreadyClosed
	}

	now := time.Now()
	card.ClosedAt = &now
	card.ClosedBy = actorID
	card.LastActiveAt = now
	if err := u.cardRepo.Update(card); err != nil {
		return nil, err
	}

	u.emit(card, actorID, boarddomain.EventCardClosed, "")
	return card, nil
}

func (u *lifecycleUsecase) Reopen(accountID, actorID, cardID string) (*boarddomain.Card, error) {
	card, err := u.ownedCard(accountID, cardID)
	if err != nil {
		return nil, err
	}
	if !card.Closed() {
		return nil, fmt.Errorf("%w: card is not closed", ErrInvalidTransition)
	}

	card.ClosedAt = nil
	card.ClosedBy = ""
	card.LastActiveAt = time.Now()
	if err := u.cardRepo.Update(card); err != nil {
		return nil, err
	}

	u.emit(card, actorID, boarddomain.EventCardReopened, "")
	return card, nil
}

// AddTimeEntry appends to the ledger and synthesizes the activity comment
// ("<user> added <hours>h", with "for <notes>" when notes are present). Entry
// and comment are written as one atomic unit.
func (u *lifecycleUsecase) AddTimeEntry(accountID, actorID, cardID string, hours float64, notes string) (*boarddomain.TimeEntry, error) {
	if hours <= 0 {
		return nil, ErrInvalidHours
	}

	card, err := u.ownedCard(accountID, cardID)
	if err != nil {
		return nil, err
	}

	actorName, err := u.users.DisplayName(actorID)
	if err != nil || actorName == "" {
		actorName = actorID
	}

	entry := &boarddomain.TimeEntry{
		CardID:    card.ID,
		UserID:    actorID,
		AccountID: accountID,
		Hours:     hours,
		Notes:     notes,
	}
	comment := &boarddomain.Comment{
		CardID:    card.ID,
		AccountID: accountID,
		CreatorID: actorID,
		Body:      timeEntryCommentBody(actorName, hours, notes),
	}
	if err := u.timeEntryRepo.CreateWithComment(entry, comment); err != nil {
		return nil, err
	}

	card.LastActiveAt = time.Now()
	if err := u.cardRepo.Update(card); err != nil {
		return nil, err
	}

	u.emit(card, actorID, boarddomain.EventTimeLogged, comment.Body)
	return entry, nil
}

func (u *lifecycleUsecase) CardTimeEntries(accountID, cardID string) ([]*boarddomain.TimeEntry, error) {
	if _, err := u.ownedCard(accountID, cardID); err != nil {
		return nil, err
	}
	return u.timeEntryRepo.FindByCard(accountID, cardID)
}

func (u *lifecycleUsecase) CardTimeEntriesForUser(accountID, cardID, userID string) ([]*boarddomain.TimeEntry, error) {
	if _, err := u.ownedCard(accountID, cardID); err != nil {
		return nil, err
	}
	return u.timeEntryRepo.FindByCardAndUser(accountID, cardID, userID)
}

func (u *lifecycleUsecase) CardTotalHours(accountID, cardID string) (float64, error) {
	if _, err := u.ownedCard(accountID, cardID); err != nil {
		return 0, err
	}
	return u.timeEntryRepo.SumHoursForCard(accountID, cardID)
}

func (u *lifecycleUsecase) CardComments(accountID, cardID string) ([]*boarddomain.Comment, error) {
	if _, err := u.ownedCard(accountID, cardID); err != nil {
		return nil, err
	}
	return u.commentRepo.FindByCard(accountID, cardID)
}

func (u *lifecycleUsecase) ownedCard(accountID, cardID string) (*boarddomain.Card, error) {
	card, err := u.cardRepo.FindByID(accountID, cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}
	return card, nil
}

// emit hands events to the dispatcher. Delivery is the dispatcher's problem;
// transitions never wait on it.
func (u *lifecycleUsecase) emit(card *boarddomain.Card, actorID string, eventType boarddomain.EventType, detail string) {
	if u.dispatcher == nil {
		return
	}
	u.dispatcher.Dispatch([]boarddomain.Event{{
		Type:      eventType,
		AccountID: card.AccountID,
		BoardID:   card.BoardID,
		CardID:    card.ID,
		CardTitle: card.Title,
		CreatorID: card.CreatorID,
		ActorID:   actorID,
		Detail:    detail,
		CreatedAt: time.Now(),
	}})
}

func timeEntryCommentBody(userName string, hours float64, notes string) string {
	hoursText := strconv.FormatFloat(hours, 'f', -1, 64) + "h"
	if notes != "" {
		return fmt.Sprintf("%s added %s for %s", userName, hoursText, notes)
	}
	return fmt.Sprintf("%s added %s", userName, hoursText)
}
