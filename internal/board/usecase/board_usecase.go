package usecase

import (
	"strings"

	boarddomain "fizzy-backend/internal/board/domain"
	"fizzy-backend/internal/board/repository"
)

// Aggregate state selectors accepted by TotalTrackedHours
const (
	StateAwaitingTriage = "awaiting_triage"
	StatePostponed      = "postponed"
	StateClosed         = "closed"
	columnStatePrefix   = "column:"
)

// boardUsecase implements BoardUsecase interface
type boardUsecase struct {
	boardRepo     repository.BoardRepository
	columnRepo    repository.ColumnRepository
	timeEntryRepo repository.TimeEntryRepository
	accounts      AccountSettings

	defaultPostponeDays int
}

// NewBoardUsecase creates a new instance of boardUsecase
func NewBoardUsecase(
	boardRepo repository.BoardRepository,
	columnRepo repository.ColumnRepository,
	timeEntryRepo repository.TimeEntryRepository,
	accounts AccountSettings,
	defaultPostponeDays int,
) BoardUsecase {
	return &boardUsecase{
		boardRepo:           boardRepo,
		columnRepo:          columnRepo,
		timeEntryRepo:       timeEntryRepo,
		accounts:            accounts,
		defaultPostponeDays: defaultPostponeDays,
	}
}

// CreateBoard creates the board with its default columns. The default
// auto-postpone period is established exactly once, at creation, and only when
// neither the request nor the account provides one.
func (u *boardUsecase) CreateBoard(accountID, creatorID string, req CreateBoardRequest) (*boarddomain.Board, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyBoardName
	}

	board := &boarddomain.Board{
		AccountID:        accountID,
		CreatorID:        creatorID,
		Name:             req.Name,
		AutoPostponeDays: req.AutoPostponeDays,
	}

	if board.AutoPostponeDays == nil {
		accountDays, err := u.accounts.AutoPostponeDaysFor(accountID)
		if err != nil {
			return nil, err
		}
		if accountDays == nil {
			days := u.defaultPostponeDays
			board.AutoPostponeDays = &days
		}
	}

	if err := u.boardRepo.Create(board); err != nil {
		return nil, err
	}

	for i, name := range boarddomain.DefaultColumnNames {
		column := &boarddomain.Column{
			AccountID: accountID,
			BoardID:   board.ID,
			Name:      name,
			Position:  i,
		}
		if err := u.columnRepo.Create(column); err != nil {
			return nil, err
		}
	}

	return board, nil
}

func (u *boardUsecase) GetBoard(accountID, boardID string) (*boarddomain.Board, error) {
	return u.ownedBoard(accountID, boardID)
}

func (u *boardUsecase) ListBoards(accountID string) ([]*boarddomain.Board, error) {
	return u.boardRepo.FindByAccount(accountID)
}

func (u *boardUsecase) UpdateBoard(accountID, boardID string, req UpdateBoardRequest) (*boarddomain.Board, error) {
	board, err := u.ownedBoard(accountID, boardID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyBoardName
		}
		board.Name = *req.Name
	}
	if req.AutoPostponeDays != nil {
		board.AutoPostponeDays = req.AutoPostponeDays
	}

	if err := u.boardRepo.Update(board); err != nil {
		return nil, err
	}
	return board, nil
}

func (u *boardUsecase) DeleteBoard(accountID, boardID string) error {
	board, err := u.ownedBoard(accountID, boardID)
	if err != nil {
		return err
	}
	return u.boardRepo.Delete(accountID, board.ID)
}

func (u *boardUsecase) CreateColumn(accountID, boardID string, req CreateColumnRequest) (*boarddomain.Column, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyColumnName
	}

	board, err := u.ownedBoard(accountID, boardID)
	if err != nil {
		return nil, err
	}

	column := &boarddomain.Column{
		AccountID: accountID,
		BoardID:   board.ID,
		Name:      req.Name,
		Color:     req.Color,
		Position:  req.Position,
	}
	if err := u.columnRepo.Create(column); err != nil {
		return nil, err
	}
	return column, nil
}

func (u *boardUsecase) ListColumns(accountID, boardID string) ([]*boarddomain.Column, error) {
	if _, err := u.ownedBoard(accountID, boardID); err != nil {
		return nil, err
	}
	return u.columnRepo.FindByBoard(accountID, boardID)
}

// UpdateColumn applies the changes and, when the name or color changed, fans a
// touch out to every contained card so their cached representations expire
func (u *boardUsecase) UpdateColumn(accountID, columnID string, req UpdateColumnRequest) (*boarddomain.Column, error) {
	column, err := u.columnRepo.FindByID(accountID, columnID)
	if err != nil {
		return nil, err
	}
	if column == nil {
		return nil, ErrColumnNotFound
	}

	touchCards := false
	if req.Name != nil && *req.Name != column.Name {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyColumnName
		}
		column.Name = *req.Name
		touchCards = true
	}
	if req.Color != nil && *req.Color != column.Color {
		column.Color = *req.Color
		touchCards = true
	}
	if req.Position != nil {
		column.Position = *req.Position
	}

	if err := u.columnRepo.Update(column, touchCards); err != nil {
		return nil, err
	}
	return column, nil
}

func (u *boardUsecase) DeleteColumn(accountID, columnID string) error {
	column, err := u.columnRepo.FindByID(accountID, columnID)
	if err != nil {
		return err
	}
	if column == nil {
		return ErrColumnNotFound
	}
	return u.columnRepo.Delete(accountID, column.ID)
}

// TotalTrackedHours recomputes from current lifecycle state on every call;
// its correctness rests entirely on the card state predicates being accurate
// at query time
func (u *boardUsecase) TotalTrackedHours(accountID, boardID, state string) (float64, error) {
	board, err := u.ownedBoard(accountID, boardID)
	if err != nil {
		return 0, err
	}

	switch {
	case state == StateAwaitingTriage:
		return u.timeEntryRepo.SumHoursAwaitingTriage(accountID, board.ID)
	case state == StatePostponed:
		return u.timeEntryRepo.SumHoursPostponed(accountID, board.ID)
	case state == StateClosed:
		return u.timeEntryRepo.SumHoursClosed(accountID, board.ID)
	case strings.HasPrefix(state, columnStatePrefix):
		columnID := strings.TrimPrefix(state, columnStatePrefix)
		column, err := u.columnRepo.FindByID(accountID, columnID)
		if err != nil {
			return 0, err
		}
		if column == nil || column.BoardID != board.ID {
			return 0, ErrColumnNotFound
		}
		return u.timeEntryRepo.SumHoursForColumn(accountID, column.ID)
	default:
		return 0, ErrUnknownState
	}
}

func (u *boardUsecase) ownedBoard(accountID, boardID string) (*boarddomain.Board, error) {
	board, err := u.boardRepo.FindByID(accountID, boardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, ErrBoardNotFound
	}
	return board, nil
}
