package repository

import (
	boarddomain "fizzy-backend/internal/board/domain"
)

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	// Create creates a new board
	Create(board *boarddomain.Board) error

	// FindByID finds a board by ID within an account
	FindByID(accountID, id string) (*boarddomain.Board, error)

	// FindByIDAnyAccount finds a board by ID without tenant scoping. Reserved
	// for the auto-postpone sweep, which runs across accounts.
	FindByIDAnyAccount(id string) (*boarddomain.Board, error)

	// FindByAccount returns all boards of an account, alphabetically
	FindByAccount(accountID string) ([]*boarddomain.Board, error)

	// FindByAccountAndName finds a board by exact name (used by the importer)
	FindByAccountAndName(accountID, name string) (*boarddomain.Board, error)

	// FindAll returns every board across accounts (auto-postpone sweep)
	FindAll() ([]*boarddomain.Board, error)

	// Update updates an existing board
	Update(board *boarddomain.Board) error

	// Delete deletes a board by ID
	Delete(accountID, id string) error
}

// ColumnRepository defines the interface for column data access
type ColumnRepository interface {
	// Create creates a new column
	Create(column *boarddomain.Column) error

	// FindByID finds a column by ID within an account
	FindByID(accountID, id string) (*boarddomain.Column, error)

	// FindByBoard returns the board's columns ordered by position
	FindByBoard(accountID, boardID string) ([]*boarddomain.Column, error)

	// FindByBoardAndName finds a column by exact name on a board
	FindByBoardAndName(accountID, boardID, name string) (*boarddomain.Column, error)

	// Update saves the column and, when name or color changed, touches every
	// contained card so downstream caches invalidate
	Update(column *boarddomain.Column, touchCards bool) error

	// Delete removes the column, sending its cards back to triage
	Delete(accountID, id string) error
}
