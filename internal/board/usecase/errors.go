package usecase

import (
	"errors"
	"fmt"
)

// Validation errors: bad input, surfaced to the caller, never retried
var (
	ErrEmptyTitle      = errors.New("card title cannot be empty")
	ErrEmptyBoardName  = errors.New("board name cannot be empty")
	ErrEmptyColumnName = errors.New("column name cannot be empty")
	ErrEmptyTagLabel   = errors.New("tag label cannot be empty")
	ErrInvalidHours    = errors.New("hours must be greater than zero")
	ErrUnknownState    = errors.New("unknown aggregate state")
)

// Not-found errors: referenced entity absent within the account
var (
	ErrBoardNotFound  = errors.New("board not found")
	ErrColumnNotFound = errors.New("column not found")
	ErrCardNotFound   = errors.New("card not found")
)

// Lifecycle errors: a transition precondition was violated. No partial
// mutation occurs when these are returned.
var (
	ErrInvalidTransition  = errors.New("invalid lifecycle transition")
	ErrAlreadyClosed      = errors.New("card is already closed")
	ErrColumnOnOtherBoard = fmt.Errorf("%w: column belongs to a different board", ErrInvalidTransition)
	ErrCardNotPublished   = fmt.Errorf("%w: card is still a draft", ErrInvalidTransition)
)
