package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fizzy-backend/internal/board/usecase"
)

// respondError maps usecase errors onto HTTP statuses. Validation failures are
// 422, missing entities 404, lifecycle precondition violations 409.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptyTitle),
		errors.Is(err, usecase.ErrEmptyBoardName),
		errors.Is(err, usecase.ErrEmptyColumnName),
		errors.Is(err, usecase.ErrEmptyTagLabel),
		errors.Is(err, usecase.ErrInvalidHours),
		errors.Is(err, usecase.ErrUnknownState):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrBoardNotFound),
		errors.Is(err, usecase.ErrColumnNotFound),
		errors.Is(err, usecase.ErrCardNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrInvalidTransition),
		errors.Is(err, usecase.ErrAlreadyClosed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
