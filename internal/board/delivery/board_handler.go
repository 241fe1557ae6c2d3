package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fizzy-backend/internal/board/usecase"
)

// BoardHandler handles board and column HTTP requests
type BoardHandler struct {
	boardUsecase     usecase.BoardUsecase
	lifecycleUsecase usecase.LifecycleUsecase
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(boardUsecase usecase.BoardUsecase, lifecycleUsecase usecase.LifecycleUsecase) *BoardHandler {
	return &BoardHandler{
		boardUsecase:     boardUsecase,
		lifecycleUsecase: lifecycleUsecase,
	}
}

// CreateBoardRequest represents the request body for creating a board
type CreateBoardRequest struct {
	Name             string `json:"name" binding:"required"`
	AutoPostponeDays *int   `json:"auto_postpone_days"`
}

// UpdateBoardRequest represents the request body for updating a board
type UpdateBoardRequest struct {
	Name             *string `json:"name"`
	AutoPostponeDays *int    `json:"auto_postpone_days"`
}

// CreateColumnRequest represents the request body for creating a column
type CreateColumnRequest struct {
	Name     string `json:"name" binding:"required"`
	Color    string `json:"color"`
	Position int    `json:"position"`
}

// UpdateColumnRequest represents the request body for updating a column
type UpdateColumnRequest struct {
	Name     *string `json:"name"`
	Color    *string `json:"color"`
	Position *int    `json:"position"`
}

// CreateBoard creates a new board with its default columns
// POST /api/boards
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	accountID := c.GetString("accountID")
	userID := c.GetString("userID")

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	board, err := h.boardUsecase.CreateBoard(accountID, userID, usecase.CreateBoardRequest{
		Name:             req.Name,
		AutoPostponeDays: req.AutoPostponeDays,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, board)
}

// GetBoards returns all boards in the account
// GET /api/boards
func (h *BoardHandler) GetBoards(c *gin.Context) {
	accountID := c.GetString("accountID")

	boards, err := h.boardUsecase.ListBoards(accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"boards": boards})
}

// GetBoard returns a specific board
// GET /api/boards/:id
func (h *BoardHandler) GetBoard(c *gin.Context) {
	accountID := c.GetString("accountID")
	boardID := c.Param("id")

	board, err := h.boardUsecase.GetBoard(accountID, boardID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// UpdateBoard updates a board's name or auto-postpone override
// PUT /api/boards/:id
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	accountID := c.GetString("accountID")
	boardID := c.Param("id")

	var req UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	board, err := h.boardUsecase.UpdateBoard(accountID, boardID, usecase.UpdateBoardRequest{
		Name:             req.Name,
		AutoPostponeDays: req.AutoPostponeDays,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// DeleteBoard deletes a board with its columns and cards
// DELETE /api/boards/:id
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	accountID := c.GetString("accountID")
	boardID := c.Param("id")

	if err := h.boardUsecase.DeleteBoard(accountID, boardID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Board deleted"})
}

// CreateColumn appends a column to a board
// POST /api/boards/:id/columns
func (h *BoardHandler) CreateColumn(c *gin.Context) {
	accountID := c.GetString("accountID")
	boardID := c.Param("id")

	var req CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	column, err := h.boardUsecase.CreateColumn(accountID, boardID, usecase.CreateColumnRequest{
		Name:     req.Name,
		Color:    req.Color,
		Position: req.Position,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, column)
}

// GetColumns returns a board's columns in position order
// GET /api/boards/:id/columns
func (h *BoardHandler) GetColumns(c *gin.Context) {
	accountID := c.GetString("accountID")
	boardID := c.Param("id")

	columns, err := h.boardUsecase.ListColumns(accountID, boardID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"columns": columns})
}

// UpdateColumn updates a column
// PUT /api/columns/:id
func (h *BoardHandler) UpdateColumn(c *gin.Context) {
	accountID := c.GetString("accountID")
	columnID := c.Param("id")

	var req UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	column, err := h.boardUsecase.UpdateColumn(accountID, columnID, usecase.UpdateColumnRequest{
		Name:     req.Name,
		Color:    req.Color,
		Position: req.Position,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, column)
}

// DeleteColumn deletes a column, sending its cards back to triage
// DELETE /api/columns/:id
func (h *BoardHandler) DeleteColumn(c *gin.Context) {
	accountID := c.GetString("accountID")
	columnID := c.Param("id")

	if err := h.boardUsecase.DeleteColumn(accountID, columnID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Column deleted"})
}

// GetTrackedHours returns the board's total logged hours for a state bucket
// GET /api/boards/:id/hours?state=awaiting_triage|postponed|closed|column:<id>
func (h *BoardHandler) GetTrackedHours(c *gin.Context) {
	accountID := c.GetString("accountID")
	boardID := c.Param("id")
	state := c.Query("state")

	total, err := h.boardUsecase.TotalTrackedHours(accountID, boardID, state)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"board_id": boardID,
		"state":    state,
		"hours":    total,
	})
}

// RunAutoPostpone triggers the auto-postpone policy on a board immediately
// POST /api/boards/:id/auto-postpone
func (h *BoardHandler) RunAutoPostpone(c *gin.Context) {
	accountID := c.GetString("accountID")
	boardID := c.Param("id")

	// Confirm the board belongs to the caller's account before running
	if _, err := h.boardUsecase.GetBoard(accountID, boardID); err != nil {
		respondError(c, err)
		return
	}

	result, err := h.lifecycleUsecase.RunAutoPostpone(boardID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
