package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	boarddomain "fizzy-backend/internal/board/domain"
	"fizzy-backend/internal/board/usecase"
)

// CardHandler handles card lifecycle HTTP requests
type CardHandler struct {
	lifecycleUsecase usecase.LifecycleUsecase
	tagUsecase       usecase.TagUsecase
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(lifecycleUsecase usecase.LifecycleUsecase, tagUsecase usecase.TagUsecase) *CardHandler {
	return &CardHandler{
		lifecycleUsecase: lifecycleUsecase,
		tagUsecase:       tagUsecase,
	}
}

// CreateCardRequest represents the request body for creating a card
type CreateCardRequest struct {
	BoardID     string `json:"board_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Publish     bool   `json:"publish"`
}

// TriageRequest represents the request body for triaging a card into a column
type TriageRequest struct {
	ColumnID string `json:"column_id" binding:"required"`
}

// AddTimeEntryRequest represents the request body for logging time
type AddTimeEntryRequest struct {
	Hours float64 `json:"hours" binding:"required"`
	Notes string  `json:"notes"`
}

// ToggleTagRequest represents the request body for toggling a tag
type ToggleTagRequest struct {
	Label string `json:"label" binding:"required"`
}

// CreateCard creates a card, as a draft or published straight into triage
// POST /api/cards
func (h *CardHandler) CreateCard(c *gin.Context) {
	accountID := c.GetString("accountID")
	userID := c.GetString("userID")

	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := h.lifecycleUsecase.CreateCard(accountID, userID, usecase.CreateCardRequest{
		BoardID:     req.BoardID,
		Title:       req.Title,
		Description: req.Description,
		Publish:     req.Publish,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, card)
}

// GetCards returns a board's cards, or just its triage stream with ?view=triage
// GET /api/boards/:id/cards
func (h *CardHandler) GetCards(c *gin.Context) {
	accountID := c.GetString("accountID")
	boardID := c.Param("id")

	var err error
	var cards interface{}
	if c.Query("view") == "triage" {
		cards, err = h.lifecycleUsecase.ListAwaitingTriage(accountID, boardID)
	} else {
		cards, err = h.lifecycleUsecase.ListCards(accountID, boardID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cards": cards})
}

// GetCard returns a specific card
// GET /api/cards/:id
func (h *CardHandler) GetCard(c *gin.Context) {
	accountID := c.GetString("accountID")
	cardID := c.Param("id")

	card, err := h.lifecycleUsecase.GetCard(accountID, cardID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// DeleteCard deletes a card with its time entries, comments and tags
// DELETE /api/cards/:id
func (h *CardHandler) DeleteCard(c *gin.Context) {
	accountID := c.GetString("accountID")
	userID := c.GetString("userID")
	cardID := c.Param("id")

	if err := h.lifecycleUsecase.DeleteCard(accountID, userID, cardID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card deleted"})
}

// PublishCard moves a draft into the awaiting-triage stream
// POST /api/cards/:id/publish
func (h *CardHandler) PublishCard(c *gin.Context) {
	accountID := c.GetString("accountID")
	userID := c.GetString("userID")
	cardID := c.Param("id")

	card, err := h.lifecycleUsecase.PublishCard(accountID, userID, cardID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// Triage assigns the card to a column. The response carries prompt_for_time so
// the client knows when to offer the time-logging dialog.
// POST /api/cards/:id/triage
func (h *CardHandler) Triage(c *gin.Context) {
	accountID := c.GetString("accountID")
	userID := c.GetString("userID")
	cardID := c.Param("id")

	var req TriageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.lifecycleUsecase.TriageInto(accountID, userID, cardID, req.ColumnID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SendBackToTriage clears the card's column and postponed flags
// POST /api/cards/:id/send-back
func (h *CardHandler) SendBackToTriage(c *gin.Context) {
	accountID := c.GetString("accountID")
	userID := c.GetString("userID")
	cardID := c.Param("id")

	card, err := h.lifecycleUsecase.SendBackToTriage(accountID, userID, cardID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// Postpone sets the postponed overlay on the card
// POST /api/cards/:id/postpone
func (h *CardHandler) Postpone(c *gin.Context) {
	accountID := c.GetString("accountID")
	userID := c.GetString("userID")
	cardID := c.Param("id")

	card, err := h.lifecycleUsecase.Postpone(accountID, userID, cardID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// Close closes the card
// POST /api/cards/:id/close
func (h *CardHandler) Close(c *gin.Context) {
	accountID := c.GetString("accountID")
	userID := c.GetString("userID")
	cardID := c.Param("id")

	card, err := h.lifecycleUsecase.Close(accountID, userID, cardID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// Reopen clears the closed flag
// POST /api/cards/:id/reopen
func (h *CardHandler) Reopen(c *gin.Context) {
	accountID := c.GetString("accountID")
	userID := c.GetString("userID")
	cardID := c.Param("id")

	card, err := h.lifecycleUsecase.Reopen(accountID, userID, cardID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// AddTimeEntry logs hours against the card and synthesizes the activity comment
// POST /api/cards/:id/time-entries
func (h *CardHandler) AddTimeEntry(c *gin.Context) {
	accountID := c.GetString("accountID")
	userID := c.GetString("userID")
	cardID := c.Param("id")

	var req AddTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.lifecycleUsecase.AddTimeEntry(accountID, userID, cardID, req.Hours, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetTimeEntries returns the card's time ledger with its total. With ?user=
// only that user's entries are listed; the total stays card-wide.
// GET /api/cards/:id/time-entries
func (h *CardHandler) GetTimeEntries(c *gin.Context) {
	accountID := c.GetString("accountID")
	cardID := c.Param("id")

	var entries []*boarddomain.TimeEntry
	var err error
	if userID := c.Query("user"); userID != "" {
		entries, err = h.lifecycleUsecase.CardTimeEntriesForUser(accountID, cardID, userID)
	} else {
		entries, err = h.lifecycleUsecase.CardTimeEntries(accountID, cardID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	total, err := h.lifecycleUsecase.CardTotalHours(accountID, cardID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"time_entries": entries,
		"total_hours":  total,
	})
}

// GetComments returns the card's comments, newest first
// GET /api/cards/:id/comments
func (h *CardHandler) GetComments(c *gin.Context) {
	accountID := c.GetString("accountID")
	cardID := c.Param("id")

	comments, err := h.lifecycleUsecase.CardComments(accountID, cardID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// ToggleTag attaches the label if absent, detaches it if present
// POST /api/cards/:id/tags/toggle
func (h *CardHandler) ToggleTag(c *gin.Context) {
	accountID := c.GetString("accountID")
	cardID := c.Param("id")

	var req ToggleTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attached, err := h.tagUsecase.ToggleTag(accountID, cardID, req.Label)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"label":    req.Label,
		"attached": attached,
	})
}

// GetTags returns the tags attached to a card
// GET /api/cards/:id/tags
func (h *CardHandler) GetTags(c *gin.Context) {
	accountID := c.GetString("accountID")
	cardID := c.Param("id")

	tags, err := h.tagUsecase.CardTags(accountID, cardID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tags": tags})
}
