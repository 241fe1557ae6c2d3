package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler handles notification HTTP requests
type Handler struct {
	repo Repository
}

// NewHandler creates a new notification handler
func NewHandler(repo Repository) *Handler {
	return &Handler{
		repo: repo,
	}
}

// List handles GET /api/notifications
func (h *Handler) List(c *gin.Context) {
	accountID := c.GetString("accountID")
	userID := c.GetString("userID")
	unreadOnly := c.Query("unread") == "true"

	notifications, err := h.repo.FindByUser(accountID, userID, unreadOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkRead handles POST /api/notifications/:id/read
func (h *Handler) MarkRead(c *gin.Context) {
	accountID := c.GetString("accountID")
	userID := c.GetString("userID")
	id := c.Param("id")

	if err := h.repo.MarkRead(accountID, userID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification as read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// MarkAllRead handles POST /api/notifications/read-all
func (h *Handler) MarkAllRead(c *gin.Context) {
	accountID := c.GetString("accountID")
	userID := c.GetString("userID")

	if err := h.repo.MarkAllRead(accountID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications as read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}
