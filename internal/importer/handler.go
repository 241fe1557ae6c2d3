package importer

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler handles import HTTP requests
type Handler struct {
	clickup *ClickupImporter
}

// NewHandler creates a new import handler
func NewHandler(clickup *ClickupImporter) *Handler {
	return &Handler{
		clickup: clickup,
	}
}

// ImportClickupCSV imports a ClickUp CSV export uploaded as multipart form
// field "file"
// POST /api/import/clickup
func (h *Handler) ImportClickupCSV(c *gin.Context) {
	accountID := c.GetString("accountID")
	userID := c.GetString("userID")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CSV file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	result, err := h.clickup.Import(accountID, userID, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
