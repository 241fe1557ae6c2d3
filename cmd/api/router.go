package api

import (
	"net/http"

	"fizzy-backend/internal/auth/delivery"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers all HTTP routes
func SetupRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// SSE endpoint
		api.GET("/events", delivery.AuthMiddleware(h.authUsecase), func(c *gin.Context) {
			userID := c.GetString("userID")
			h.sseManager.ServeHTTP(c, userID)
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.authHandler.Register)
			auth.POST("/join", h.authHandler.Join)
			auth.POST("/login", h.authHandler.Login)
			auth.POST("/refresh", h.authHandler.RefreshToken)
			auth.POST("/logout", h.authHandler.Logout)
			auth.GET("/me", delivery.AuthMiddleware(h.authUsecase), h.authHandler.Me)
		}

		// FCM routes (protected)
		fcm := api.Group("/fcm")
		fcm.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			fcm.POST("/register", h.authHandler.RegisterFCMToken)
			fcm.DELETE("/:token", h.authHandler.UnregisterFCMToken)
		}

		// Board routes (protected)
		boards := api.Group("/boards")
		boards.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			boards.GET("", h.boardHandler.GetBoards)
			boards.POST("", h.boardHandler.CreateBoard)
			boards.GET("/:id", h.boardHandler.GetBoard)
			boards.PUT("/:id", h.boardHandler.UpdateBoard)
			boards.DELETE("/:id", h.boardHandler.DeleteBoard)
			boards.GET("/:id/columns", h.boardHandler.GetColumns)
			boards.POST("/:id/columns", h.boardHandler.CreateColumn)
			boards.GET("/:id/cards", h.cardHandler.GetCards)
			boards.GET("/:id/hours", h.boardHandler.GetTrackedHours)
			boards.POST("/:id/auto-postpone", h.boardHandler.RunAutoPostpone)
		}

		// Column routes (protected)
		columns := api.Group("/columns")
		columns.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			columns.PUT("/:id", h.boardHandler.UpdateColumn)
			columns.DELETE("/:id", h.boardHandler.DeleteColumn)
		}

		// Card lifecycle routes (protected)
		cards := api.Group("/cards")
		cards.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			cards.POST("", h.cardHandler.CreateCard)
			cards.GET("/:id", h.cardHandler.GetCard)
			cards.DELETE("/:id", h.cardHandler.DeleteCard)
			cards.POST("/:id/publish", h.cardHandler.PublishCard)
			cards.POST("/:id/triage", h.cardHandler.Triage)
			cards.POST("/:id/send-back", h.cardHandler.SendBackToTriage)
			cards.POST("/:id/postpone", h.cardHandler.Postpone)
			cards.POST("/:id/close", h.cardHandler.Close)
			cards.POST("/:id/reopen", h.cardHandler.Reopen)
			cards.POST("/:id/time-entries", h.cardHandler.AddTimeEntry)
			cards.GET("/:id/time-entries", h.cardHandler.GetTimeEntries)
			cards.GET("/:id/comments", h.cardHandler.GetComments)
			cards.GET("/:id/tags", h.cardHandler.GetTags)
			cards.POST("/:id/tags/toggle", h.cardHandler.ToggleTag)
		}

		// Notification routes (protected)
		notifications := api.Group("/notifications")
		notifications.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			notifications.GET("", h.notificationHandler.List)
			notifications.POST("/:id/read", h.notificationHandler.MarkRead)
			notifications.POST("/read-all", h.notificationHandler.MarkAllRead)
		}

		// Import routes (protected)
		importGroup := api.Group("/import")
		importGroup.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			importGroup.POST("/clickup", h.importHandler.ImportClickupCSV)
		}
	}
}
