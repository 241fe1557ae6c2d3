package main

import (
	"log"

	api "fizzy-backend/cmd/api"
	authdomain "fizzy-backend/internal/auth/domain"
	boarddomain "fizzy-backend/internal/board/domain"
	"fizzy-backend/internal/importer"
	"fizzy-backend/internal/notification"
	"fizzy-backend/pkg/config"
	"fizzy-backend/pkg/database"
	"fizzy-backend/pkg/fcm"
	"fizzy-backend/pkg/sse"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.Account{},
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&authdomain.FCMToken{},
		&boarddomain.Board{},
		&boarddomain.Column{},
		&boarddomain.Card{},
		&boarddomain.TimeEntry{},
		&boarddomain.Comment{},
		&boarddomain.Tag{},
		&boarddomain.CardTag{},
		&notification.Notification{},
		&importer.ImportedClickupTask{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize SSE Manager
	sseManager := sse.NewManager()
	go sseManager.Run()

	// Initialize FCM Client (optional, notifications work without it)
	var fcmClient *fcm.Client
	if cfg.FirebaseCredentials != "" {
		fcmClient, err = fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client (push notifications disabled): %v", err)
			fcmClient = nil
		}
	} else {
		log.Println("[WARN] No Firebase credentials configured, FCM disabled")
	}

	// Initialize HTTP handler with the full dependency graph
	handler := api.NewHandler(cfg, db, sseManager, fcmClient)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
