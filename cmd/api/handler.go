package api

import (
	"log"

	authDelivery "fizzy-backend/internal/auth/delivery"
	authRepo "fizzy-backend/internal/auth/repository"
	authUsecasePkg "fizzy-backend/internal/auth/usecase"
	boardDelivery "fizzy-backend/internal/board/delivery"
	boardRepoPkg "fizzy-backend/internal/board/repository"
	"fizzy-backend/internal/board/scheduler"
	boardUsecasePkg "fizzy-backend/internal/board/usecase"
	"fizzy-backend/internal/importer"
	"fizzy-backend/internal/notification"
	"fizzy-backend/pkg/config"
	"fizzy-backend/pkg/fcm"
	"fizzy-backend/pkg/sse"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler wires repositories, usecases and delivery handlers together and
// runs the HTTP server
type Handler struct {
	authUsecase         authUsecasePkg.AuthUsecase
	authHandler         *authDelivery.AuthHandler
	boardHandler        *boardDelivery.BoardHandler
	cardHandler         *boardDelivery.CardHandler
	notificationHandler *notification.Handler
	importHandler       *importer.Handler
	sseManager          *sse.Manager
	config              *config.Config

	notificationService *notification.Service
	autoPostpone        *scheduler.AutoPostponeScheduler
}

// accountSettingsAdapter exposes the account's auto-postpone override to the
// board usecases without coupling them to the auth store
type accountSettingsAdapter struct {
	accountRepo authRepo.AccountRepository
}

func (a *accountSettingsAdapter) AutoPostponeDaysFor(accountID string) (*int, error) {
	account, err := a.accountRepo.FindByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	return account.AutoPostponeDays, nil
}

// userDirectoryAdapter resolves display names for synthesized activity comments
type userDirectoryAdapter struct {
	userRepo authRepo.UserRepository
}

func (a *userDirectoryAdapter) DisplayName(userID string) (string, error) {
	user, err := a.userRepo.FindByID(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return user.Name, nil
}

// NewHandler builds the full dependency graph. fcmClient may be nil; push
// notifications are then disabled.
func NewHandler(cfg *config.Config, db *gorm.DB, sseManager *sse.Manager, fcmClient *fcm.Client) *Handler {
	// Repositories
	userRepo := authRepo.NewUserRepository(db)
	accountRepo := authRepo.NewAccountRepository(db)
	fcmTokenRepo := authRepo.NewFCMTokenRepository(db)
	boardRepo := boardRepoPkg.NewBoardRepository(db)
	columnRepo := boardRepoPkg.NewColumnRepository(db)
	cardRepo := boardRepoPkg.NewCardRepository(db)
	timeEntryRepo := boardRepoPkg.NewTimeEntryRepository(db)
	commentRepo := boardRepoPkg.NewCommentRepository(db)
	tagRepo := boardRepoPkg.NewTagRepository(db)
	notificationRepo := notification.NewRepository(db)
	importRepo := importer.NewRepository(db)

	accountSettings := &accountSettingsAdapter{accountRepo: accountRepo}
	userDirectory := &userDirectoryAdapter{userRepo: userRepo}

	// Usecases
	authUsecase := authUsecasePkg.NewAuthUsecase(userRepo, accountRepo, cfg)
	lifecycleUsecase := boardUsecasePkg.NewLifecycleUsecase(
		cardRepo, boardRepo, columnRepo, timeEntryRepo, commentRepo,
		accountSettings, userDirectory, cfg.AutoPostponeDays,
	)
	boardUsecase := boardUsecasePkg.NewBoardUsecase(
		boardRepo, columnRepo, timeEntryRepo, accountSettings, cfg.AutoPostponeDays,
	)
	tagUsecase := boardUsecasePkg.NewTagUsecase(tagRepo, cardRepo)

	// Notification fan-out consumes lifecycle events
	notificationService := notification.NewService(notificationRepo, sseManager, fcmTokenRepo, fcmClient)
	lifecycleUsecase.SetEventDispatcher(notificationService)

	clickupImporter := importer.NewClickupImporter(importRepo, boardRepo, boardUsecase, lifecycleUsecase, tagUsecase)

	autoPostpone := scheduler.NewAutoPostponeScheduler(lifecycleUsecase, boardRepo, cfg.AutoPostponeInterval)

	log.Println("[API] Dependency graph initialized")

	return &Handler{
		authUsecase:         authUsecase,
		authHandler:         authDelivery.NewAuthHandler(authUsecase, fcmTokenRepo),
		boardHandler:        boardDelivery.NewBoardHandler(boardUsecase, lifecycleUsecase),
		cardHandler:         boardDelivery.NewCardHandler(lifecycleUsecase, tagUsecase),
		notificationHandler: notification.NewHandler(notificationRepo),
		importHandler:       importer.NewHandler(clickupImporter),
		sseManager:          sseManager,
		config:              cfg,
		notificationService: notificationService,
		autoPostpone:        autoPostpone,
	}
}

// Start launches the background workers and the HTTP server
func (h *Handler) Start(addr string) error {
	h.notificationService.Start()
	h.autoPostpone.Start()

	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)

	return r.Run(addr)
}
