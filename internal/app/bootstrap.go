package app

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/attachment"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/board"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/card"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/checklist"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/comment"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/health"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/label"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/list"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/user"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/config"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/db"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/db/seeder"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/gateways/websocket"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/providers/minio"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/providers/redis"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/router"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/utils"
)

type Application struct {
	Router *router.Router
	DB     *gorm.DB
}

func Bootstrap(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, logger); err != nil {
		return nil, err
	}

	seed := seeder.NewSeeder(dbConn, logger)
	if err := seed.Seed(); err != nil {
		logger.Warn("Failed to run seeders", zap.Error(err))
	}

	redisProvider := redis.NewRedisProvider(cfg.RedisURL, logger, cfg.RedisTTL)
	minioProvider, err := minio.NewMinioProvider(cfg, logger)
	if err != nil {
		logger.Warn("Failed to initialize MinIO provider", zap.Error(err))
		minioProvider = nil
	}
	eventBus := utils.NewEventBus()
	tokens := user.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	userRepo := user.NewRepository(dbConn)
	boardRepo := board.NewRepository(dbConn)
	listRepo := list.NewRepository(dbConn)
	cardRepo := card.NewRepository(dbConn)
	labelRepo := label.NewRepository(dbConn)
	checklistRepo := checklist.NewRepository(dbConn)
	commentRepo := comment.NewRepository(dbConn)
	attachmentRepo := attachment.NewRepository(dbConn)

	userService := user.NewService(userRepo, tokens, logger)
	boardService := board.NewService(boardRepo, redisProvider, logger)
	listService := list.NewService(listRepo, boardService, redisProvider, eventBus, logger)
	cardService := card.NewService(cardRepo, listService, boardService, redisProvider, eventBus, logger)
	labelService := label.NewService(labelRepo, cardService)
	checklistService := checklist.NewService(checklistRepo, cardService, logger)
	commentService := comment.NewService(commentRepo, cardService, eventBus)
	attachmentService := attachment.NewService(attachmentRepo, cardService, minioProvider, logger)

	hub := websocket.NewHub(logger, boardService, eventBus)
	go hub.Run()

	healthHandler := health.NewHandler(&utils.HealthChecker{
		DB:    dbConn,
		Redis: redisProvider.Client,
	})
	userHandler := user.NewHandler(userService, logger)
	boardHandler := board.NewHandler(boardService)
	listHandler := list.NewHandler(listService)
	cardHandler := card.NewHandler(cardService, logger)
	labelHandler := label.NewHandler(labelService)
	checklistHandler := checklist.NewHandler(checklistService)
	commentHandler := comment.NewHandler(commentService)
	attachmentHandler := attachment.NewHandler(attachmentService)

	r := router.NewRouter(logger, tokens)

	r.RegisterHealthRoutes(healthHandler)
	r.RegisterAuthRoutes(userHandler)
	r.RegisterUserRoutes(userHandler)
	r.RegisterBoardRoutes(boardHandler)
	r.RegisterListRoutes(listHandler)
	r.RegisterCardRoutes(cardHandler)
	r.RegisterLabelRoutes(labelHandler)
	r.RegisterChecklistRoutes(checklistHandler)
	r.RegisterCommentRoutes(commentHandler)
	r.RegisterAttachmentRoutes(attachmentHandler)
	r.RegisterWebSocketRoutes(hub)

	return &Application{
		Router: r,
		DB:     dbConn,
	}, nil
}
