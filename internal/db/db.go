package db

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/attachment"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/board"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/card"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/checklist"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/comment"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/label"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/list"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/user"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/config"
)

func Connect(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	dsn := cfg.PostgresDSN()
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	logger.Info("Connected to PostgreSQL",
		zap.String("host", cfg.DBHost),
		zap.String("database", cfg.DBName),
	)

	return db, nil
}

func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&user.User{},
		&board.Board{},
		&list.List{},
		&card.Card{},
		&card.CardMember{},
		&card.CardDate{},
		&card.CardLocation{},
		&label.Label{},
		&checklist.Checklist{},
		&checklist.ChecklistItem{},
		&comment.Comment{},
		&attachment.Attachment{},
	)
	if err != nil {
		return err
	}

	logger.Info("Database migrations completed")
	return nil
}
