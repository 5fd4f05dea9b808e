package seeder

import (
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/board"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/card"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/list"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/user"
)

type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

func (s *Seeder) Seed() error {
	s.logger.Info("Running database seeders...")

	if err := s.seedDemoBoard(); err != nil {
		return err
	}

	s.logger.Info("Database seeders completed successfully")
	return nil
}

// seedDemoBoard gives a fresh install a demo account with a welcome
// board so the UI is not empty on first login.
func (s *Seeder) seedDemoBoard() error {
	var count int64
	s.db.Model(&user.User{}).Count(&count)
	if count > 0 {
		s.logger.Info("Users already exist, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	demo := user.User{
		Username:     "demo",
		Email:        "demo@example.com",
		PasswordHash: string(hash),
		FirstName:    "Demo",
	}
	if err := s.db.Create(&demo).Error; err != nil {
		return err
	}

	welcome := board.Board{
		Title:   "Welcome Board",
		OwnerID: demo.ID,
	}
	if err := s.db.Create(&welcome).Error; err != nil {
		return err
	}

	lists := []list.List{
		{Title: "To Do", Order: 0, BoardID: welcome.ID, UserID: demo.ID},
		{Title: "Doing", Order: 1, BoardID: welcome.ID, UserID: demo.ID},
		{Title: "Done", Order: 2, BoardID: welcome.ID, UserID: demo.ID},
	}
	if err := s.db.Create(&lists).Error; err != nil {
		return err
	}

	cards := []card.Card{
		{Title: "Drag cards between lists", ListID: lists[0].ID, UserID: demo.ID, Order: 0},
		{Title: "Reorder cards within a list", ListID: lists[0].ID, UserID: demo.ID, Order: 1},
		{Title: "Invite members to your board", ListID: lists[1].ID, UserID: demo.ID, Order: 0},
	}
	if err := s.db.Create(&cards).Error; err != nil {
		return err
	}

	s.logger.Info("Seeded demo board",
		zap.Uint64("user_id", demo.ID),
		zap.Uint64("board_id", welcome.ID),
	)
	return nil
}
