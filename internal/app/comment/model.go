package comment

import (
	"time"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/user"
)

type Comment struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	Body      string    `json:"body" gorm:"not null"`
	CardID    uint64    `json:"card_id" gorm:"not null;index"`
	UserID    uint64    `json:"user_id" gorm:"not null;index"`
	User      user.User `json:"user" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCommentRequest struct {
	Body string `json:"body" binding:"required,max=2000"`
}

type UpdateCommentRequest struct {
	Body string `json:"body" binding:"required,max=2000"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
