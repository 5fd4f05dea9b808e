package board

import (
	"time"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/user"
)

type Board struct {
	ID         uint64      `json:"id" gorm:"primaryKey"`
	Title      string      `json:"title" gorm:"not null"`
	Background string      `json:"background" gorm:"not null;default:'#0079bf'"`
	OwnerID    uint64      `json:"owner_id" gorm:"not null;index"`
	Members    []user.User `json:"members" gorm:"many2many:board_members;"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type CreateBoardRequest struct {
	Title      string `json:"title" binding:"required,max=200"`
	Background string `json:"background"`
}

type UpdateBoardRequest struct {
	Title      *string `json:"title" binding:"omitempty,max=200"`
	Background *string `json:"background"`
}

type AddMemberRequest struct {
	UserID uint64 `json:"user_id" binding:"required"`
}

type BoardListResponse struct {
	Boards []*Board `json:"boards"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
