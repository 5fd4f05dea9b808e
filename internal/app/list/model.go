package list

import "time"

// List is a column of cards. Authorization follows the owning board;
// the ordering scope is the creating user, so "my lists" renders the
// same sequence across boards.
type List struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Order     float64   `json:"order" gorm:"column:order;not null;default:0"`
	BoardID   uint64    `json:"board_id" gorm:"not null;index"`
	UserID    uint64    `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateListRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	BoardID uint64 `json:"board_id" binding:"required"`
}

type UpdateListRequest struct {
	Title *string  `json:"title" binding:"omitempty,max=200"`
	Order *float64 `json:"order"`
}

type ListResponse struct {
	Lists []*List `json:"lists"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
