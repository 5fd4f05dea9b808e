package label

import "time"

type Label struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Color     string    `json:"color" gorm:"not null;default:'#61bd4f'"`
	CardID    uint64    `json:"card_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateLabelRequest struct {
	Title string `json:"title" binding:"required,max=100"`
	Color string `json:"color"`
}

type UpdateLabelRequest struct {
	Title *string `json:"title" binding:"omitempty,max=100"`
	Color *string `json:"color"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
