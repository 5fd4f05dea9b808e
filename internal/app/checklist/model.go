package checklist

import "time"

type Checklist struct {
	ID        uint64           `json:"id" gorm:"primaryKey"`
	Title     string           `json:"title" gorm:"not null"`
	CardID    uint64           `json:"card_id" gorm:"not null;index"`
	Items     []*ChecklistItem `json:"items" gorm:"foreignKey:ChecklistID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type ChecklistItem struct {
	ID          uint64    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Done        bool      `json:"done" gorm:"not null;default:false"`
	Order       int64     `json:"order" gorm:"column:order;not null;default:0"`
	ChecklistID uint64    `json:"checklist_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateChecklistRequest struct {
	Title string `json:"title" binding:"required,max=200"`
}

type CreateItemRequest struct {
	Title string `json:"title" binding:"required,max=200"`
}

type UpdateItemRequest struct {
	Title *string `json:"title" binding:"omitempty,max=200"`
	Done  *bool   `json:"done"`
	Order *int64  `json:"order"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
