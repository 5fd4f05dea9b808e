package attachment

import "time"

type Attachment struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	ObjectKey string    `json:"-" gorm:"not null"`
	URL       string    `json:"url" gorm:"not null"`
	CardID    uint64    `json:"card_id" gorm:"not null;index"`
	UserID    uint64    `json:"user_id" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
