package card

import (
	"time"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/list"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/user"
)

type Card struct {
	ID              uint64        `json:"id" gorm:"primaryKey"`
	Title           string        `json:"title" gorm:"not null"`
	Description     *string       `json:"description,omitempty"`
	ListID          uint64        `json:"list_id" gorm:"not null;index"`
	List            *list.List    `json:"-" gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`
	UserID          uint64        `json:"user_id" gorm:"not null;index"`
	Order           int64         `json:"order" gorm:"column:order;not null;default:0"`
	DueDate         *time.Time    `json:"due_date,omitempty"`
	DueDateComplete bool          `json:"due_date_complete"`
	Members         []*CardMember `json:"members" gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
	Dates           *CardDate     `json:"dates,omitempty" gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
	Location        *CardLocation `json:"location,omitempty" gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// CardMember assigns a user to a card. The (card, user) pair is unique;
// assigning twice is a no-op.
type CardMember struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	CardID    uint64    `json:"card_id" gorm:"not null;uniqueIndex:idx_card_members_card_user"`
	UserID    uint64    `json:"-" gorm:"not null;uniqueIndex:idx_card_members_card_user"`
	User      user.User `json:"user" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"created_at"`
}

type CardDate struct {
	ID         uint64     `json:"id" gorm:"primaryKey"`
	CardID     uint64     `json:"card_id" gorm:"not null;uniqueIndex"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	IsComplete bool       `json:"is_complete"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type CardLocation struct {
	ID        uint64  `json:"id" gorm:"primaryKey"`
	CardID    uint64  `json:"card_id" gorm:"not null;uniqueIndex"`
	Latitude  float64 `json:"latitude" gorm:"not null"`
	Longitude float64 `json:"longitude" gorm:"not null"`
	PlaceName string  `json:"place_name" gorm:"not null"`
}

type CreateCardRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	ListID      uint64  `json:"list_id" binding:"required"`
	Description *string `json:"description"`
}

// UpdateCardRequest also drives moves: Order alone reorders within the
// current list, Order plus a different ListID is a cross-list move.
type UpdateCardRequest struct {
	Title           *string    `json:"title" binding:"omitempty,max=200"`
	Description     *string    `json:"description"`
	DueDate         *time.Time `json:"due_date"`
	DueDateComplete *bool      `json:"due_date_complete"`
	Order           *int64     `json:"order"`
	ListID          *uint64    `json:"list_id"`
}

type MemberRequest struct {
	UserID uint64 `json:"user_id" binding:"required"`
}

type BulkMemberRequest struct {
	UserIDs []uint64 `json:"user_ids" binding:"required,min=1"`
}

// BulkMemberResponse reports each user separately: ids that got
// assigned plus a message per id that could not be.
type BulkMemberResponse struct {
	AddedUsers []uint64 `json:"added_users"`
	Errors     []string `json:"errors"`
}

type DatesRequest struct {
	StartDate  *time.Time `json:"start_date"`
	DueDate    *time.Time `json:"due_date"`
	IsComplete bool       `json:"is_complete"`
}

type LocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	PlaceName string   `json:"place_name" binding:"required,max=200"`
}

type CardListResponse struct {
	Cards []*Card `json:"cards"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
