package board

import (
	"gorm.io/gorm"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/user"
)

type Repository interface {
	Create(board *Board) error
	GetByID(id uint64) (*Board, error)
	GetForUser(userID uint64) ([]*Board, error)
	Update(board *Board) error
	Delete(id uint64) error
	AddMember(boardID, userID uint64) error
	RemoveMember(boardID, userID uint64) error
	IsMember(boardID, userID uint64) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(board *Board) error {
	return r.db.Create(board).Error
}

func (r *repository) GetByID(id uint64) (*Board, error) {
	var board Board
	err := r.db.Preload("Members").First(&board, id).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *repository) GetForUser(userID uint64) ([]*Board, error) {
	var boards []*Board
	err := r.db.
		Preload("Members").
		Joins("LEFT JOIN board_members ON board_members.board_id = boards.id").
		Where("boards.owner_id = ? OR board_members.user_id = ?", userID, userID).
		Group("boards.id").
		Order("boards.created_at ASC").
		Find(&boards).Error
	return boards, err
}

func (r *repository) Update(board *Board) error {
	return r.db.Save(board).Error
}

func (r *repository) Delete(id uint64) error {
	return r.db.Delete(&Board{}, id).Error
}

func (r *repository) AddMember(boardID, userID uint64) error {
	return r.db.Model(&Board{ID: boardID}).
		Association("Members").
		Append(&user.User{ID: userID})
}

func (r *repository) RemoveMember(boardID, userID uint64) error {
	return r.db.Model(&Board{ID: boardID}).
		Association("Members").
		Delete(&user.User{ID: userID})
}

// IsMember answers the membership-guard question. The owner counts as a
// member even without a board_members row.
func (r *repository) IsMember(boardID, userID uint64) (bool, error) {
	var count int64
	err := r.db.Table("boards").
		Joins("LEFT JOIN board_members ON board_members.board_id = boards.id").
		Where("boards.id = ?", boardID).
		Where("boards.owner_id = ? OR board_members.user_id = ?", userID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
