package list

import (
	"gorm.io/gorm"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/ordering"
)

type Repository interface {
	CreateOrdered(list *List) error
	GetByID(id uint64) (*List, error)
	GetOrdered(userID uint64) ([]*List, error)
	Update(list *List) error
	Move(userID, listID uint64, newOrder float64) error
	Delete(id uint64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateOrdered appends the list to its user's scope: the next order
// value is computed and the row inserted in one transaction.
func (r *repository) CreateOrdered(list *List) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		next, err := ordering.NextInScope(tx, ordering.UserLists(list.UserID))
		if err != nil {
			return err
		}
		list.Order = next
		return tx.Create(list).Error
	})
}

func (r *repository) GetByID(id uint64) (*List, error) {
	var list List
	err := r.db.First(&list, id).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *repository) GetOrdered(userID uint64) ([]*List, error) {
	var lists []*List
	err := r.db.
		Where("user_id = ?", userID).
		Order(`"order" ASC`).
		Find(&lists).Error
	return lists, err
}

func (r *repository) Update(list *List) error {
	return r.db.Save(list).Error
}

// Move runs the shift-by-one reorder for the user's list scope as one
// transaction.
func (r *repository) Move(userID, listID uint64, newOrder float64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return ordering.Move(tx, ordering.UserLists(userID), listID, newOrder)
	})
}

func (r *repository) Delete(id uint64) error {
	return r.db.Delete(&List{}, id).Error
}
