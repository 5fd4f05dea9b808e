package checklist

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/ordering"
)

type Repository interface {
	Create(checklist *Checklist) error
	GetByID(id uint64) (*Checklist, error)
	GetByCard(cardID uint64) ([]*Checklist, error)
	Delete(id uint64) error

	CreateItemOrdered(item *ChecklistItem) error
	GetItemByID(id uint64) (*ChecklistItem, error)
	UpdateItem(item *ChecklistItem) error
	MoveItem(checklistID, itemID uint64, newOrder int64) error
	DeleteItem(id uint64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(checklist *Checklist) error {
	return r.db.Create(checklist).Error
}

func (r *repository) GetByID(id uint64) (*Checklist, error) {
	var checklist Checklist
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" ASC`)
		}).
		First(&checklist, id).Error
	if err != nil {
		return nil, err
	}
	return &checklist, nil
}

func (r *repository) GetByCard(cardID uint64) ([]*Checklist, error) {
	var checklists []*Checklist
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" ASC`)
		}).
		Where("card_id = ?", cardID).
		Order("created_at ASC").
		Find(&checklists).Error
	return checklists, err
}

// Delete removes the checklist and every item under it.
func (r *repository) Delete(id uint64) error {
	return r.db.Select(clause.Associations).Delete(&Checklist{ID: id}).Error
}

// CreateItemOrdered appends the item to its checklist's scope inside one
// transaction, so concurrent creates cannot pick the same slot.
func (r *repository) CreateItemOrdered(item *ChecklistItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		next, err := ordering.NextInScope(tx, ordering.ChecklistItems(item.ChecklistID))
		if err != nil {
			return err
		}
		item.Order = int64(next)
		return tx.Create(item).Error
	})
}

func (r *repository) GetItemByID(id uint64) (*ChecklistItem, error) {
	var item ChecklistItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) UpdateItem(item *ChecklistItem) error {
	return r.db.Save(item).Error
}

func (r *repository) MoveItem(checklistID, itemID uint64, newOrder int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return ordering.Move(tx, ordering.ChecklistItems(checklistID), itemID, float64(newOrder))
	})
}

func (r *repository) DeleteItem(id uint64) error {
	return r.db.Delete(&ChecklistItem{}, id).Error
}
