package card

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/ordering"
)

type Repository interface {
	CreateOrdered(card *Card) error
	GetByID(id uint64) (*Card, error)
	GetOrderedByList(listID uint64) ([]*Card, error)
	Update(card *Card) error
	Move(listID, cardID uint64, newOrder int64) error
	MoveAcrossLists(cardID, destListID uint64, newOrder int64) error
	Delete(id uint64) error

	GetOrCreateMember(cardID, userID uint64) (*CardMember, bool, error)
	DeleteMember(cardID, userID uint64) (bool, error)
	GetMembers(cardID uint64) ([]*CardMember, error)

	UpsertDates(cardID uint64, req DatesRequest) (*CardDate, error)
	DeleteDates(cardID uint64) (bool, error)
	UpsertLocation(cardID uint64, req LocationRequest) (*CardLocation, error)
	DeleteLocation(cardID uint64) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateOrdered appends the card to its list's scope inside one
// transaction, so concurrent creates cannot pick the same slot.
func (r *repository) CreateOrdered(card *Card) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		next, err := ordering.NextInScope(tx, ordering.ListCards(card.ListID))
		if err != nil {
			return err
		}
		card.Order = int64(next)
		return tx.Create(card).Error
	})
}

func (r *repository) GetByID(id uint64) (*Card, error) {
	var card Card
	err := r.db.
		Preload("Members.User").
		Preload("Dates").
		Preload("Location").
		First(&card, id).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *repository) GetOrderedByList(listID uint64) ([]*Card, error) {
	var cards []*Card
	err := r.db.
		Preload("Members.User").
		Preload("Dates").
		Preload("Location").
		Where("list_id = ?", listID).
		Order(`"order" ASC`).
		Find(&cards).Error
	return cards, err
}

func (r *repository) Update(card *Card) error {
	return r.db.Save(card).Error
}

// Move reorders the card within its current list. The whole
// shift-by-one pass runs in one transaction.
func (r *repository) Move(listID, cardID uint64, newOrder int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return ordering.Move(tx, ordering.ListCards(listID), cardID, float64(newOrder))
	})
}

// MoveAcrossLists re-parents the card and inserts it into the
// destination scope at newOrder. The vacated source scope keeps its gap.
// Everything happens in one transaction: re-parent, append after the
// destination's max, then shift into place.
func (r *repository) MoveAcrossLists(cardID, destListID uint64, newOrder int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var card Card
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&card, cardID).Error; err != nil {
			return err
		}

		destScope := ordering.ListCards(destListID)
		next, err := ordering.NextInScope(tx, destScope)
		if err != nil {
			return err
		}

		err = tx.Model(&Card{}).
			Where("id = ?", cardID).
			Updates(map[string]interface{}{"list_id": destListID, "order": int64(next)}).Error
		if err != nil {
			return fmt.Errorf("failed to re-parent card %d: %w", cardID, err)
		}

		return ordering.Move(tx, destScope, cardID, float64(newOrder))
	})
}

func (r *repository) Delete(id uint64) error {
	return r.db.Select(clause.Associations).Delete(&Card{ID: id}).Error
}

// GetOrCreateMember enforces the unique (card, user) pair: the second
// create returns the existing row.
func (r *repository) GetOrCreateMember(cardID, userID uint64) (*CardMember, bool, error) {
	member := CardMember{CardID: cardID, UserID: userID}
	res := r.db.
		Where("card_id = ? AND user_id = ?", cardID, userID).
		FirstOrCreate(&member)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if err := r.db.Preload("User").First(&member, member.ID).Error; err != nil {
		return nil, false, err
	}
	return &member, res.RowsAffected > 0, nil
}

func (r *repository) DeleteMember(cardID, userID uint64) (bool, error) {
	res := r.db.
		Where("card_id = ? AND user_id = ?", cardID, userID).
		Delete(&CardMember{})
	return res.RowsAffected > 0, res.Error
}

func (r *repository) GetMembers(cardID uint64) ([]*CardMember, error) {
	var members []*CardMember
	err := r.db.
		Preload("User").
		Where("card_id = ?", cardID).
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}

// UpsertDates keeps at most one date-pair per card.
func (r *repository) UpsertDates(cardID uint64, req DatesRequest) (*CardDate, error) {
	var dates CardDate
	err := r.db.Where("card_id = ?", cardID).FirstOrCreate(&dates, CardDate{CardID: cardID}).Error
	if err != nil {
		return nil, err
	}

	dates.StartDate = req.StartDate
	dates.DueDate = req.DueDate
	dates.IsComplete = req.IsComplete
	if err := r.db.Save(&dates).Error; err != nil {
		return nil, err
	}
	return &dates, nil
}

func (r *repository) DeleteDates(cardID uint64) (bool, error) {
	res := r.db.Where("card_id = ?", cardID).Delete(&CardDate{})
	return res.RowsAffected > 0, res.Error
}

func (r *repository) UpsertLocation(cardID uint64, req LocationRequest) (*CardLocation, error) {
	var loc CardLocation
	err := r.db.Where("card_id = ?", cardID).FirstOrCreate(&loc, CardLocation{CardID: cardID}).Error
	if err != nil {
		return nil, err
	}

	loc.Latitude = *req.Latitude
	loc.Longitude = *req.Longitude
	loc.PlaceName = req.PlaceName
	if err := r.db.Save(&loc).Error; err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *repository) DeleteLocation(cardID uint64) (bool, error) {
	res := r.db.Where("card_id = ?", cardID).Delete(&CardLocation{})
	return res.RowsAffected > 0, res.Error
}
