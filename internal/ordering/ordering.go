// Package ordering maintains the user-visible sort order of sibling rows
// within a scope. Moves are shift-by-one: only siblings strictly between
// the old and the new position are renumbered, everything else keeps its
// order value. Gaps and ties left behind by deletions or cross-list moves
// are tolerated; ascending iteration over "order" stays correct.
package ordering

import (
	"fmt"
	"math"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/apperrors"
)

// Item is a sibling row projected down to what order maintenance needs.
type Item struct {
	ID    uint64
	Order float64
}

// Change is the new order value to persist for one row.
type Change struct {
	ID    uint64
	Order float64
}

// Next returns the order value for an item appended to the scope:
// 0 for an empty scope, max+1 otherwise.
func Next(items []Item) float64 {
	if len(items) == 0 {
		return 0
	}
	max := items[0].Order
	for _, it := range items[1:] {
		if it.Order > max {
			max = it.Order
		}
	}
	return max + 1
}

// Plan computes the shift-by-one renumbering that moves movingID to
// newOrder. Moving toward the end decrements every sibling in
// (old, new]; moving toward the start increments every sibling in
// [new, old). The moving item itself always ends up at exactly newOrder.
// A move to the item's current order changes nothing.
func Plan(items []Item, movingID uint64, newOrder float64) ([]Change, error) {
	if math.IsNaN(newOrder) || math.IsInf(newOrder, 0) || newOrder < 0 {
		return nil, fmt.Errorf("target order %v: %w", newOrder, apperrors.ErrInvalidOrder)
	}

	var moving *Item
	for i := range items {
		if items[i].ID == movingID {
			moving = &items[i]
			break
		}
	}
	if moving == nil {
		return nil, fmt.Errorf("item %d not in scope: %w", movingID, apperrors.ErrNotFound)
	}

	oldOrder := moving.Order
	if oldOrder == newOrder {
		return nil, nil
	}

	var changes []Change
	for _, it := range items {
		if it.ID == movingID {
			continue
		}
		switch {
		case oldOrder < newOrder && it.Order > oldOrder && it.Order <= newOrder:
			changes = append(changes, Change{ID: it.ID, Order: it.Order - 1})
		case oldOrder > newOrder && it.Order >= newOrder && it.Order < oldOrder:
			changes = append(changes, Change{ID: it.ID, Order: it.Order + 1})
		}
	}
	changes = append(changes, Change{ID: movingID, Order: newOrder})

	return changes, nil
}

// NextInScope reads the append position for a scope. Run it inside the
// same transaction as the insert so two concurrent creates cannot pick
// the same slot.
func NextInScope(tx *gorm.DB, s Scope) (float64, error) {
	var next float64
	err := s.apply(tx).
		Select(`COALESCE(MAX("order") + 1, 0)`).
		Scan(&next).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute next order: %w", err)
	}
	return next, nil
}

// Move applies a shift-by-one reorder durably. The scope's rows are read
// under FOR UPDATE so concurrent moves on the same scope serialize at
// the database; tx must be an open transaction and the whole reorder
// commits or rolls back as one unit.
func Move(tx *gorm.DB, s Scope, movingID uint64, newOrder float64) error {
	var items []Item
	err := s.apply(tx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select(`id, "order"`).
		Order(`"order" ASC`).
		Scan(&items).Error
	if err != nil {
		return fmt.Errorf("failed to load scope: %w", err)
	}

	changes, err := Plan(items, movingID, newOrder)
	if err != nil {
		return err
	}

	for _, ch := range changes {
		err := tx.Table(s.table).
			Where("id = ?", ch.ID).
			UpdateColumn("order", ch.Order).Error
		if err != nil {
			return fmt.Errorf("failed to update order of %d: %w", ch.ID, err)
		}
	}

	return nil
}
