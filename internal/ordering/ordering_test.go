package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/apperrors"
)

func seq(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{ID: uint64(i + 1), Order: float64(i)}
	}
	return items
}

// applyChanges mirrors what Move persists, so tests can assert on the
// resulting ascending sequence.
func applyChanges(items []Item, changes []Change) map[uint64]float64 {
	orders := make(map[uint64]float64, len(items))
	for _, it := range items {
		orders[it.ID] = it.Order
	}
	for _, ch := range changes {
		orders[ch.ID] = ch.Order
	}
	return orders
}

func TestNext(t *testing.T) {
	t.Run("empty scope starts at zero", func(t *testing.T) {
		assert.Equal(t, float64(0), Next(nil))
	})

	t.Run("appends after current max", func(t *testing.T) {
		assert.Equal(t, float64(5), Next(seq(5)))
	})

	t.Run("sequential creates are monotonic", func(t *testing.T) {
		var items []Item
		for i := 0; i < 5; i++ {
			order := Next(items)
			assert.Equal(t, float64(i), order)
			items = append(items, Item{ID: uint64(i + 1), Order: order})
		}
	})

	t.Run("tolerates gaps", func(t *testing.T) {
		items := []Item{{ID: 1, Order: 0}, {ID: 2, Order: 7}}
		assert.Equal(t, float64(8), Next(items))
	})
}

func TestPlanForwardMove(t *testing.T) {
	items := seq(5)

	changes, err := Plan(items, 1, 3)
	require.NoError(t, err)

	orders := applyChanges(items, changes)
	assert.Equal(t, float64(3), orders[1])
	assert.Equal(t, float64(0), orders[2])
	assert.Equal(t, float64(1), orders[3])
	assert.Equal(t, float64(2), orders[4])
	// sibling outside the span untouched
	assert.Equal(t, float64(4), orders[5])
}

func TestPlanBackwardMove(t *testing.T) {
	items := seq(5)

	changes, err := Plan(items, 5, 1)
	require.NoError(t, err)

	orders := applyChanges(items, changes)
	assert.Equal(t, float64(1), orders[5])
	assert.Equal(t, float64(2), orders[2])
	assert.Equal(t, float64(3), orders[3])
	assert.Equal(t, float64(4), orders[4])
	assert.Equal(t, float64(0), orders[1])
}

func TestPlanNoop(t *testing.T) {
	items := seq(5)

	changes, err := Plan(items, 3, 2)
	require.NoError(t, err)
	assert.Empty(t, changes)
}

// Scenario: A(0) B(1) C(2) D(3), move A to 2. Expect B=0, C=1, A=2, D
// unchanged at 3.
func TestPlanShiftScenario(t *testing.T) {
	items := []Item{
		{ID: 10, Order: 0}, // A
		{ID: 20, Order: 1}, // B
		{ID: 30, Order: 2}, // C
		{ID: 40, Order: 3}, // D
	}

	changes, err := Plan(items, 10, 2)
	require.NoError(t, err)

	orders := applyChanges(items, changes)
	assert.Equal(t, float64(0), orders[20])
	assert.Equal(t, float64(1), orders[30])
	assert.Equal(t, float64(2), orders[10])
	assert.Equal(t, float64(3), orders[40])
}

func TestPlanUnknownItem(t *testing.T) {
	_, err := Plan(seq(3), 99, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPlanInvalidTarget(t *testing.T) {
	for _, target := range []float64{-1, -0.5} {
		_, err := Plan(seq(3), 1, target)
		assert.ErrorIs(t, err, apperrors.ErrInvalidOrder)
	}
}

func TestPlanOnlyTouchesSpan(t *testing.T) {
	items := seq(10)

	changes, err := Plan(items, 3, 6)
	require.NoError(t, err)

	touched := make(map[uint64]bool)
	for _, ch := range changes {
		touched[ch.ID] = true
	}
	// mover plus siblings at orders 3..6 exclusive of the mover itself
	assert.True(t, touched[3])
	assert.True(t, touched[4])
	assert.True(t, touched[5])
	assert.True(t, touched[6])
	assert.True(t, touched[7])
	assert.False(t, touched[1])
	assert.False(t, touched[2])
	assert.False(t, touched[8])
}

func TestScopeConstructors(t *testing.T) {
	assert.Equal(t, "lists", UserLists(1).table)
	assert.Equal(t, "cards", ListCards(1).table)
	assert.Equal(t, "checklist_items", ChecklistItems(1).table)
}
