package checklist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/apperrors"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/card"
)

type fakeRepo struct {
	checklists map[uint64]*Checklist
	items      map[uint64]*ChecklistItem
	nextID     uint64
	moveCalls  int
	lastOrder  int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		checklists: make(map[uint64]*Checklist),
		items:      make(map[uint64]*ChecklistItem),
		nextID:     1,
	}
}

func (f *fakeRepo) Create(checklist *Checklist) error {
	checklist.ID = f.nextID
	f.nextID++
	f.checklists[checklist.ID] = checklist
	return nil
}

func (f *fakeRepo) GetByID(id uint64) (*Checklist, error) {
	cl, ok := f.checklists[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cl, nil
}

func (f *fakeRepo) GetByCard(cardID uint64) ([]*Checklist, error) {
	var out []*Checklist
	for _, cl := range f.checklists {
		if cl.CardID == cardID {
			out = append(out, cl)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(id uint64) error {
	delete(f.checklists, id)
	for itemID, item := range f.items {
		if item.ChecklistID == id {
			delete(f.items, itemID)
		}
	}
	return nil
}

func (f *fakeRepo) CreateItemOrdered(item *ChecklistItem) error {
	var max int64 = -1
	for _, it := range f.items {
		if it.ChecklistID == item.ChecklistID && it.Order > max {
			max = it.Order
		}
	}
	item.Order = max + 1
	item.ID = f.nextID
	f.nextID++
	f.items[item.ID] = item
	return nil
}

func (f *fakeRepo) GetItemByID(id uint64) (*ChecklistItem, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *it
	return &cp, nil
}

func (f *fakeRepo) UpdateItem(item *ChecklistItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeRepo) MoveItem(checklistID, itemID uint64, newOrder int64) error {
	f.moveCalls++
	f.lastOrder = newOrder
	f.items[itemID].Order = newOrder
	return nil
}

func (f *fakeRepo) DeleteItem(id uint64) error {
	delete(f.items, id)
	return nil
}

// fakeCards grants user 1 access to card 5 and denies everyone else.
type fakeCards struct{}

func (fakeCards) GetWithAccess(userID, cardID uint64) (*card.Card, error) {
	if userID != 1 {
		return nil, fmt.Errorf("card %d: %w", cardID, apperrors.ErrPermissionDenied)
	}
	if cardID != 5 {
		return nil, fmt.Errorf("card %d: %w", cardID, apperrors.ErrNotFound)
	}
	return &card.Card{ID: cardID}, nil
}

func (fakeCards) BoardOf(listID uint64) uint64 { return 10 }

func setup(t *testing.T) (*fakeRepo, Service) {
	t.Helper()
	repo := newFakeRepo()
	return repo, NewService(repo, fakeCards{}, zap.NewNop())
}

func TestItemsAppendInOrder(t *testing.T) {
	_, svc := setup(t)

	cl, err := svc.Create(1, 5, CreateChecklistRequest{Title: "Launch"})
	require.NoError(t, err)

	first, err := svc.AddItem(1, cl.ID, CreateItemRequest{Title: "write docs"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), first.Order)

	second, err := svc.AddItem(1, cl.ID, CreateItemRequest{Title: "ship it"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.Order)
}

func TestItemReorder(t *testing.T) {
	repo, svc := setup(t)

	cl, err := svc.Create(1, 5, CreateChecklistRequest{Title: "Launch"})
	require.NoError(t, err)
	item, err := svc.AddItem(1, cl.ID, CreateItemRequest{Title: "a"})
	require.NoError(t, err)

	order := int64(3)
	moved, err := svc.UpdateItem(1, item.ID, UpdateItemRequest{Order: &order})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.moveCalls)
	assert.Equal(t, int64(3), moved.Order)
}

func TestToggleFlips(t *testing.T) {
	_, svc := setup(t)

	cl, err := svc.Create(1, 5, CreateChecklistRequest{Title: "Launch"})
	require.NoError(t, err)
	item, err := svc.AddItem(1, cl.ID, CreateItemRequest{Title: "a"})
	require.NoError(t, err)
	require.False(t, item.Done)

	toggled, err := svc.ToggleItem(1, item.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Done)

	toggled, err = svc.ToggleItem(1, item.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Done)
}

func TestAccessDeniedThroughCard(t *testing.T) {
	_, svc := setup(t)

	cl, err := svc.Create(1, 5, CreateChecklistRequest{Title: "Launch"})
	require.NoError(t, err)

	_, err = svc.AddItem(2, cl.ID, CreateItemRequest{Title: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	err = svc.Delete(2, cl.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestDeleteCascadesItems(t *testing.T) {
	repo, svc := setup(t)

	cl, err := svc.Create(1, 5, CreateChecklistRequest{Title: "Launch"})
	require.NoError(t, err)
	item, err := svc.AddItem(1, cl.ID, CreateItemRequest{Title: "a"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(1, cl.ID))
	_, err = repo.GetItemByID(item.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
