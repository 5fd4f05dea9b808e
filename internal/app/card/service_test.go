package card

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/apperrors"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/list"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/utils"
)

type fakeRepo struct {
	cards       map[uint64]*Card
	nextID      uint64
	moveCalls   int
	crossCalls  int
	lastDestID  uint64
	lastOrder   int64
	members     map[uint64][]*CardMember
	memberNext  uint64
	updateCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		cards:      make(map[uint64]*Card),
		nextID:     1,
		members:    make(map[uint64][]*CardMember),
		memberNext: 1,
	}
}

func (f *fakeRepo) CreateOrdered(card *Card) error {
	var max int64 = -1
	for _, c := range f.cards {
		if c.ListID == card.ListID && c.Order > max {
			max = c.Order
		}
	}
	card.Order = max + 1
	card.ID = f.nextID
	f.nextID++
	f.cards[card.ID] = card
	return nil
}

func (f *fakeRepo) GetByID(id uint64) (*Card, error) {
	c, ok := f.cards[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeRepo) GetOrderedByList(listID uint64) ([]*Card, error) {
	var out []*Card
	for _, c := range f.cards {
		if c.ListID == listID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(card *Card) error {
	f.updateCalls++
	f.cards[card.ID] = card
	return nil
}

func (f *fakeRepo) Move(listID, cardID uint64, newOrder int64) error {
	f.moveCalls++
	f.cards[cardID].Order = newOrder
	return nil
}

func (f *fakeRepo) MoveAcrossLists(cardID, destListID uint64, newOrder int64) error {
	f.crossCalls++
	f.lastDestID = destListID
	f.lastOrder = newOrder
	f.cards[cardID].ListID = destListID
	f.cards[cardID].Order = newOrder
	return nil
}

func (f *fakeRepo) Delete(id uint64) error {
	delete(f.cards, id)
	return nil
}

func (f *fakeRepo) GetOrCreateMember(cardID, userID uint64) (*CardMember, bool, error) {
	for _, m := range f.members[cardID] {
		if m.UserID == userID {
			return m, false, nil
		}
	}
	m := &CardMember{ID: f.memberNext, CardID: cardID, UserID: userID}
	f.memberNext++
	f.members[cardID] = append(f.members[cardID], m)
	return m, true, nil
}

func (f *fakeRepo) DeleteMember(cardID, userID uint64) (bool, error) {
	for i, m := range f.members[cardID] {
		if m.UserID == userID {
			f.members[cardID] = append(f.members[cardID][:i], f.members[cardID][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) GetMembers(cardID uint64) ([]*CardMember, error) {
	return f.members[cardID], nil
}

func (f *fakeRepo) UpsertDates(cardID uint64, req DatesRequest) (*CardDate, error) {
	return &CardDate{CardID: cardID, StartDate: req.StartDate, DueDate: req.DueDate, IsComplete: req.IsComplete}, nil
}

func (f *fakeRepo) DeleteDates(cardID uint64) (bool, error) { return true, nil }

func (f *fakeRepo) UpsertLocation(cardID uint64, req LocationRequest) (*CardLocation, error) {
	return &CardLocation{CardID: cardID, Latitude: *req.Latitude, Longitude: *req.Longitude, PlaceName: req.PlaceName}, nil
}

func (f *fakeRepo) DeleteLocation(cardID uint64) (bool, error) { return true, nil }

type fakeLists struct {
	lists map[uint64]*list.List
}

func (f *fakeLists) GetByID(listID uint64) (*list.List, error) {
	l, ok := f.lists[listID]
	if !ok {
		return nil, errors.New("list not found")
	}
	return l, nil
}

type fakeGuard struct {
	members map[[2]uint64]bool
}

func (f *fakeGuard) IsMember(boardID, userID uint64) (bool, error) {
	return f.members[[2]uint64{boardID, userID}], nil
}

// Two boards: user 1 is a member of board 10 only, user 2 of both.
// List 100 and 101 live on board 10, list 200 on board 20.
func setup(t *testing.T) (*fakeRepo, Service) {
	t.Helper()
	repo := newFakeRepo()
	lists := &fakeLists{lists: map[uint64]*list.List{
		100: {ID: 100, BoardID: 10, UserID: 1},
		101: {ID: 101, BoardID: 10, UserID: 1},
		200: {ID: 200, BoardID: 20, UserID: 2},
	}}
	guard := &fakeGuard{members: map[[2]uint64]bool{
		{10, 1}: true,
		{10, 2}: true,
		{20, 2}: true,
	}}
	svc := NewService(repo, lists, guard, nil, nil, zap.NewNop())
	return repo, svc
}

func TestCreateAppendsToList(t *testing.T) {
	_, svc := setup(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, 1, CreateCardRequest{Title: "first", ListID: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(0), first.Order)

	second, err := svc.Create(ctx, 1, CreateCardRequest{Title: "second", ListID: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.Order)
}

func TestCreateDeniedForNonMember(t *testing.T) {
	_, svc := setup(t)

	_, err := svc.Create(context.Background(), 1, CreateCardRequest{Title: "x", ListID: 200})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestReorderWithinList(t *testing.T) {
	repo, svc := setup(t)
	ctx := context.Background()

	card, err := svc.Create(ctx, 1, CreateCardRequest{Title: "a", ListID: 100})
	require.NoError(t, err)

	order := int64(3)
	_, err = svc.Update(ctx, 1, card.ID, UpdateCardRequest{Order: &order})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.moveCalls)
	assert.Equal(t, 0, repo.crossCalls)
}

func TestCrossListMove(t *testing.T) {
	repo, svc := setup(t)
	ctx := context.Background()

	card, err := svc.Create(ctx, 2, CreateCardRequest{Title: "a", ListID: 100})
	require.NoError(t, err)

	order := int64(0)
	dest := uint64(200)
	moved, err := svc.Update(ctx, 2, card.ID, UpdateCardRequest{Order: &order, ListID: &dest})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.crossCalls)
	assert.Equal(t, uint64(200), repo.lastDestID)
	assert.Equal(t, int64(0), repo.lastOrder)
	assert.Equal(t, uint64(200), moved.ListID)
}

// A denied destination board must fail before any order value is
// written, on either side of the move.
func TestCrossListMoveDeniedBeforeWrite(t *testing.T) {
	repo, svc := setup(t)
	ctx := context.Background()

	card, err := svc.Create(ctx, 1, CreateCardRequest{Title: "a", ListID: 100})
	require.NoError(t, err)

	order := int64(0)
	dest := uint64(200)
	_, err = svc.Update(ctx, 1, card.ID, UpdateCardRequest{Order: &order, ListID: &dest})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	assert.Equal(t, 0, repo.moveCalls)
	assert.Equal(t, 0, repo.crossCalls)
	unmoved, _ := repo.GetByID(card.ID)
	assert.Equal(t, uint64(100), unmoved.ListID)
}

// Every published event must name its board, otherwise the websocket
// hub cannot keep it inside that board's subscriptions.
func TestEventsCarryBoardID(t *testing.T) {
	repo := newFakeRepo()
	lists := &fakeLists{lists: map[uint64]*list.List{
		100: {ID: 100, BoardID: 10, UserID: 1},
	}}
	guard := &fakeGuard{members: map[[2]uint64]bool{{10, 1}: true}}
	bus := utils.NewEventBus()
	svc := NewService(repo, lists, guard, nil, bus, zap.NewNop())

	events := make(map[string]uint64)
	for _, name := range []string{"card_created", "card_updated", "card_moved", "card_deleted"} {
		bus.Subscribe(name, func(e utils.Event) {
			data := e.Data.(map[string]interface{})
			events[e.Event] = data["board_id"].(uint64)
		})
	}

	ctx := context.Background()
	card, err := svc.Create(ctx, 1, CreateCardRequest{Title: "a", ListID: 100})
	require.NoError(t, err)

	title := "renamed"
	_, err = svc.Update(ctx, 1, card.ID, UpdateCardRequest{Title: &title})
	require.NoError(t, err)

	order := int64(2)
	_, err = svc.Update(ctx, 1, card.ID, UpdateCardRequest{Order: &order})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 1, card.ID))

	for _, name := range []string{"card_created", "card_updated", "card_moved", "card_deleted"} {
		assert.Equal(t, uint64(10), events[name], name)
	}
}

func TestAddMemberIdempotent(t *testing.T) {
	_, svc := setup(t)
	ctx := context.Background()

	card, err := svc.Create(ctx, 1, CreateCardRequest{Title: "a", ListID: 100})
	require.NoError(t, err)

	first, err := svc.AddMember(ctx, 1, card.ID, 2)
	require.NoError(t, err)

	second, err := svc.AddMember(ctx, 1, card.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	members, err := svc.GetMembers(1, card.ID)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

// A batch keeps going past bad ids: board members get assigned, the
// rest get a per-user message.
func TestBulkAssignPartialSuccess(t *testing.T) {
	_, svc := setup(t)
	ctx := context.Background()

	card, err := svc.Create(ctx, 1, CreateCardRequest{Title: "a", ListID: 100})
	require.NoError(t, err)

	// 2 is on board 10, 3 is a stranger
	result, err := svc.AddMembersBulk(ctx, 1, card.ID, []uint64{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []uint64{2}, result.AddedUsers)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "not a board member")

	members, err := svc.GetMembers(1, card.ID)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestBulkAssignReportsAlreadyAssigned(t *testing.T) {
	_, svc := setup(t)
	ctx := context.Background()

	card, err := svc.Create(ctx, 1, CreateCardRequest{Title: "a", ListID: 100})
	require.NoError(t, err)

	_, err = svc.AddMember(ctx, 1, card.ID, 2)
	require.NoError(t, err)

	result, err := svc.AddMembersBulk(ctx, 1, card.ID, []uint64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, result.AddedUsers)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "already assigned")
}

func TestBulkAssignRequiresCardAccess(t *testing.T) {
	_, svc := setup(t)
	ctx := context.Background()

	card, err := svc.Create(ctx, 2, CreateCardRequest{Title: "a", ListID: 200})
	require.NoError(t, err)

	// user 1 is not on board 20
	_, err = svc.AddMembersBulk(ctx, 1, card.ID, []uint64{2})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestAddMemberRequiresBoardMembership(t *testing.T) {
	_, svc := setup(t)
	ctx := context.Background()

	card, err := svc.Create(ctx, 1, CreateCardRequest{Title: "a", ListID: 100})
	require.NoError(t, err)

	// user 3 is not on board 10
	_, err = svc.AddMember(ctx, 1, card.ID, 3)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetUnknownCard(t *testing.T) {
	_, svc := setup(t)

	_, err := svc.Get(1, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRemoveMemberNotAssigned(t *testing.T) {
	_, svc := setup(t)
	ctx := context.Background()

	card, err := svc.Create(ctx, 1, CreateCardRequest{Title: "a", ListID: 100})
	require.NoError(t, err)

	err = svc.RemoveMember(ctx, 1, card.ID, 2)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
