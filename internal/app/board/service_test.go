package board

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/apperrors"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/user"
)

type fakeRepo struct {
	boards  map[uint64]*Board
	members map[uint64][]uint64
	nextID  uint64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		boards:  make(map[uint64]*Board),
		members: make(map[uint64][]uint64),
		nextID:  1,
	}
}

func (f *fakeRepo) Create(board *Board) error {
	board.ID = f.nextID
	f.nextID++
	f.boards[board.ID] = board
	return nil
}

func (f *fakeRepo) GetByID(id uint64) (*Board, error) {
	b, ok := f.boards[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	cp.Members = nil
	for _, uid := range f.members[id] {
		cp.Members = append(cp.Members, user.User{ID: uid})
	}
	return &cp, nil
}

func (f *fakeRepo) GetForUser(userID uint64) ([]*Board, error) {
	var out []*Board
	for id, b := range f.boards {
		if b.OwnerID == userID {
			out = append(out, b)
			continue
		}
		for _, uid := range f.members[id] {
			if uid == userID {
				out = append(out, b)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(board *Board) error {
	f.boards[board.ID] = board
	return nil
}

func (f *fakeRepo) Delete(id uint64) error {
	delete(f.boards, id)
	return nil
}

func (f *fakeRepo) AddMember(boardID, userID uint64) error {
	f.members[boardID] = append(f.members[boardID], userID)
	return nil
}

func (f *fakeRepo) RemoveMember(boardID, userID uint64) error {
	for i, uid := range f.members[boardID] {
		if uid == userID {
			f.members[boardID] = append(f.members[boardID][:i], f.members[boardID][i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeRepo) IsMember(boardID, userID uint64) (bool, error) {
	b, ok := f.boards[boardID]
	if !ok {
		return false, nil
	}
	if b.OwnerID == userID {
		return true, nil
	}
	for _, uid := range f.members[boardID] {
		if uid == userID {
			return true, nil
		}
	}
	return false, nil
}

func setup(t *testing.T) (*fakeRepo, Service) {
	t.Helper()
	repo := newFakeRepo()
	return repo, NewService(repo, nil, zap.NewNop())
}

func TestOwnerIsImplicitMember(t *testing.T) {
	_, svc := setup(t)

	board, err := svc.Create(1, CreateBoardRequest{Title: "Work"})
	require.NoError(t, err)

	member, err := svc.IsMember(board.ID, 1)
	require.NoError(t, err)
	assert.True(t, member)

	member, err = svc.IsMember(board.ID, 2)
	require.NoError(t, err)
	assert.False(t, member)
}

func TestGetByIDDeniedForStranger(t *testing.T) {
	_, svc := setup(t)

	board, err := svc.Create(1, CreateBoardRequest{Title: "Work"})
	require.NoError(t, err)

	_, err = svc.GetByID(2, board.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestAddMemberGrantsAccess(t *testing.T) {
	_, svc := setup(t)

	board, err := svc.Create(1, CreateBoardRequest{Title: "Work"})
	require.NoError(t, err)

	_, err = svc.AddMember(1, board.ID, 2)
	require.NoError(t, err)

	got, err := svc.GetByID(2, board.ID)
	require.NoError(t, err)
	assert.Equal(t, board.ID, got.ID)
}

func TestAddMemberTwiceConflicts(t *testing.T) {
	_, svc := setup(t)

	board, err := svc.Create(1, CreateBoardRequest{Title: "Work"})
	require.NoError(t, err)

	_, err = svc.AddMember(1, board.ID, 2)
	require.NoError(t, err)

	_, err = svc.AddMember(1, board.ID, 2)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestDeleteOwnerOnly(t *testing.T) {
	_, svc := setup(t)

	board, err := svc.Create(1, CreateBoardRequest{Title: "Work"})
	require.NoError(t, err)
	_, err = svc.AddMember(1, board.ID, 2)
	require.NoError(t, err)

	err = svc.Delete(2, board.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	err = svc.Delete(1, board.ID)
	require.NoError(t, err)
}

func TestRemoveMemberSelfAllowed(t *testing.T) {
	_, svc := setup(t)

	board, err := svc.Create(1, CreateBoardRequest{Title: "Work"})
	require.NoError(t, err)
	_, err = svc.AddMember(1, board.ID, 2)
	require.NoError(t, err)

	// member 2 may leave on their own, but may not remove member 3
	_, err = svc.AddMember(1, board.ID, 3)
	require.NoError(t, err)
	err = svc.RemoveMember(2, board.ID, 3)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	err = svc.RemoveMember(2, board.ID, 2)
	require.NoError(t, err)

	member, err := svc.IsMember(board.ID, 2)
	require.NoError(t, err)
	assert.False(t, member)
}

func TestGetForUserIncludesMemberships(t *testing.T) {
	_, svc := setup(t)
	ctx := context.Background()

	own, err := svc.Create(1, CreateBoardRequest{Title: "Mine"})
	require.NoError(t, err)
	shared, err := svc.Create(2, CreateBoardRequest{Title: "Theirs"})
	require.NoError(t, err)
	_, err = svc.AddMember(2, shared.ID, 1)
	require.NoError(t, err)

	boards, err := svc.GetForUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, boards, 2)

	ids := []uint64{boards[0].ID, boards[1].ID}
	assert.Contains(t, ids, own.ID)
	assert.Contains(t, ids, shared.ID)
}
