package comment

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/apperrors"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/card"
)

type fakeRepo struct {
	comments map[uint64]*Comment
	nextID   uint64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{comments: make(map[uint64]*Comment), nextID: 1}
}

func (f *fakeRepo) Create(comment *Comment) error {
	comment.ID = f.nextID
	f.nextID++
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeRepo) GetByID(id uint64) (*Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeRepo) GetByCard(cardID uint64) ([]*Comment, error) {
	var out []*Comment
	for _, c := range f.comments {
		if c.CardID == cardID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(comment *Comment) error {
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeRepo) Delete(id uint64) error {
	delete(f.comments, id)
	return nil
}

// Both user 1 and 2 share card 5's board.
type fakeCards struct{}

func (fakeCards) GetWithAccess(userID, cardID uint64) (*card.Card, error) {
	if userID != 1 && userID != 2 {
		return nil, fmt.Errorf("card %d: %w", cardID, apperrors.ErrPermissionDenied)
	}
	if cardID != 5 {
		return nil, fmt.Errorf("card %d: %w", cardID, apperrors.ErrNotFound)
	}
	return &card.Card{ID: cardID}, nil
}

func (fakeCards) BoardOf(listID uint64) uint64 { return 10 }

func setup(t *testing.T) Service {
	t.Helper()
	return NewService(newFakeRepo(), fakeCards{}, nil)
}

func TestCreateAndList(t *testing.T) {
	svc := setup(t)

	created, err := svc.Create(1, 5, CreateCommentRequest{Body: "looks good"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), created.UserID)

	comments, err := svc.GetByCard(2, 5)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "looks good", comments[0].Body)
}

// A board member can read everyone's comments but edit only their own.
func TestUpdateAuthorOnly(t *testing.T) {
	svc := setup(t)

	created, err := svc.Create(1, 5, CreateCommentRequest{Body: "first"})
	require.NoError(t, err)

	_, err = svc.Update(2, created.ID, UpdateCommentRequest{Body: "hijacked"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	updated, err := svc.Update(1, created.ID, UpdateCommentRequest{Body: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Body)
}

func TestDeleteAuthorOnly(t *testing.T) {
	svc := setup(t)

	created, err := svc.Create(1, 5, CreateCommentRequest{Body: "first"})
	require.NoError(t, err)

	err = svc.Delete(2, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, svc.Delete(1, created.ID))

	_, err = svc.Update(1, created.ID, UpdateCommentRequest{Body: "gone"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
