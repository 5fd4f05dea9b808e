package attachment

import (
	"context"
	"fmt"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/apperrors"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/card"
)

type fakeRepo struct {
	attachments map[uint64]*Attachment
	nextID      uint64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{attachments: make(map[uint64]*Attachment), nextID: 1}
}

func (f *fakeRepo) Create(attachment *Attachment) error {
	attachment.ID = f.nextID
	f.nextID++
	f.attachments[attachment.ID] = attachment
	return nil
}

func (f *fakeRepo) GetByID(id uint64) (*Attachment, error) {
	a, ok := f.attachments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (f *fakeRepo) GetByCard(cardID uint64) ([]*Attachment, error) {
	var out []*Attachment
	for _, a := range f.attachments {
		if a.CardID == cardID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(id uint64) error {
	delete(f.attachments, id)
	return nil
}

// User 1 may touch card 5, nobody else may touch anything.
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

// The app boots without MinIO when the provider fails to initialize;
// attachment operations must then return an error instead of panicking.
func TestUploadWithoutStorage(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeCards{}, nil, zap.NewNop())

	header := &multipart.FileHeader{Filename: "notes.txt", Size: 12}
	_, err := svc.Upload(context.Background(), 1, 5, header)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
}

func TestDeleteWithoutStorage(t *testing.T) {
	repo := newFakeRepo()
	require.NoError(t, repo.Create(&Attachment{Title: "notes.txt", ObjectKey: "attachments/x", CardID: 5, UserID: 1}))
	svc := NewService(repo, fakeCards{}, nil, zap.NewNop())

	err := svc.Delete(context.Background(), 1, 1)
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)

	// the row stays so the object is not orphaned when storage returns
	_, err = repo.GetByID(1)
	require.NoError(t, err)
}

func TestUploadAccessChecks(t *testing.T) {
	svc := NewService(newFakeRepo(), fakeCards{}, nil, zap.NewNop())
	header := &multipart.FileHeader{Filename: "notes.txt"}

	_, err := svc.Upload(context.Background(), 2, 5, header)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.Upload(context.Background(), 1, 9, header)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetByCardRequiresAccess(t *testing.T) {
	repo := newFakeRepo()
	require.NoError(t, repo.Create(&Attachment{Title: "a", CardID: 5, UserID: 1}))
	svc := NewService(repo, fakeCards{}, nil, zap.NewNop())

	attachments, err := svc.GetByCard(1, 5)
	require.NoError(t, err)
	assert.Len(t, attachments, 1)

	_, err = svc.GetByCard(2, 5)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}
