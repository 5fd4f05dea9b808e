package attachment

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/apperrors"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/card"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/providers/minio"
)

type Service interface {
	Upload(ctx context.Context, userID, cardID uint64, fileHeader *multipart.FileHeader) (*Attachment, error)
	GetByCard(userID, cardID uint64) ([]*Attachment, error)
	Delete(ctx context.Context, userID, attachmentID uint64) error
}

type service struct {
	repo   Repository
	cards  card.Resolver
	minioP *minio.MinioProvider
	logger *zap.SugaredLogger
}

func NewService(repo Repository, cards card.Resolver, minioP *minio.MinioProvider, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		cards:  cards,
		minioP: minioP,
		logger: logger.Sugar(),
	}
}

func (s *service) Upload(ctx context.Context, userID, cardID uint64, fileHeader *multipart.FileHeader) (*Attachment, error) {
	if _, err := s.cards.GetWithAccess(userID, cardID); err != nil {
		return nil, err
	}
	// Bootstrap keeps running without MinIO; uploads fail cleanly then.
	if s.minioP == nil {
		return nil, fmt.Errorf("attachment storage is not configured: %w", apperrors.ErrUnavailable)
	}

	objectKey, url, err := s.minioP.Upload(ctx, fileHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}

	attachment := &Attachment{
		Title:     fileHeader.Filename,
		ObjectKey: objectKey,
		URL:       url,
		CardID:    cardID,
		UserID:    userID,
	}
	if err := s.repo.Create(attachment); err != nil {
		// The row failed, keep storage consistent with the database.
		if rmErr := s.minioP.Remove(ctx, objectKey); rmErr != nil {
			s.logger.Warnw("Failed to clean up orphaned object", "object_key", objectKey, "error", rmErr)
		}
		return nil, fmt.Errorf("failed to create attachment: %w", err)
	}

	s.logger.Infow("Attachment uploaded", "attachment_id", attachment.ID, "card_id", cardID)
	return attachment, nil
}

func (s *service) GetByCard(userID, cardID uint64) ([]*Attachment, error) {
	if _, err := s.cards.GetWithAccess(userID, cardID); err != nil {
		return nil, err
	}
	return s.repo.GetByCard(cardID)
}

func (s *service) Delete(ctx context.Context, userID, attachmentID uint64) error {
	attachment, err := s.repo.GetByID(attachmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("attachment %d: %w", attachmentID, apperrors.ErrNotFound)
		}
		return err
	}
	if _, err := s.cards.GetWithAccess(userID, attachment.CardID); err != nil {
		return err
	}
	if s.minioP == nil {
		return fmt.Errorf("attachment storage is not configured: %w", apperrors.ErrUnavailable)
	}

	if err := s.repo.Delete(attachmentID); err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	if err := s.minioP.Remove(ctx, attachment.ObjectKey); err != nil {
		s.logger.Warnw("Failed to remove stored object", "object_key", attachment.ObjectKey, "error", err)
	}
	return nil
}
