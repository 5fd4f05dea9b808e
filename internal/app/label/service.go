package label

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/apperrors"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/card"
)

type Service interface {
	Create(userID, cardID uint64, req CreateLabelRequest) (*Label, error)
	GetByCard(userID, cardID uint64) ([]*Label, error)
	Update(userID, labelID uint64, req UpdateLabelRequest) (*Label, error)
	Delete(userID, labelID uint64) error
	DeleteFromCard(userID, cardID, labelID uint64) error
}

type service struct {
	repo  Repository
	cards card.Resolver
}

func NewService(repo Repository, cards card.Resolver) Service {
	return &service{repo: repo, cards: cards}
}

func (s *service) Create(userID, cardID uint64, req CreateLabelRequest) (*Label, error) {
	if _, err := s.cards.GetWithAccess(userID, cardID); err != nil {
		return nil, err
	}

	label := &Label{
		Title:  req.Title,
		CardID: cardID,
	}
	if req.Color != "" {
		label.Color = req.Color
	}
	if err := s.repo.Create(label); err != nil {
		return nil, fmt.Errorf("failed to create label: %w", err)
	}
	return label, nil
}

func (s *service) GetByCard(userID, cardID uint64) ([]*Label, error) {
	if _, err := s.cards.GetWithAccess(userID, cardID); err != nil {
		return nil, err
	}
	return s.repo.GetByCard(cardID)
}

func (s *service) Update(userID, labelID uint64, req UpdateLabelRequest) (*Label, error) {
	label, err := s.access(userID, labelID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		label.Title = *req.Title
	}
	if req.Color != nil {
		label.Color = *req.Color
	}
	if err := s.repo.Update(label); err != nil {
		return nil, fmt.Errorf("failed to update label: %w", err)
	}
	return label, nil
}

func (s *service) Delete(userID, labelID uint64) error {
	if _, err := s.access(userID, labelID); err != nil {
		return err
	}
	return s.repo.Delete(labelID)
}

func (s *service) DeleteFromCard(userID, cardID, labelID uint64) error {
	if _, err := s.cards.GetWithAccess(userID, cardID); err != nil {
		return err
	}

	removed, err := s.repo.DeleteByCard(cardID, labelID)
	if err != nil {
		return fmt.Errorf("failed to delete label: %w", err)
	}
	if !removed {
		return fmt.Errorf("label %d on card %d: %w", labelID, cardID, apperrors.ErrNotFound)
	}
	return nil
}

func (s *service) access(userID, labelID uint64) (*Label, error) {
	label, err := s.repo.GetByID(labelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("label %d: %w", labelID, apperrors.ErrNotFound)
		}
		return nil, err
	}
	if _, err := s.cards.GetWithAccess(userID, label.CardID); err != nil {
		return nil, err
	}
	return label, nil
}
