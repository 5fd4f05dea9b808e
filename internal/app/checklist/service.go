package checklist

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/apperrors"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/card"
)

type Service interface {
	Create(userID, cardID uint64, req CreateChecklistRequest) (*Checklist, error)
	GetByCard(userID, cardID uint64) ([]*Checklist, error)
	Delete(userID, checklistID uint64) error

	AddItem(userID, checklistID uint64, req CreateItemRequest) (*ChecklistItem, error)
	UpdateItem(userID, itemID uint64, req UpdateItemRequest) (*ChecklistItem, error)
	ToggleItem(userID, itemID uint64) (*ChecklistItem, error)
	DeleteItem(userID, itemID uint64) error
}

type service struct {
	repo   Repository
	cards  card.Resolver
	logger *zap.SugaredLogger
}

func NewService(repo Repository, cards card.Resolver, logger *zap.Logger) Service {
	return &service{repo: repo, cards: cards, logger: logger.Sugar()}
}

func (s *service) Create(userID, cardID uint64, req CreateChecklistRequest) (*Checklist, error) {
	if _, err := s.cards.GetWithAccess(userID, cardID); err != nil {
		return nil, err
	}

	checklist := &Checklist{
		Title:  req.Title,
		CardID: cardID,
	}
	if err := s.repo.Create(checklist); err != nil {
		return nil, fmt.Errorf("failed to create checklist: %w", err)
	}
	return checklist, nil
}

func (s *service) GetByCard(userID, cardID uint64) ([]*Checklist, error) {
	if _, err := s.cards.GetWithAccess(userID, cardID); err != nil {
		return nil, err
	}
	return s.repo.GetByCard(cardID)
}

func (s *service) Delete(userID, checklistID uint64) error {
	if _, err := s.access(userID, checklistID); err != nil {
		return err
	}
	if err := s.repo.Delete(checklistID); err != nil {
		return fmt.Errorf("failed to delete checklist: %w", err)
	}
	return nil
}

func (s *service) AddItem(userID, checklistID uint64, req CreateItemRequest) (*ChecklistItem, error) {
	if _, err := s.access(userID, checklistID); err != nil {
		return nil, err
	}

	item := &ChecklistItem{
		Title:       req.Title,
		ChecklistID: checklistID,
	}
	if err := s.repo.CreateItemOrdered(item); err != nil {
		return nil, fmt.Errorf("failed to create checklist item: %w", err)
	}
	s.logger.Infow("Checklist item created", "item_id", item.ID, "checklist_id", checklistID, "order", item.Order)
	return item, nil
}

func (s *service) UpdateItem(userID, itemID uint64, req UpdateItemRequest) (*ChecklistItem, error) {
	item, err := s.itemAccess(userID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Order != nil {
		if err := s.repo.MoveItem(item.ChecklistID, item.ID, *req.Order); err != nil {
			return nil, err
		}
		return s.repo.GetItemByID(itemID)
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Done != nil {
		item.Done = *req.Done
	}
	if err := s.repo.UpdateItem(item); err != nil {
		return nil, fmt.Errorf("failed to update checklist item: %w", err)
	}
	return item, nil
}

func (s *service) ToggleItem(userID, itemID uint64) (*ChecklistItem, error) {
	item, err := s.itemAccess(userID, itemID)
	if err != nil {
		return nil, err
	}

	item.Done = !item.Done
	if err := s.repo.UpdateItem(item); err != nil {
		return nil, fmt.Errorf("failed to toggle checklist item: %w", err)
	}
	return item, nil
}

func (s *service) DeleteItem(userID, itemID uint64) error {
	if _, err := s.itemAccess(userID, itemID); err != nil {
		return err
	}
	return s.repo.DeleteItem(itemID)
}

func (s *service) access(userID, checklistID uint64) (*Checklist, error) {
	checklist, err := s.repo.GetByID(checklistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("checklist %d: %w", checklistID, apperrors.ErrNotFound)
		}
		return nil, err
	}
	if _, err := s.cards.GetWithAccess(userID, checklist.CardID); err != nil {
		return nil, err
	}
	return checklist, nil
}

func (s *service) itemAccess(userID, itemID uint64) (*ChecklistItem, error) {
	item, err := s.repo.GetItemByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("checklist item %d: %w", itemID, apperrors.ErrNotFound)
		}
		return nil, err
	}
	if _, err := s.access(userID, item.ChecklistID); err != nil {
		return nil, err
	}
	return item, nil
}
