package card

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/apperrors"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/board"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/list"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/providers/redis"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/utils"
)

// ListResolver is the slice of the list service the card service needs
// to map a list to its board for membership checks.
type ListResolver interface {
	GetByID(listID uint64) (*list.List, error)
}

// Resolver is what sub-resource services (labels, checklists, comments,
// attachments) use to authorize against a card's board and to scope
// the events they publish.
type Resolver interface {
	GetWithAccess(userID, cardID uint64) (*Card, error)
	BoardOf(listID uint64) uint64
}

type Service interface {
	Resolver
	Create(ctx context.Context, userID uint64, req CreateCardRequest) (*Card, error)
	GetByList(ctx context.Context, userID, listID uint64) ([]*Card, error)
	Get(userID, cardID uint64) (*Card, error)
	Update(ctx context.Context, userID, cardID uint64, req UpdateCardRequest) (*Card, error)
	Delete(ctx context.Context, userID, cardID uint64) error

	AddMember(ctx context.Context, userID, cardID, memberID uint64) (*CardMember, error)
	AddMembersBulk(ctx context.Context, userID, cardID uint64, memberIDs []uint64) (*BulkMemberResponse, error)
	RemoveMember(ctx context.Context, userID, cardID, memberID uint64) error
	GetMembers(userID, cardID uint64) ([]*CardMember, error)

	SetDates(ctx context.Context, userID, cardID uint64, req DatesRequest) (*CardDate, error)
	RemoveDates(ctx context.Context, userID, cardID uint64) error
	SetLocation(ctx context.Context, userID, cardID uint64, req LocationRequest) (*CardLocation, error)
	RemoveLocation(ctx context.Context, userID, cardID uint64) error
}

type service struct {
	repo     Repository
	lists    ListResolver
	guard    board.Guard
	redisP   *redis.RedisProvider
	eventBus *utils.EventBus
	logger   *zap.SugaredLogger
}

func NewService(repo Repository, lists ListResolver, guard board.Guard, redisP *redis.RedisProvider, eventBus *utils.EventBus, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		lists:    lists,
		guard:    guard,
		redisP:   redisP,
		eventBus: eventBus,
		logger:   logger.Sugar(),
	}
}

func cardsCacheKey(listID uint64) string {
	return fmt.Sprintf("cards:list:%d", listID)
}

// checkListAccess resolves a list to its board and requires the caller
// to be a member there.
func (s *service) checkListAccess(userID, listID uint64) (*list.List, error) {
	l, err := s.lists.GetByID(listID)
	if err != nil {
		return nil, err
	}
	member, err := s.guard.IsMember(l.BoardID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check board membership: %w", err)
	}
	if !member {
		return nil, fmt.Errorf("list %d: %w", listID, apperrors.ErrPermissionDenied)
	}
	return l, nil
}

// GetWithAccess loads a card and authorizes the caller against its
// board, the shared gate for every card mutation and sub-resource.
func (s *service) GetWithAccess(userID, cardID uint64) (*Card, error) {
	card, err := s.repo.GetByID(cardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("card %d: %w", cardID, apperrors.ErrNotFound)
		}
		return nil, err
	}
	if _, err := s.checkListAccess(userID, card.ListID); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *service) Create(ctx context.Context, userID uint64, req CreateCardRequest) (*Card, error) {
	l, err := s.checkListAccess(userID, req.ListID)
	if err != nil {
		return nil, err
	}

	card := &Card{
		Title:       req.Title,
		Description: req.Description,
		ListID:      l.ID,
		UserID:      userID,
	}
	if err := s.repo.CreateOrdered(card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	s.invalidate(ctx, l.ID)
	s.publish("card_created", card, l.BoardID)
	s.logger.Infow("Card created", "card_id", card.ID, "list_id", card.ListID, "order", card.Order)
	return card, nil
}

func (s *service) GetByList(ctx context.Context, userID, listID uint64) ([]*Card, error) {
	if _, err := s.checkListAccess(userID, listID); err != nil {
		return nil, err
	}

	cacheKey := cardsCacheKey(listID)
	if s.redisP != nil {
		if cached, err := s.redisP.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var cards []*Card
			if json.Unmarshal([]byte(cached), &cards) == nil {
				return cards, nil
			}
		}
	}

	cards, err := s.repo.GetOrderedByList(listID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cards: %w", err)
	}

	if s.redisP != nil {
		if data, err := json.Marshal(cards); err == nil {
			s.redisP.SetWithDefaultTTL(ctx, cacheKey, data, 0)
		}
	}

	return cards, nil
}

func (s *service) Get(userID, cardID uint64) (*Card, error) {
	return s.GetWithAccess(userID, cardID)
}

func (s *service) Update(ctx context.Context, userID, cardID uint64, req UpdateCardRequest) (*Card, error) {
	card, err := s.GetWithAccess(userID, cardID)
	if err != nil {
		return nil, err
	}
	sourceListID := card.ListID

	if req.Order != nil {
		boardID, err := s.move(userID, card, req)
		if err != nil {
			return nil, err
		}

		moved, err := s.repo.GetByID(cardID)
		if err != nil {
			return nil, err
		}
		s.invalidate(ctx, sourceListID)
		s.invalidate(ctx, moved.ListID)
		s.publish("card_moved", moved, boardID)
		return moved, nil
	}

	if req.Title != nil {
		card.Title = *req.Title
	}
	if req.Description != nil {
		card.Description = req.Description
	}
	if req.DueDate != nil {
		card.DueDate = req.DueDate
	}
	if req.DueDateComplete != nil {
		card.DueDateComplete = *req.DueDateComplete
	}
	if err := s.repo.Update(card); err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	s.invalidate(ctx, card.ListID)
	s.publish("card_updated", card, s.BoardOf(card.ListID))
	return card, nil
}

// BoardOf resolves the board an event belongs to, so the websocket hub
// can route it to that board's subscribers only.
func (s *service) BoardOf(listID uint64) uint64 {
	l, err := s.lists.GetByID(listID)
	if err != nil {
		return 0
	}
	return l.BoardID
}

// move dispatches between an in-list reorder and a cross-list move. For
// a cross-list move both boards are validated before any write, so a
// denied destination leaves every order value untouched.
func (s *service) move(userID uint64, card *Card, req UpdateCardRequest) (uint64, error) {
	if req.ListID != nil && *req.ListID != card.ListID {
		destList, err := s.checkListAccess(userID, *req.ListID)
		if err != nil {
			return 0, err
		}
		if err := s.repo.MoveAcrossLists(card.ID, destList.ID, *req.Order); err != nil {
			return 0, err
		}
		s.logger.Infow("Card moved across lists",
			"card_id", card.ID,
			"from_list", card.ListID,
			"to_list", destList.ID,
			"order", *req.Order,
		)
		return destList.BoardID, nil
	}

	if err := s.repo.Move(card.ListID, card.ID, *req.Order); err != nil {
		return 0, err
	}
	return s.BoardOf(card.ListID), nil
}

func (s *service) Delete(ctx context.Context, userID, cardID uint64) error {
	card, err := s.GetWithAccess(userID, cardID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(cardID); err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	s.invalidate(ctx, card.ListID)
	s.publish("card_deleted", card, s.BoardOf(card.ListID))
	return nil
}

// AddMember assigns a board member to the card. Repeated assignment
// returns the existing row rather than failing.
func (s *service) AddMember(ctx context.Context, userID, cardID, memberID uint64) (*CardMember, error) {
	card, err := s.GetWithAccess(userID, cardID)
	if err != nil {
		return nil, err
	}

	l, err := s.lists.GetByID(card.ListID)
	if err != nil {
		return nil, err
	}
	isBoardMember, err := s.guard.IsMember(l.BoardID, memberID)
	if err != nil {
		return nil, err
	}
	if !isBoardMember {
		return nil, fmt.Errorf("user %d must be a board member first: %w", memberID, apperrors.ErrValidationFailed)
	}

	member, created, err := s.repo.GetOrCreateMember(cardID, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to assign member: %w", err)
	}
	if created {
		s.invalidate(ctx, card.ListID)
	}
	return member, nil
}

// AddMembersBulk assigns several users in one call. One bad id does not
// fail the batch; each non-member or already-assigned user gets its own
// entry in Errors while the rest are assigned.
func (s *service) AddMembersBulk(ctx context.Context, userID, cardID uint64, memberIDs []uint64) (*BulkMemberResponse, error) {
	card, err := s.GetWithAccess(userID, cardID)
	if err != nil {
		return nil, err
	}

	l, err := s.lists.GetByID(card.ListID)
	if err != nil {
		return nil, err
	}

	result := &BulkMemberResponse{AddedUsers: []uint64{}, Errors: []string{}}
	for _, memberID := range memberIDs {
		isBoardMember, err := s.guard.IsMember(l.BoardID, memberID)
		if err != nil {
			return nil, err
		}
		if !isBoardMember {
			result.Errors = append(result.Errors, fmt.Sprintf("user %d is not a board member", memberID))
			continue
		}

		_, created, err := s.repo.GetOrCreateMember(cardID, memberID)
		if err != nil {
			return nil, fmt.Errorf("failed to assign member: %w", err)
		}
		if !created {
			result.Errors = append(result.Errors, fmt.Sprintf("user %d is already assigned to this card", memberID))
			continue
		}
		result.AddedUsers = append(result.AddedUsers, memberID)
	}

	if len(result.AddedUsers) > 0 {
		s.invalidate(ctx, card.ListID)
	}
	return result, nil
}

func (s *service) RemoveMember(ctx context.Context, userID, cardID, memberID uint64) error {
	card, err := s.GetWithAccess(userID, cardID)
	if err != nil {
		return err
	}

	removed, err := s.repo.DeleteMember(cardID, memberID)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	if !removed {
		return fmt.Errorf("user %d is not assigned to card %d: %w", memberID, cardID, apperrors.ErrNotFound)
	}

	s.invalidate(ctx, card.ListID)
	return nil
}

func (s *service) GetMembers(userID, cardID uint64) ([]*CardMember, error) {
	if _, err := s.GetWithAccess(userID, cardID); err != nil {
		return nil, err
	}
	return s.repo.GetMembers(cardID)
}

func (s *service) SetDates(ctx context.Context, userID, cardID uint64, req DatesRequest) (*CardDate, error) {
	card, err := s.GetWithAccess(userID, cardID)
	if err != nil {
		return nil, err
	}

	dates, err := s.repo.UpsertDates(cardID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to set dates: %w", err)
	}

	s.invalidate(ctx, card.ListID)
	return dates, nil
}

func (s *service) RemoveDates(ctx context.Context, userID, cardID uint64) error {
	card, err := s.GetWithAccess(userID, cardID)
	if err != nil {
		return err
	}

	removed, err := s.repo.DeleteDates(cardID)
	if err != nil {
		return fmt.Errorf("failed to remove dates: %w", err)
	}
	if !removed {
		return fmt.Errorf("card %d has no dates: %w", cardID, apperrors.ErrNotFound)
	}

	s.invalidate(ctx, card.ListID)
	return nil
}

func (s *service) SetLocation(ctx context.Context, userID, cardID uint64, req LocationRequest) (*CardLocation, error) {
	card, err := s.GetWithAccess(userID, cardID)
	if err != nil {
		return nil, err
	}

	loc, err := s.repo.UpsertLocation(cardID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to set location: %w", err)
	}

	s.invalidate(ctx, card.ListID)
	return loc, nil
}

func (s *service) RemoveLocation(ctx context.Context, userID, cardID uint64) error {
	card, err := s.GetWithAccess(userID, cardID)
	if err != nil {
		return err
	}

	removed, err := s.repo.DeleteLocation(cardID)
	if err != nil {
		return fmt.Errorf("failed to remove location: %w", err)
	}
	if !removed {
		return fmt.Errorf("card %d has no location: %w", cardID, apperrors.ErrNotFound)
	}

	s.invalidate(ctx, card.ListID)
	return nil
}

func (s *service) invalidate(ctx context.Context, listID uint64) {
	if s.redisP == nil {
		return
	}
	s.redisP.Del(ctx, cardsCacheKey(listID))
}

func (s *service) publish(event string, card *Card, boardID uint64) {
	if s.eventBus == nil {
		return
	}
	s.eventBus.Publish(event, map[string]interface{}{
		"card_id":  card.ID,
		"list_id":  card.ListID,
		"board_id": boardID,
		"title":    card.Title,
		"order":    card.Order,
	})
}
