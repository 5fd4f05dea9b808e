package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/apperrors"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/board"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/providers/redis"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/utils"
)

type Service interface {
	Create(ctx context.Context, userID uint64, req CreateListRequest) (*List, error)
	GetForUser(ctx context.Context, userID uint64) ([]*List, error)
	GetByID(listID uint64) (*List, error)
	Update(ctx context.Context, userID, listID uint64, req UpdateListRequest) (*List, error)
	Delete(ctx context.Context, userID, listID uint64) error
}

type service struct {
	repo     Repository
	guard    board.Guard
	redisP   *redis.RedisProvider
	eventBus *utils.EventBus
	logger   *zap.SugaredLogger
}

func NewService(repo Repository, guard board.Guard, redisP *redis.RedisProvider, eventBus *utils.EventBus, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		guard:    guard,
		redisP:   redisP,
		eventBus: eventBus,
		logger:   logger.Sugar(),
	}
}

func listsCacheKey(userID uint64) string {
	return fmt.Sprintf("lists:user:%d", userID)
}

func (s *service) Create(ctx context.Context, userID uint64, req CreateListRequest) (*List, error) {
	member, err := s.guard.IsMember(req.BoardID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check board membership: %w", err)
	}
	if !member {
		return nil, fmt.Errorf("board %d: %w", req.BoardID, apperrors.ErrPermissionDenied)
	}

	list := &List{
		Title:   req.Title,
		BoardID: req.BoardID,
		UserID:  userID,
	}
	if err := s.repo.CreateOrdered(list); err != nil {
		return nil, fmt.Errorf("failed to create list: %w", err)
	}

	s.invalidate(ctx, userID)
	s.publish("list_created", list)
	s.logger.Infow("List created", "list_id", list.ID, "board_id", list.BoardID, "order", list.Order)
	return list, nil
}

func (s *service) GetForUser(ctx context.Context, userID uint64) ([]*List, error) {
	cacheKey := listsCacheKey(userID)
	if s.redisP != nil {
		if cached, err := s.redisP.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var lists []*List
			if json.Unmarshal([]byte(cached), &lists) == nil {
				return lists, nil
			}
		}
	}

	lists, err := s.repo.GetOrdered(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lists: %w", err)
	}

	if s.redisP != nil {
		if data, err := json.Marshal(lists); err == nil {
			s.redisP.SetWithDefaultTTL(ctx, cacheKey, data, 0)
		}
	}

	return lists, nil
}

func (s *service) GetByID(listID uint64) (*List, error) {
	list, err := s.repo.GetByID(listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("list %d: %w", listID, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return list, nil
}

func (s *service) Update(ctx context.Context, userID, listID uint64, req UpdateListRequest) (*List, error) {
	list, err := s.owned(userID, listID)
	if err != nil {
		return nil, err
	}

	if req.Order != nil {
		if err := s.repo.Move(userID, listID, *req.Order); err != nil {
			return nil, err
		}
	}

	if req.Title != nil {
		list.Title = *req.Title
		if err := s.repo.Update(list); err != nil {
			return nil, fmt.Errorf("failed to update list: %w", err)
		}
	}

	updated, err := s.repo.GetByID(listID)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, userID)
	if req.Order != nil {
		s.publish("list_moved", updated)
	} else {
		s.publish("list_updated", updated)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, userID, listID uint64) error {
	list, err := s.owned(userID, listID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(listID); err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}

	s.invalidate(ctx, userID)
	s.publish("list_deleted", list)
	return nil
}

// owned loads a list and requires the caller to be its creating user.
// Reordering shifts siblings across the whole per-user scope, so the
// gate is ownership rather than board membership.
func (s *service) owned(userID, listID uint64) (*List, error) {
	list, err := s.GetByID(listID)
	if err != nil {
		return nil, err
	}
	if list.UserID != userID {
		return nil, fmt.Errorf("list %d: %w", listID, apperrors.ErrPermissionDenied)
	}
	return list, nil
}

func (s *service) invalidate(ctx context.Context, userID uint64) {
	if s.redisP == nil {
		return
	}
	s.redisP.Del(ctx, listsCacheKey(userID))
}

func (s *service) publish(event string, list *List) {
	if s.eventBus == nil {
		return
	}
	s.eventBus.Publish(event, map[string]interface{}{
		"list_id":  list.ID,
		"board_id": list.BoardID,
		"title":    list.Title,
		"order":    list.Order,
	})
}
