package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/apperrors"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/providers/redis"
)

// Guard is the membership check other entity services gate their
// mutations on.
type Guard interface {
	IsMember(boardID, userID uint64) (bool, error)
}

type Service interface {
	Guard
	Create(userID uint64, req CreateBoardRequest) (*Board, error)
	GetByID(userID, boardID uint64) (*Board, error)
	GetForUser(ctx context.Context, userID uint64) ([]*Board, error)
	Update(userID, boardID uint64, req UpdateBoardRequest) (*Board, error)
	Delete(userID, boardID uint64) error
	AddMember(userID, boardID, memberID uint64) (*Board, error)
	RemoveMember(userID, boardID, memberID uint64) error
}

type service struct {
	repo   Repository
	redisP *redis.RedisProvider
	logger *zap.SugaredLogger
}

func NewService(repo Repository, redisP *redis.RedisProvider, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		redisP: redisP,
		logger: logger.Sugar(),
	}
}

func boardsCacheKey(userID uint64) string {
	return fmt.Sprintf("boards:user:%d", userID)
}

func (s *service) IsMember(boardID, userID uint64) (bool, error) {
	return s.repo.IsMember(boardID, userID)
}

func (s *service) Create(userID uint64, req CreateBoardRequest) (*Board, error) {
	board := &Board{
		Title:   req.Title,
		OwnerID: userID,
	}
	if req.Background != "" {
		board.Background = req.Background
	}
	if err := s.repo.Create(board); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	s.invalidate(userID)
	s.logger.Infow("Board created", "board_id", board.ID, "owner_id", userID)
	return board, nil
}

func (s *service) GetByID(userID, boardID uint64) (*Board, error) {
	board, err := s.repo.GetByID(boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("board %d: %w", boardID, apperrors.ErrNotFound)
		}
		return nil, err
	}

	member, err := s.repo.IsMember(boardID, userID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, fmt.Errorf("board %d: %w", boardID, apperrors.ErrPermissionDenied)
	}

	return board, nil
}

func (s *service) GetForUser(ctx context.Context, userID uint64) ([]*Board, error) {
	cacheKey := boardsCacheKey(userID)
	if s.redisP != nil {
		if cached, err := s.redisP.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var boards []*Board
			if json.Unmarshal([]byte(cached), &boards) == nil {
				return boards, nil
			}
		}
	}

	boards, err := s.repo.GetForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch boards: %w", err)
	}

	if s.redisP != nil {
		if data, err := json.Marshal(boards); err == nil {
			s.redisP.SetWithDefaultTTL(ctx, cacheKey, data, 0)
		}
	}

	return boards, nil
}

func (s *service) Update(userID, boardID uint64, req UpdateBoardRequest) (*Board, error) {
	board, err := s.GetByID(userID, boardID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		board.Title = *req.Title
	}
	if req.Background != nil {
		board.Background = *req.Background
	}
	if err := s.repo.Update(board); err != nil {
		return nil, fmt.Errorf("failed to update board: %w", err)
	}

	s.invalidateBoard(board)
	return board, nil
}

func (s *service) Delete(userID, boardID uint64) error {
	board, err := s.repo.GetByID(boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("board %d: %w", boardID, apperrors.ErrNotFound)
		}
		return err
	}
	if board.OwnerID != userID {
		return fmt.Errorf("only the owner may delete a board: %w", apperrors.ErrPermissionDenied)
	}

	if err := s.repo.Delete(boardID); err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}

	s.invalidateBoard(board)
	return nil
}

func (s *service) AddMember(userID, boardID, memberID uint64) (*Board, error) {
	board, err := s.GetByID(userID, boardID)
	if err != nil {
		return nil, err
	}

	for _, m := range board.Members {
		if m.ID == memberID {
			return nil, fmt.Errorf("user %d is already a member: %w", memberID, apperrors.ErrConflict)
		}
	}

	if err := s.repo.AddMember(boardID, memberID); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	s.invalidateBoard(board)
	s.invalidate(memberID)
	return s.repo.GetByID(boardID)
}

func (s *service) RemoveMember(userID, boardID, memberID uint64) error {
	board, err := s.repo.GetByID(boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("board %d: %w", boardID, apperrors.ErrNotFound)
		}
		return err
	}
	if board.OwnerID != userID && memberID != userID {
		return fmt.Errorf("only the owner may remove other members: %w", apperrors.ErrPermissionDenied)
	}

	if err := s.repo.RemoveMember(boardID, memberID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	s.invalidateBoard(board)
	s.invalidate(memberID)
	return nil
}

func (s *service) invalidateBoard(board *Board) {
	s.invalidate(board.OwnerID)
	for _, m := range board.Members {
		s.invalidate(m.ID)
	}
}

func (s *service) invalidate(userID uint64) {
	if s.redisP == nil {
		return
	}
	s.redisP.Del(context.Background(), boardsCacheKey(userID))
}
