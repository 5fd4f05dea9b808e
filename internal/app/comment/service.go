package comment

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/apperrors"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/card"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/utils"
)

type Service interface {
	Create(userID, cardID uint64, req CreateCommentRequest) (*Comment, error)
	GetByCard(userID, cardID uint64) ([]*Comment, error)
	Update(userID, commentID uint64, req UpdateCommentRequest) (*Comment, error)
	Delete(userID, commentID uint64) error
}

type service struct {
	repo     Repository
	cards    card.Resolver
	eventBus *utils.EventBus
}

func NewService(repo Repository, cards card.Resolver, eventBus *utils.EventBus) Service {
	return &service{repo: repo, cards: cards, eventBus: eventBus}
}

func (s *service) Create(userID, cardID uint64, req CreateCommentRequest) (*Comment, error) {
	card, err := s.cards.GetWithAccess(userID, cardID)
	if err != nil {
		return nil, err
	}

	comment := &Comment{
		Body:   req.Body,
		CardID: cardID,
		UserID: userID,
	}
	if err := s.repo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if s.eventBus != nil {
		s.eventBus.Publish("comment_created", map[string]interface{}{
			"comment_id": comment.ID,
			"card_id":    cardID,
			"board_id":   s.cards.BoardOf(card.ListID),
			"user_id":    userID,
		})
	}
	return comment, nil
}

func (s *service) GetByCard(userID, cardID uint64) ([]*Comment, error) {
	if _, err := s.cards.GetWithAccess(userID, cardID); err != nil {
		return nil, err
	}
	return s.repo.GetByCard(cardID)
}

// Update is author-only; board membership alone is not enough to edit
// someone else's comment.
func (s *service) Update(userID, commentID uint64, req UpdateCommentRequest) (*Comment, error) {
	comment, err := s.owned(userID, commentID)
	if err != nil {
		return nil, err
	}

	comment.Body = req.Body
	if err := s.repo.Update(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

func (s *service) Delete(userID, commentID uint64) error {
	if _, err := s.owned(userID, commentID); err != nil {
		return err
	}
	return s.repo.Delete(commentID)
}

func (s *service) owned(userID, commentID uint64) (*Comment, error) {
	comment, err := s.repo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("comment %d: %w", commentID, apperrors.ErrNotFound)
		}
		return nil, err
	}
	if _, err := s.cards.GetWithAccess(userID, comment.CardID); err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, fmt.Errorf("comment %d: %w", commentID, apperrors.ErrPermissionDenied)
	}
	return comment, nil
}
