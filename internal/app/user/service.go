package user

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/apperrors"
)

type Service interface {
	Register(req RegisterRequest) (*User, string, error)
	Login(req LoginRequest) (*User, string, error)
	GetByID(id uint64) (*User, error)
	GetAll() ([]*User, error)
}

type service struct {
	repo   Repository
	tokens *TokenManager
	logger *zap.SugaredLogger
}

func NewService(repo Repository, tokens *TokenManager, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		tokens: tokens,
		logger: logger.Sugar(),
	}
}

func (s *service) Register(req RegisterRequest) (*User, string, error) {
	taken, err := s.repo.ExistsByUsernameOrEmail(req.Username, req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing users: %w", err)
	}
	if taken {
		return nil, "", fmt.Errorf("username or email already registered: %w", apperrors.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Infow("User registered", "user_id", user.ID, "username", user.Username)
	return user, token, nil
}

func (s *service) Login(req LoginRequest) (*User, string, error) {
	user, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrUnauthorized
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", apperrors.ErrUnauthorized
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *service) GetByID(id uint64) (*User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (s *service) GetAll() ([]*User, error) {
	return s.repo.GetAll()
}
