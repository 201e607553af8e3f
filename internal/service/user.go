package service

import (
	"context"
	"errors"
	"fmt"
	"manufacturer-backend/internal/apperr"
	"manufacturer-backend/internal/auth"
	"manufacturer-backend/internal/model"
	"manufacturer-backend/internal/repository"

	"gorm.io/gorm"
)

type UserService interface {
	// Upsert creates or refreshes the user keyed by email and issues a
	// fresh access token either way; this is the login/registration path.
	Upsert(ctx context.Context, email, name, photo string) (*model.User, string, error)
	Get(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	GrantAdmin(ctx context.Context, email string) error
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
	tokens   *auth.Manager
}

func NewUserService(userRepo repository.UserRepository, tokens *auth.Manager) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *userServiceImpl) Upsert(ctx context.Context, email, name, photo string) (*model.User, string, error) {
	if email == "" {
		return nil, "", apperr.BadRequest("email is required")
	}

	if err := s.userRepo.Upsert(ctx, &model.User{
		Email: email,
		Name:  name,
		Photo: photo,
	}); err != nil {
		return nil, "", fmt.Errorf("upsert user: %w", err)
	}

	token, err := s.tokens.Issue(email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *userServiceImpl) Get(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("user not found")
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userServiceImpl) List(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userServiceImpl) GrantAdmin(ctx context.Context, email string) error {
	err := s.userRepo.SetRole(ctx, email, "admin")
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("user not found")
	}

	return err
}

// IsAdmin reports false for unknown emails rather than failing; the
// admin-status endpoint is a probe, not a lookup.
func (s *userServiceImpl) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return user.Role == "admin", nil
}
