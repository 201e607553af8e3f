package service

import (
	"context"
	"fmt"
	"manufacturer-backend/internal/apperr"
	"manufacturer-backend/internal/model"
	"manufacturer-backend/internal/repository"

	"github.com/google/uuid"
)

type ReviewService interface {
	List(ctx context.Context) ([]*model.Review, error)
	// Create inserts the review unless the email already has one. The
	// returned review is the created one on success, the existing one on
	// a duplicate.
	Create(ctx context.Context, review *model.Review) (bool, *model.Review, error)
}

type reviewServiceImpl struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewServiceImpl{
		reviewRepo: reviewRepo,
	}
}

func (s *reviewServiceImpl) List(ctx context.Context) ([]*model.Review, error) {
	return s.reviewRepo.List(ctx)
}

func (s *reviewServiceImpl) Create(ctx context.Context, review *model.Review) (bool, *model.Review, error) {
	if review.Email == "" {
		return false, nil, apperr.BadRequest("email is required")
	}
	if review.ID == "" {
		review.ID = uuid.NewString()
	}

	inserted, err := s.reviewRepo.CreateIfAbsent(ctx, review)
	if err != nil {
		return false, nil, fmt.Errorf("create review: %w", err)
	}

	if inserted {
		return true, review, nil
	}

	existing, err := s.reviewRepo.FindByEmail(ctx, review.Email)
	if err != nil {
		return false, nil, fmt.Errorf("load existing review: %w", err)
	}

	return false, existing, nil
}
