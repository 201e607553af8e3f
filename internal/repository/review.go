package repository

import (
	"context"
	"manufacturer-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository interface {
	List(ctx context.Context) ([]*model.Review, error)
	FindByEmail(ctx context.Context, email string) (*model.Review, error)
	// CreateIfAbsent inserts the review unless one already exists for the
	// email. A single conditional write, so two concurrent submissions
	// for the same email cannot both succeed.
	CreateIfAbsent(ctx context.Context, review *model.Review) (bool, error)
}

type reviewRepoImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepoImpl{
		db: db,
	}
}

func (r *reviewRepoImpl) List(ctx context.Context) ([]*model.Review, error) {
	var reviews []*model.Review
	err := r.db.WithContext(ctx).
		Find(&reviews).Error

	if err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *reviewRepoImpl) FindByEmail(ctx context.Context, email string) (*model.Review, error) {
	var review model.Review
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&review).Error

	if err != nil {
		return nil, err
	}

	return &review, nil
}

func (r *reviewRepoImpl) CreateIfAbsent(ctx context.Context, review *model.Review) (bool, error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(review)

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
