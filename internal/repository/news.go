package repository

import (
	"context"
	"manufacturer-backend/internal/model"

	"gorm.io/gorm"
)

type NewsRepository interface {
	List(ctx context.Context) ([]*model.News, error)
}

type newsRepoImpl struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepoImpl{
		db: db,
	}
}

func (r *newsRepoImpl) List(ctx context.Context) ([]*model.News, error) {
	var news []*model.News
	err := r.db.WithContext(ctx).
		Order("published_at DESC").
		Find(&news).Error

	if err != nil {
		return nil, err
	}

	return news, nil
}
