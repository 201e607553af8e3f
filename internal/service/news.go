package service

import (
	"context"
	"manufacturer-backend/internal/model"
	"manufacturer-backend/internal/repository"
)

type NewsService interface {
	List(ctx context.Context) ([]*model.News, error)
}

type newsServiceImpl struct {
	newsRepo repository.NewsRepository
}

func NewNewsService(newsRepo repository.NewsRepository) NewsService {
	return &newsServiceImpl{
		newsRepo: newsRepo,
	}
}

func (s *newsServiceImpl) List(ctx context.Context) ([]*model.News, error) {
	return s.newsRepo.List(ctx)
}
