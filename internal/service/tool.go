package service

import (
	"context"
	"errors"
	"manufacturer-backend/internal/apperr"
	"manufacturer-backend/internal/model"
	"manufacturer-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ToolService interface {
	List(ctx context.Context) ([]*model.Tool, error)
	Get(ctx context.Context, toolID string) (*model.Tool, error)
	Create(ctx context.Context, tool *model.Tool) (*model.Tool, error)
	Delete(ctx context.Context, toolID string) error
	UpdateQuantity(ctx context.Context, toolID string, quantity int32) (*model.Tool, error)
}

type toolServiceImpl struct {
	toolRepo repository.ToolRepository
}

func NewToolService(toolRepo repository.ToolRepository) ToolService {
	return &toolServiceImpl{
		toolRepo: toolRepo,
	}
}

func (s *toolServiceImpl) List(ctx context.Context) ([]*model.Tool, error) {
	return s.toolRepo.List(ctx)
}

func (s *toolServiceImpl) Get(ctx context.Context, toolID string) (*model.Tool, error) {
	tool, err := s.toolRepo.FindByID(ctx, toolID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("tool not found")
	}
	if err != nil {
		return nil, err
	}

	return tool, nil
}

func (s *toolServiceImpl) Create(ctx context.Context, tool *model.Tool) (*model.Tool, error) {
	if tool.Name == "" {
		return nil, apperr.BadRequest("tool name is required")
	}
	if tool.ID == "" {
		tool.ID = uuid.NewString()
	}

	if err := s.toolRepo.Create(ctx, tool); err != nil {
		return nil, err
	}

	return tool, nil
}

func (s *toolServiceImpl) Delete(ctx context.Context, toolID string) error {
	err := s.toolRepo.Delete(ctx, toolID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("tool not found")
	}

	return err
}

// UpdateQuantity keeps the storefront's upsert semantics: an unknown id
// creates a partial tool carrying only the quantity.
func (s *toolServiceImpl) UpdateQuantity(ctx context.Context, toolID string, quantity int32) (*model.Tool, error) {
	return s.toolRepo.UpsertQuantity(ctx, toolID, quantity)
}
