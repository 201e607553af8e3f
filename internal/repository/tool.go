package repository

import (
	"context"
	"manufacturer-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ToolRepository interface {
	List(ctx context.Context) ([]*model.Tool, error)
	FindByID(ctx context.Context, toolID string) (*model.Tool, error)
	Create(ctx context.Context, tool *model.Tool) error
	Delete(ctx context.Context, toolID string) error
	// UpsertQuantity sets the quantity of the matching tool, creating a
	// partial row when no tool matches (the storefront relies on this).
	UpsertQuantity(ctx context.Context, toolID string, quantity int32) (*model.Tool, error)
}

type toolRepoImpl struct {
	db *gorm.DB
}

func NewToolRepository(db *gorm.DB) ToolRepository {
	return &toolRepoImpl{
		db: db,
	}
}

func (r *toolRepoImpl) List(ctx context.Context) ([]*model.Tool, error) {
	var tools []*model.Tool
	err := r.db.WithContext(ctx).
		Find(&tools).Error

	if err != nil {
		return nil, err
	}

	return tools, nil
}

func (r *toolRepoImpl) FindByID(ctx context.Context, toolID string) (*model.Tool, error) {
	var tool model.Tool
	err := r.db.WithContext(ctx).
		Where("id = ?", toolID).
		First(&tool).Error

	if err != nil {
		return nil, err
	}

	return &tool, nil
}

func (r *toolRepoImpl) Create(ctx context.Context, tool *model.Tool) error {
	return r.db.WithContext(ctx).Create(tool).Error
}

func (r *toolRepoImpl) Delete(ctx context.Context, toolID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", toolID).
		Delete(&model.Tool{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *toolRepoImpl) UpsertQuantity(ctx context.Context, toolID string, quantity int32) (*model.Tool, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": quantity,
		}),
	}).Create(&model.Tool{
		ID:       toolID,
		Quantity: quantity,
	}).Error

	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, toolID)
}
