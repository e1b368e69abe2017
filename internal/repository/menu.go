package repository

import (
	"context"

	"bistro-server/internal/model"

	"gorm.io/gorm"
)

type MenuRepository interface {
	FindAll(ctx context.Context) ([]*model.MenuItem, error)
	Create(ctx context.Context, item *model.MenuItem) error
	Delete(ctx context.Context, id string) (int64, error)
}

type menuRepoImpl struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepoImpl{
		db: db,
	}
}

func (r *menuRepoImpl) FindAll(ctx context.Context) ([]*model.MenuItem, error) {
	var items []*model.MenuItem
	err := r.db.WithContext(ctx).Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *menuRepoImpl) Create(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuRepoImpl) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MenuItem{})

	return result.RowsAffected, result.Error
}
