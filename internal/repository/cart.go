package repository

import (
	"context"

	"bistro-server/internal/model"

	"gorm.io/gorm"
)

type CartRepository interface {
	FindByEmail(ctx context.Context, email string) ([]*model.CartItem, error)
	Create(ctx context.Context, item *model.CartItem) error
	Delete(ctx context.Context, id string) (int64, error)
	DeleteOwned(ctx context.Context, tx *gorm.DB, email string, ids []string) (int64, error)
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

func (r *cartRepoImpl) FindByEmail(ctx context.Context, email string) ([]*model.CartItem, error) {
	var items []*model.CartItem
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *cartRepoImpl) Create(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepoImpl) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CartItem{})

	return result.RowsAffected, result.Error
}

// DeleteOwned removes the given cart lines, but only those that still exist
// and belong to email. Ids that no longer resolve delete zero rows, which
// makes a replayed or overlapping settlement observable via the count.
func (r *cartRepoImpl) DeleteOwned(ctx context.Context, tx *gorm.DB, email string, ids []string) (int64, error) {
	result := tx.WithContext(ctx).
		Where("email = ?", email).
		Where("id IN ?", ids).
		Delete(&model.CartItem{})

	return result.RowsAffected, result.Error
}
