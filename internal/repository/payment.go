package repository

import (
	"context"

	"bistro-server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepository interface {
	// CreateIfAbsent inserts the payment unless a record with the same
	// settlement key already exists. Returns true when the row was inserted.
	CreateIfAbsent(ctx context.Context, tx *gorm.DB, payment *model.Payment) (bool, error)
	CreateItems(ctx context.Context, tx *gorm.DB, items []*model.PaymentItem) error
	FindByEmail(ctx context.Context, email string) ([]*model.Payment, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type paymentRepoImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepoImpl{
		db: db,
	}
}

func (r *paymentRepoImpl) CreateIfAbsent(ctx context.Context, tx *gorm.DB, payment *model.Payment) (bool, error) {
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(payment)

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *paymentRepoImpl) CreateItems(ctx context.Context, tx *gorm.DB, items []*model.PaymentItem) error {
	return tx.WithContext(ctx).Create(&items).Error
}

func (r *paymentRepoImpl) FindByEmail(ctx context.Context, email string) ([]*model.Payment, error) {
	var payments []*model.Payment
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Find(&payments).Error

	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *paymentRepoImpl) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("id = ?", id).
		Count(&count).Error

	return count > 0, err
}
