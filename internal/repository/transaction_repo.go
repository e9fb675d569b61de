package repository

import (
	"context"

	"agencyledger/internal/model"

	"gorm.io/gorm"
)

// TransactionRepository covers corrections to individual sale lines. Lines are
// normally written through BillRepository.Create.
type TransactionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, t *model.Transaction) error
	FindByID(ctx context.Context, id int64) (*model.Transaction, error)
	Update(ctx context.Context, tx *gorm.DB, t *model.Transaction) error
	Delete(ctx context.Context, tx *gorm.DB, id int64) error
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, tx *gorm.DB, t *model.Transaction) error {
	return conn(r.db, tx).WithContext(ctx).Omit("Material").Create(t).Error
}

func (r *transactionRepo) FindByID(ctx context.Context, id int64) (*model.Transaction, error) {
	var t model.Transaction
	err := r.db.WithContext(ctx).Preload("Material").First(&t, id).Error
	return &t, err
}

func (r *transactionRepo) Update(ctx context.Context, tx *gorm.DB, t *model.Transaction) error {
	return affected(conn(r.db, tx).WithContext(ctx).Model(t).
		Select("vehicle_number", "quantity", "rate_at_sale", "total_cost").
		Updates(t))
}

func (r *transactionRepo) Delete(ctx context.Context, tx *gorm.DB, id int64) error {
	return affected(conn(r.db, tx).WithContext(ctx).Where("transaction_id = ?", id).Delete(&model.Transaction{}))
}
