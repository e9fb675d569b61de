package repository

import (
	"context"

	"agencyledger/internal/model"

	"gorm.io/gorm"
)

// PaymentRepository is append-only: payments are never edited or removed.
type PaymentRepository interface {
	Create(ctx context.Context, p *model.Payment) error
}

type paymentRepo struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) PaymentRepository { return &paymentRepo{db: db} }

func (r *paymentRepo) Create(ctx context.Context, p *model.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}
