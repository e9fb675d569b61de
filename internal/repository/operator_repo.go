package repository

import (
	"context"

	"agencyledger/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OperatorRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.Operator, error)
	FindByID(ctx context.Context, id int64) (*model.Operator, error)
	// Upsert creates the operator or resets its name, password and active flag.
	Upsert(ctx context.Context, op *model.Operator) error
}

type operatorRepo struct{ db *gorm.DB }

func NewOperatorRepository(db *gorm.DB) OperatorRepository { return &operatorRepo{db: db} }

func (r *operatorRepo) FindByUsername(ctx context.Context, username string) (*model.Operator, error) {
	var op model.Operator
	err := r.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?) AND is_active = true", username).
		First(&op).Error
	return &op, err
}

func (r *operatorRepo) FindByID(ctx context.Context, id int64) (*model.Operator, error) {
	var op model.Operator
	err := r.db.WithContext(ctx).First(&op, id).Error
	return &op, err
}

func (r *operatorRepo) Upsert(ctx context.Context, op *model.Operator) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"display_name", "password_hash", "is_active", "updated_at"}),
	}).Create(op).Error
}
