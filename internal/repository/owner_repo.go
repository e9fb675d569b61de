package repository

import (
	"context"

	"agencyledger/internal/model"

	"gorm.io/gorm"
)

type OwnerRepository interface {
	Create(ctx context.Context, o *model.Owner) error
	FindByID(ctx context.Context, id int64) (*model.Owner, error)
	List(ctx context.Context, includeInactive bool) ([]model.Owner, error)
	Update(ctx context.Context, o *model.Owner) error
	SetActive(ctx context.Context, id int64, active bool) error
}

type ownerRepo struct{ db *gorm.DB }

func NewOwnerRepository(db *gorm.DB) OwnerRepository { return &ownerRepo{db: db} }

func (r *ownerRepo) Create(ctx context.Context, o *model.Owner) error {
	return translate(r.db.WithContext(ctx).Create(o).Error)
}

func (r *ownerRepo) FindByID(ctx context.Context, id int64) (*model.Owner, error) {
	var o model.Owner
	err := r.db.WithContext(ctx).First(&o, id).Error
	return &o, err
}

func (r *ownerRepo) List(ctx context.Context, includeInactive bool) ([]model.Owner, error) {
	var owners []model.Owner
	q := r.db.WithContext(ctx)
	if !includeInactive {
		q = q.Where("is_active = true")
	}
	err := q.Order("name").Find(&owners).Error
	return owners, err
}

func (r *ownerRepo) Update(ctx context.Context, o *model.Owner) error {
	return affected(r.db.WithContext(ctx).Model(o).Select("name", "contact_info", "is_active", "updated_at").Updates(o))
}

func (r *ownerRepo) SetActive(ctx context.Context, id int64, active bool) error {
	return affected(r.db.WithContext(ctx).Model(&model.Owner{}).Where("owner_id = ?", id).Update("is_active", active))
}
