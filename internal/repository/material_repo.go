package repository

import (
	"context"

	"agencyledger/internal/model"

	"gorm.io/gorm"
)

type MaterialRepository interface {
	Create(ctx context.Context, m *model.Material) error
	FindByID(ctx context.Context, id int64) (*model.Material, error)
	// FindByIDs reads every listed material in one statement; missing ids are
	// simply absent from the result.
	FindByIDs(ctx context.Context, tx *gorm.DB, ids []int64) ([]model.Material, error)
	List(ctx context.Context, includeInactive bool) ([]model.Material, error)
	Update(ctx context.Context, m *model.Material) error
	SetActive(ctx context.Context, id int64, active bool) error
}

type materialRepo struct{ db *gorm.DB }

func NewMaterialRepository(db *gorm.DB) MaterialRepository { return &materialRepo{db: db} }

func (r *materialRepo) Create(ctx context.Context, m *model.Material) error {
	return translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *materialRepo) FindByID(ctx context.Context, id int64) (*model.Material, error) {
	var m model.Material
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *materialRepo) FindByIDs(ctx context.Context, tx *gorm.DB, ids []int64) ([]model.Material, error) {
	var materials []model.Material
	err := conn(r.db, tx).WithContext(ctx).Where("material_id IN ?", ids).Find(&materials).Error
	return materials, err
}

func (r *materialRepo) List(ctx context.Context, includeInactive bool) ([]model.Material, error) {
	var materials []model.Material
	q := r.db.WithContext(ctx)
	if !includeInactive {
		q = q.Where("is_active = true")
	}
	err := q.Order("name").Find(&materials).Error
	return materials, err
}

func (r *materialRepo) Update(ctx context.Context, m *model.Material) error {
	return affected(r.db.WithContext(ctx).Model(m).Select("name", "unit", "rate_per_unit", "is_active", "updated_at").Updates(m))
}

func (r *materialRepo) SetActive(ctx context.Context, id int64, active bool) error {
	return affected(r.db.WithContext(ctx).Model(&model.Material{}).Where("material_id = ?", id).Update("is_active", active))
}

// conn picks the transaction handle when one is open.
func conn(db, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return db
}
