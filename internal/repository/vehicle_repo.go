package repository

import (
	"context"
	"strings"

	"agencyledger/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VehicleRepository interface {
	// Search returns the owner's plates containing q, most recently used first.
	Search(ctx context.Context, ownerID int64, q string, limit int) ([]model.Vehicle, error)
	// Upsert inserts the (owner, plate) pair or advances its last_used_at.
	// last_used_at never moves backwards. v is refreshed from the stored row.
	Upsert(ctx context.Context, tx *gorm.DB, v *model.Vehicle) error
	Delete(ctx context.Context, id int64) error
}

type vehicleRepo struct{ db *gorm.DB }

func NewVehicleRepository(db *gorm.DB) VehicleRepository { return &vehicleRepo{db: db} }

// likeEscaper makes q match literally inside an ILIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func (r *vehicleRepo) Search(ctx context.Context, ownerID int64, q string, limit int) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.WithContext(ctx).
		Where(`owner_id = ? AND vehicle_number ILIKE ? ESCAPE '\'`, ownerID, "%"+likeEscaper.Replace(q)+"%").
		Order("last_used_at DESC").
		Limit(limit).
		Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepo) Upsert(ctx context.Context, tx *gorm.DB, v *model.Vehicle) error {
	return conn(r.db, tx).WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "owner_id"}, {Name: "vehicle_number"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"last_used_at": gorm.Expr("GREATEST(vehicles.last_used_at, EXCLUDED.last_used_at)"),
		}),
	}, clause.Returning{}).Create(v).Error
}

func (r *vehicleRepo) Delete(ctx context.Context, id int64) error {
	return affected(r.db.WithContext(ctx).Where("vehicle_id = ?", id).Delete(&model.Vehicle{}))
}
