package repository

import (
	"context"
	"time"

	"agencyledger/internal/dto"
	"agencyledger/internal/model"

	"gorm.io/gorm"
)

type BillRepository interface {
	// Create inserts the bill header together with its Items and Pass.
	Create(ctx context.Context, tx *gorm.DB, b *model.Bill) error
	// NextDailyNo hands out the next number for billDate. Must run inside the
	// bill transaction so a rollback releases the number.
	NextDailyNo(ctx context.Context, tx *gorm.DB, billDate time.Time) (int, error)
	// RecomputeTotal resets total_amount to the sum of the bill's lines and pass.
	RecomputeTotal(ctx context.Context, tx *gorm.DB, id int64) error
	FindByID(ctx context.Context, id int64) (*model.Bill, error)
	List(ctx context.Context, filter dto.BillFilter) ([]model.Bill, error)
	SetPDFPath(ctx context.Context, id int64, path string) error
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type billRepo struct{ db *gorm.DB }

func NewBillRepository(db *gorm.DB) BillRepository { return &billRepo{db: db} }

func (r *billRepo) DB() *gorm.DB { return r.db }

func (r *billRepo) Create(ctx context.Context, tx *gorm.DB, b *model.Bill) error {
	return tx.WithContext(ctx).Omit("Owner").Create(b).Error
}

// The first bill of a day seeds the counter from the bills already stored for
// that date, so databases numbered by the older count-based scheme continue
// without a gap. Later bills serialize on the counter row.
func (r *billRepo) NextDailyNo(ctx context.Context, tx *gorm.DB, billDate time.Time) (int, error) {
	var next int
	err := tx.WithContext(ctx).Raw(`
INSERT INTO bill_day_counters (bill_date, last_no)
VALUES (?, (SELECT COUNT(*) FROM bills WHERE bill_date = ?) + 1)
ON CONFLICT (bill_date) DO UPDATE SET last_no = bill_day_counters.last_no + 1
RETURNING last_no`, billDate, billDate).Scan(&next).Error
	return next, err
}

func (r *billRepo) RecomputeTotal(ctx context.Context, tx *gorm.DB, id int64) error {
	return tx.WithContext(ctx).Exec(`
UPDATE bills SET total_amount =
    COALESCE((SELECT SUM(total_cost) FROM transactions WHERE bill_id = ?), 0)
  + COALESCE((SELECT SUM(pass_amount) FROM owner_passes WHERE bill_id = ?), 0)
WHERE bill_id = ?`, id, id, id).Error
}

func (r *billRepo) FindByID(ctx context.Context, id int64) (*model.Bill, error) {
	var b model.Bill
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("transaction_id") }).
		Preload("Items.Material").
		Preload("Pass").
		First(&b, id).Error
	return &b, err
}

func (r *billRepo) List(ctx context.Context, filter dto.BillFilter) ([]model.Bill, error) {
	var bills []model.Bill
	q := r.db.WithContext(ctx).Model(&model.Bill{})

	if filter.OwnerID > 0 {
		q = q.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.From != "" {
		q = q.Where("bill_date >= ?", filter.From)
	}
	if filter.To != "" {
		q = q.Where("bill_date <= ?", filter.To)
	}
	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	err := q.Preload("Owner").
		Order("bill_timestamp DESC, bill_id DESC").
		Limit(limit).
		Find(&bills).Error
	return bills, err
}

func (r *billRepo) SetPDFPath(ctx context.Context, id int64, path string) error {
	return affected(r.db.WithContext(ctx).Model(&model.Bill{}).Where("bill_id = ?", id).Update("pdf_path", path))
}
