package repository

import (
	"context"
	"time"

	"agencyledger/internal/ledger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LedgerRepository reads the three event sources of an owner's account.
// Ordering and balances are computed by package ledger, not in SQL.
type LedgerRepository interface {
	OwnerEvents(ctx context.Context, ownerID int64) ([]ledger.Event, error)
	RangeEvents(ctx context.Context, start, end time.Time) ([]ledger.Event, error)
	// OwnerTotals returns one row per registered owner, including owners with
	// no activity in [start, end).
	OwnerTotals(ctx context.Context, start, end time.Time) ([]ledger.OwnerTotals, error)
}

type ledgerRepo struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) LedgerRepository { return &ledgerRepo{db: db} }

const eventFeed = `
SELECT t.transaction_id AS id, 'transaction' AS source, 'CREDIT' AS entry_type,
       t.owner_id, o.name AS owner_name, t.transaction_timestamp AS entry_date,
       m.name AS description, t.vehicle_number, t.quantity, t.rate_at_sale AS rate,
       t.total_cost AS amount
  FROM transactions t
  JOIN materials m ON m.material_id = t.material_id
  JOIN vehicle_owners o ON o.owner_id = t.owner_id
UNION ALL
SELECT p.pass_id, 'pass', 'CREDIT',
       p.owner_id, o.name, p.pass_date,
       'PASS', p.vehicle_number, NULL::numeric, NULL::numeric,
       p.pass_amount
  FROM owner_passes p
  JOIN vehicle_owners o ON o.owner_id = p.owner_id
UNION ALL
SELECT y.payment_id, 'payment', 'DEBIT',
       y.owner_id, o.name, y.payment_date,
       COALESCE(y.notes, 'Payment'), NULL::text, NULL::numeric, NULL::numeric,
       y.amount
  FROM owner_payments y
  JOIN vehicle_owners o ON o.owner_id = y.owner_id`

type eventRow struct {
	ID            int64
	Source        string
	EntryType     string
	OwnerID       int64
	OwnerName     string
	EntryDate     time.Time
	Description   string
	VehicleNumber *string
	Quantity      decimal.NullDecimal
	Rate          decimal.NullDecimal
	Amount        decimal.Decimal
}

func (row eventRow) event() ledger.Event {
	e := ledger.Event{
		ID:          row.ID,
		Source:      ledger.Source(row.Source),
		Kind:        ledger.Kind(row.EntryType),
		OwnerID:     row.OwnerID,
		OwnerName:   row.OwnerName,
		At:          row.EntryDate,
		Description: row.Description,
		Vehicle:     row.VehicleNumber,
		Amount:      row.Amount,
	}
	if row.Quantity.Valid {
		q := row.Quantity.Decimal
		e.Quantity = &q
	}
	if row.Rate.Valid {
		r := row.Rate.Decimal
		e.Rate = &r
	}
	return e
}

func (r *ledgerRepo) events(ctx context.Context, where string, args map[string]interface{}) ([]ledger.Event, error) {
	var rows []eventRow
	err := r.db.WithContext(ctx).
		Raw(`SELECT * FROM (`+eventFeed+`) feed WHERE `+where+` ORDER BY entry_date, entry_type, id`, args).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	events := make([]ledger.Event, len(rows))
	for i, row := range rows {
		events[i] = row.event()
	}
	return events, nil
}

func (r *ledgerRepo) OwnerEvents(ctx context.Context, ownerID int64) ([]ledger.Event, error) {
	return r.events(ctx, "owner_id = @owner", map[string]interface{}{"owner": ownerID})
}

func (r *ledgerRepo) RangeEvents(ctx context.Context, start, end time.Time) ([]ledger.Event, error) {
	return r.events(ctx, "entry_date >= @start AND entry_date < @end",
		map[string]interface{}{"start": start, "end": end})
}

type totalsRow struct {
	OwnerID     int64
	OwnerName   string
	TotalCredit decimal.Decimal
	TotalDebit  decimal.Decimal
	LastCredit  *time.Time
	LastDebit   *time.Time
}

func (r *ledgerRepo) OwnerTotals(ctx context.Context, start, end time.Time) ([]ledger.OwnerTotals, error) {
	var rows []totalsRow
	err := r.db.WithContext(ctx).Raw(`
SELECT o.owner_id, o.name AS owner_name,
       COALESCE(c.total, 0) AS total_credit,
       COALESCE(d.total, 0) AS total_debit,
       c.last_at AS last_credit,
       d.last_at AS last_debit
  FROM vehicle_owners o
  LEFT JOIN (
        SELECT owner_id, SUM(amount) AS total, MAX(at) AS last_at
          FROM (
                SELECT owner_id, total_cost AS amount, transaction_timestamp AS at
                  FROM transactions
                 WHERE transaction_timestamp >= @start AND transaction_timestamp < @end
                UNION ALL
                SELECT owner_id, pass_amount, pass_date
                  FROM owner_passes
                 WHERE pass_date >= @start AND pass_date < @end
               ) credits
         GROUP BY owner_id
       ) c ON c.owner_id = o.owner_id
  LEFT JOIN (
        SELECT owner_id, SUM(amount) AS total, MAX(payment_date) AS last_at
          FROM owner_payments
         WHERE payment_date >= @start AND payment_date < @end
         GROUP BY owner_id
       ) d ON d.owner_id = o.owner_id
 ORDER BY o.name, o.owner_id`, map[string]interface{}{"start": start, "end": end}).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make([]ledger.OwnerTotals, len(rows))
	for i, row := range rows {
		totals[i] = ledger.OwnerTotals(row)
	}
	return totals, nil
}
