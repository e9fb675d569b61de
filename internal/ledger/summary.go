package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// OwnerTotals are the per-owner aggregates of a date range as read from storage.
// LastCredit/LastDebit are nil when the owner had no such activity.
type OwnerTotals struct {
	OwnerID     int64
	OwnerName   string
	TotalCredit decimal.Decimal
	TotalDebit  decimal.Decimal
	LastCredit  *time.Time
	LastDebit   *time.Time
}

// Balance is credit minus debit for the range.
func (t OwnerTotals) Balance() decimal.Decimal { return t.TotalCredit.Sub(t.TotalDebit) }

// LastActivity is the later of LastCredit and LastDebit, nil when both are.
func (t OwnerTotals) LastActivity() *time.Time {
	switch {
	case t.LastCredit == nil:
		return t.LastDebit
	case t.LastDebit == nil:
		return t.LastCredit
	case t.LastDebit.After(*t.LastCredit):
		return t.LastDebit
	default:
		return t.LastCredit
	}
}

// SortOrder selects how summary rows are presented.
type SortOrder string

const (
	ByName     SortOrder = "name"
	ByActivity SortOrder = "activity"
)

// SortTotals orders rows for display. ByActivity puts the most recent activity
// first and owners without activity last, by name.
func SortTotals(rows []OwnerTotals, order SortOrder) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if order == ByActivity {
			la, lb := a.LastActivity(), b.LastActivity()
			switch {
			case la != nil && lb == nil:
				return true
			case la == nil && lb != nil:
				return false
			case la != nil && lb != nil && !la.Equal(*lb):
				return la.After(*lb)
			}
		}
		if a.OwnerName != b.OwnerName {
			return a.OwnerName < b.OwnerName
		}
		return a.OwnerID < b.OwnerID
	})
}
