package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// PaidLabel is the line label for payments in the period report.
const PaidLabel = "PAID"

// Line is one printed row inside a day bucket.
type Line struct {
	Kind     Kind
	Material string
	Quantity *decimal.Decimal
	Rate     *decimal.Decimal
	Total    decimal.Decimal
}

// Day collects one owner's lines for a calendar date. Balance is the owner's
// running balance at the end of the day, carried across days.
type Day struct {
	Date     string
	Lines    []Line
	DayTotal decimal.Decimal
	Paid     decimal.Decimal
	Balance  decimal.Decimal
}

// OwnerPeriod is one owner's section of the period report.
type OwnerPeriod struct {
	OwnerID   int64
	OwnerName string
	Days      []Day
}

// GroupByOwnerDay buckets events into owner → date sections. Dates are calendar
// days in loc. The running balance starts at zero for each owner at the start
// of the range and is never reset per day. Owners are ordered by name, then id.
func GroupByOwnerDay(events []Event, loc *time.Location) []OwnerPeriod {
	byOwner := make(map[int64][]Event)
	names := make(map[int64]string)
	for _, e := range events {
		byOwner[e.OwnerID] = append(byOwner[e.OwnerID], e)
		if _, ok := names[e.OwnerID]; !ok {
			names[e.OwnerID] = e.OwnerName
		}
	}

	ids := make([]int64, 0, len(byOwner))
	for id := range byOwner {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if names[ids[i]] != names[ids[j]] {
			return names[ids[i]] < names[ids[j]]
		}
		return ids[i] < ids[j]
	})

	out := make([]OwnerPeriod, 0, len(ids))
	for _, id := range ids {
		out = append(out, OwnerPeriod{
			OwnerID:   id,
			OwnerName: names[id],
			Days:      groupDays(Running(byOwner[id]), loc),
		})
	}
	return out
}

func groupDays(entries []Entry, loc *time.Location) []Day {
	var days []Day
	for _, e := range entries {
		date := e.At.In(loc).Format(time.DateOnly)
		if len(days) == 0 || days[len(days)-1].Date != date {
			days = append(days, Day{Date: date, DayTotal: decimal.Zero, Paid: decimal.Zero})
		}
		d := &days[len(days)-1]

		if e.Kind == Credit {
			d.Lines = append(d.Lines, Line{
				Kind:     Credit,
				Material: e.Description,
				Quantity: e.Quantity,
				Rate:     e.Rate,
				Total:    e.Amount,
			})
			d.DayTotal = d.DayTotal.Add(e.Amount)
		} else {
			d.Lines = append(d.Lines, Line{Kind: Debit, Material: PaidLabel, Total: e.Amount})
			d.Paid = d.Paid.Add(e.Amount)
		}
		d.Balance = e.Balance
	}
	return days
}
