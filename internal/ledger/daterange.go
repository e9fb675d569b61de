package ledger

import (
	"fmt"
	"time"
)

// DateRange is an inclusive range of calendar days in a business timezone.
type DateRange struct {
	From string // YYYY-MM-DD
	To   string // YYYY-MM-DD
	loc  *time.Location
}

// ResolveRange applies the report defaults: a missing endpoint is copied from
// the other one, and when both are missing the range is today in loc.
func ResolveRange(from, to string, now time.Time, loc *time.Location) (DateRange, error) {
	switch {
	case from == "" && to == "":
		today := now.In(loc).Format(time.DateOnly)
		from, to = today, today
	case from == "":
		from = to
	case to == "":
		to = from
	}

	start, err := time.ParseInLocation(time.DateOnly, from, loc)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid from date %q", from)
	}
	end, err := time.ParseInLocation(time.DateOnly, to, loc)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid to date %q", to)
	}
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("from date %s is after to date %s", from, to)
	}
	return DateRange{From: from, To: to, loc: loc}, nil
}

// Bounds returns the half-open instant range [start, end) covering every day.
func (r DateRange) Bounds() (time.Time, time.Time) {
	loc := r.loc
	if loc == nil {
		loc = time.UTC
	}
	start, _ := time.ParseInLocation(time.DateOnly, r.From, loc)
	last, _ := time.ParseInLocation(time.DateOnly, r.To, loc)
	return start, last.AddDate(0, 0, 1)
}

// CalendarDate returns t's calendar day in loc as a UTC midnight, the form
// stored in DATE columns so the driver never shifts it across zones.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
