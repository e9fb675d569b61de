// Package ledger merges an owner's material sales, passes and payments into a
// single chronological feed and computes the running balance over it.
//
// Ordering is by timestamp ascending; on equal timestamps credits come before
// debits, then the lower source id first. Displayed balances depend on this
// order, so every consumer (owner ledger, weekly report, exports) sorts through
// Sort.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the accounting direction of an event.
type Kind string

const (
	Credit Kind = "CREDIT"
	Debit  Kind = "DEBIT"
)

// Source names the table an event was read from.
type Source string

const (
	SourceTransaction Source = "transaction"
	SourcePass        Source = "pass"
	SourcePayment     Source = "payment"
)

// PassLabel is the description used for pass credits.
const PassLabel = "PASS"

// Event is one row of the merged feed. Quantity and Rate are only set for
// material credits; Vehicle only for credits.
type Event struct {
	ID          int64
	Source      Source
	Kind        Kind
	OwnerID     int64
	OwnerName   string
	At          time.Time
	Description string
	Vehicle     *string
	Quantity    *decimal.Decimal
	Rate        *decimal.Decimal
	Amount      decimal.Decimal
}

// Signed returns the amount as it affects the balance.
func (e Event) Signed() decimal.Decimal {
	if e.Kind == Debit {
		return e.Amount.Neg()
	}
	return e.Amount
}

// Entry is an event with the balance after applying it.
type Entry struct {
	Event
	Balance decimal.Decimal
}

func kindRank(k Kind) int {
	if k == Credit {
		return 0
	}
	return 1
}

// Less reports whether a sorts before b.
func Less(a, b Event) bool {
	if !a.At.Equal(b.At) {
		return a.At.Before(b.At)
	}
	if ra, rb := kindRank(a.Kind), kindRank(b.Kind); ra != rb {
		return ra < rb
	}
	return a.ID < b.ID
}

// Sort orders events in place.
func Sort(events []Event) {
	sort.SliceStable(events, func(i, j int) bool { return Less(events[i], events[j]) })
}

// Running sorts a copy of events and attaches the cumulative balance to each.
// No seed row is emitted: the first entry's balance is its own signed amount.
func Running(events []Event) []Entry {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	Sort(sorted)

	entries := make([]Entry, len(sorted))
	balance := decimal.Zero
	for i, e := range sorted {
		balance = balance.Add(e.Signed())
		entries[i] = Entry{Event: e, Balance: balance}
	}
	return entries
}

// Balance returns the final balance of events without materializing entries.
func Balance(events []Event) decimal.Decimal {
	total := decimal.Zero
	for _, e := range events {
		total = total.Add(e.Signed())
	}
	return total
}
