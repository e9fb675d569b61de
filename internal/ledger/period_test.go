package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByOwnerDay_CarriesBalanceAcrossDays(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	qty, rate := dec("10"), dec("50")
	day1 := time.Date(2026, 3, 10, 10, 0, 0, 0, ist)
	day2 := day1.AddDate(0, 0, 1)

	events := []Event{
		{ID: 1, Kind: Credit, Source: SourceTransaction, OwnerID: 2, OwnerName: "BALA", At: day1, Description: "M SAND", Quantity: &qty, Rate: &rate, Amount: dec("500")},
		{ID: 1, Kind: Credit, Source: SourcePass, OwnerID: 2, OwnerName: "BALA", At: day1, Description: PassLabel, Amount: dec("200")},
		{ID: 1, Kind: Debit, Source: SourcePayment, OwnerID: 2, OwnerName: "BALA", At: day2, Description: "cash", Amount: dec("300")},
		{ID: 2, Kind: Credit, Source: SourceTransaction, OwnerID: 1, OwnerName: "AARON", At: day2, Description: "BRICKS", Amount: dec("1000")},
	}

	report := GroupByOwnerDay(events, ist)
	require.Len(t, report, 2)
	assert.Equal(t, "AARON", report[0].OwnerName)

	bala := report[1]
	require.Len(t, bala.Days, 2)

	d1 := bala.Days[0]
	assert.Equal(t, "2026-03-10", d1.Date)
	require.Len(t, d1.Lines, 2)
	assert.True(t, d1.DayTotal.Equal(dec("700")))
	assert.True(t, d1.Paid.IsZero())
	assert.True(t, d1.Balance.Equal(dec("700")))

	d2 := bala.Days[1]
	assert.Equal(t, "2026-03-11", d2.Date)
	require.Len(t, d2.Lines, 1)
	assert.Equal(t, PaidLabel, d2.Lines[0].Material)
	assert.Nil(t, d2.Lines[0].Quantity)
	assert.True(t, d2.Paid.Equal(dec("300")))
	assert.True(t, d2.Balance.Equal(dec("400")))
}

func TestGroupByOwnerDay_UsesBusinessCalendarDay(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 20:00 UTC is already the next day in India.
	at := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
	report := GroupByOwnerDay([]Event{credit(1, at, "10")}, ist)
	require.Len(t, report, 1)
	assert.Equal(t, "2026-03-11", report[0].Days[0].Date)
}
