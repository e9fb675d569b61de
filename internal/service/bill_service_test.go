package service

import (
	"context"
	"testing"
	"time"

	"agencyledger/internal/apierror"
	"agencyledger/internal/dto"
	"agencyledger/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ist = time.FixedZone("IST", 5*3600+1800)

type billFixture struct {
	svc       BillService
	store     *stubLedgerStore
	materials *stubMaterialRepo
	vehicles  *stubVehicleRepo
	renderer  *stubRenderer
	now       *time.Time
}

func newBillFixture(t *testing.T) *billFixture {
	t.Helper()
	materials := newStubMaterialRepo(
		model.Material{ID: 1, Name: "M SAND", Unit: "ton", RatePerUnit: dec("50"), IsActive: true},
		model.Material{ID: 2, Name: "RED BRICKS", Unit: "NO", RatePerUnit: dec("9.25"), IsActive: true},
	)
	owners := newStubOwnerRepo(
		model.Owner{ID: 1, Name: "AARON", IsActive: true},
		model.Owner{ID: 2, Name: "BASIL", IsActive: true},
	)
	store := newStubLedgerStore(materials, owners)
	vehicles := &stubVehicleRepo{}
	renderer := &stubRenderer{}
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, ist)

	f := &billFixture{store: store, materials: materials, vehicles: vehicles, renderer: renderer, now: &now}
	f.svc = NewBillService(&stubBillRepo{s: store}, materials, owners, vehicles, renderer, BillSettings{
		PassAmount: dec("200"),
		Location:   ist,
		Clock:      func() time.Time { return *f.now },
	})
	return f
}

func billReq(ownerID int64, vehicle string, includePass bool, items ...dto.BillItemRequest) dto.CreateBillRequest {
	return dto.CreateBillRequest{OwnerID: ownerID, VehicleNumber: vehicle, Items: items, IncludePass: includePass}
}

func item(materialID int64, qty string) dto.BillItemRequest {
	return dto.BillItemRequest{MaterialID: materialID, Quantity: decp(qty)}
}

func TestCreateBill_TotalIsLinesPlusPass(t *testing.T) {
	f := newBillFixture(t)

	resp, err := f.svc.Create(context.Background(), billReq(1, "KL07AB-1234", true, item(1, "10"), item(2, "100.5")))
	require.NoError(t, err)

	require.Len(t, resp.Items, 2)
	assertDec(t, "500", resp.Items[0].TotalCost)
	assertDec(t, "929.63", resp.Items[1].TotalCost)
	require.NotNil(t, resp.Pass)
	assertDec(t, "200", resp.Pass.PassAmount)
	assertDec(t, "1629.63", resp.Bill.TotalAmount)

	assert.Equal(t, "AARON", resp.Bill.OwnerName)
	assert.Equal(t, "M SAND", resp.Items[0].MaterialName)
	assert.Equal(t, resp.Bill.BillID, *resp.Items[0].BillID)
	assert.Equal(t, resp.Bill.BillID, *resp.Pass.BillID)
	assert.Equal(t, "2026-03-10", resp.Bill.BillDate)
}

func TestCreateBill_WithoutPass(t *testing.T) {
	f := newBillFixture(t)

	resp, err := f.svc.Create(context.Background(), billReq(1, "KL07AB-1234", false, item(1, "2.5")))
	require.NoError(t, err)
	assert.Nil(t, resp.Pass)
	assertDec(t, "125", resp.Bill.TotalAmount)
}

func TestCreateBill_LocksRateAtSale(t *testing.T) {
	f := newBillFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Create(ctx, billReq(1, "KL07AB-1234", false, item(1, "10")))
	require.NoError(t, err)

	f.materials.items[1].RatePerUnit = dec("65")

	got, err := f.svc.Get(ctx, resp.Bill.BillID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assertDec(t, "50", got.Items[0].RateAtSale)
	assertDec(t, "500", got.Items[0].TotalCost)
	assertDec(t, "500", got.Bill.TotalAmount)
}

func TestCreateBill_UnknownMaterialWritesNothing(t *testing.T) {
	f := newBillFixture(t)

	_, err := f.svc.Create(context.Background(), billReq(1, "KL07AB-1234", true, item(1, "10"), item(99, "1")))
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
	assert.Contains(t, err.Error(), "item 2")

	assert.Empty(t, f.store.bills)
	assert.Empty(t, f.store.txns)
	assert.Empty(t, f.store.counters)
	assert.Empty(t, f.vehicles.items)
	assert.Zero(t, f.renderer.calls)
}

func TestCreateBill_RejectsBadInput(t *testing.T) {
	f := newBillFixture(t)
	ctx := context.Background()

	cases := map[string]dto.CreateBillRequest{
		"no items":       billReq(1, "KL07AB-1234", false),
		"blank vehicle":  billReq(1, "   ", false, item(1, "1")),
		"zero quantity":  billReq(1, "KL07AB-1234", false, item(1, "0")),
		"negative qty":   billReq(1, "KL07AB-1234", false, item(1, "-3")),
		"rounds to zero": billReq(1, "KL07AB-1234", false, item(1, "0.0004")),
		"missing qty":    billReq(1, "KL07AB-1234", false, dto.BillItemRequest{MaterialID: 1}),
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.svc.Create(ctx, req)
			assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
		})
	}
	assert.Empty(t, f.store.bills)
}

func TestCreateBill_UnknownOwner(t *testing.T) {
	f := newBillFixture(t)

	_, err := f.svc.Create(context.Background(), billReq(42, "KL07AB-1234", false, item(1, "1")))
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
	assert.Empty(t, f.store.bills)
}

func TestCreateBill_StorageFailureAborts(t *testing.T) {
	f := newBillFixture(t)
	f.store.failCreate = errBoom

	_, err := f.svc.Create(context.Background(), billReq(1, "KL07AB-1234", false, item(1, "1")))
	assert.Equal(t, apierror.KindTransactionAbort, apierror.KindOf(err))
	assert.ErrorIs(t, err, errBoom)
}

func TestCreateBill_DailyNumbersRestartEachDay(t *testing.T) {
	f := newBillFixture(t)
	ctx := context.Background()

	var got []int
	for i := 0; i < 3; i++ {
		resp, err := f.svc.Create(ctx, billReq(int64(i%2+1), "KL07AB-1234", false, item(1, "1")))
		require.NoError(t, err)
		got = append(got, resp.Bill.DailyBillNo)
	}
	assert.Equal(t, []int{1, 2, 3}, got)

	// 00:30 the next morning in the business zone, still the 10th in UTC.
	*f.now = time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC)
	resp, err := f.svc.Create(ctx, billReq(1, "KL07AB-1234", false, item(1, "1")))
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Bill.DailyBillNo)
	assert.Equal(t, "2026-03-11", resp.Bill.BillDate)
}

func TestCreateBill_UpsertsNormalizedVehicle(t *testing.T) {
	f := newBillFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, billReq(1, "kl07 ab--1234", false, item(1, "1")))
	require.NoError(t, err)
	first := *f.now

	*f.now = f.now.Add(2 * time.Hour)
	resp, err := f.svc.Create(ctx, billReq(1, "KL07AB-1234", false, item(1, "1")))
	require.NoError(t, err)
	assert.Equal(t, "KL07AB-1234", resp.Bill.VehicleNumber)

	require.Len(t, f.vehicles.items, 1)
	v := f.vehicles.items[0]
	assert.Equal(t, "KL07AB-1234", v.VehicleNumber)
	assert.True(t, v.LastUsedAt.After(first))
}

func TestCreateBill_DocumentOutcome(t *testing.T) {
	t.Run("generated", func(t *testing.T) {
		f := newBillFixture(t)
		resp, err := f.svc.Create(context.Background(), billReq(1, "KL07AB-1234", true, item(1, "1")))
		require.NoError(t, err)

		assert.Equal(t, dto.DocumentGenerated, resp.Document.Status)
		assert.True(t, resp.Bill.HasDocument)
		require.NotNil(t, f.renderer.last)
		assert.Equal(t, "AARON", f.renderer.last.Owner.Name)
		assert.Len(t, f.renderer.last.Items, 1)
		assert.NotNil(t, f.store.bills[resp.Bill.BillID].PDFPath)
	})

	t.Run("renderer failure keeps the bill", func(t *testing.T) {
		f := newBillFixture(t)
		f.renderer.err = errBoom

		resp, err := f.svc.Create(context.Background(), billReq(1, "KL07AB-1234", false, item(1, "1")))
		require.NoError(t, err)
		assert.Equal(t, dto.DocumentFailed, resp.Document.Status)
		assert.Equal(t, "boom", resp.Document.Error)
		assert.False(t, resp.Bill.HasDocument)

		require.Len(t, f.store.bills, 1)
		assert.Nil(t, f.store.bills[resp.Bill.BillID].PDFPath)
		assert.Len(t, f.store.txns, 1)
	})

	t.Run("path not stored", func(t *testing.T) {
		f := newBillFixture(t)
		f.store.failSetPDF = errBoom

		resp, err := f.svc.Create(context.Background(), billReq(1, "KL07AB-1234", false, item(1, "1")))
		require.NoError(t, err)
		assert.Equal(t, dto.DocumentFailed, resp.Document.Status)
		assert.Len(t, f.store.bills, 1)
	})
}

func TestCreateBill_KeepsMattamAnnotations(t *testing.T) {
	f := newBillFixture(t)
	mattam := dto.LooseString("2")
	req := billReq(1, "KL07AB-1234", false, dto.BillItemRequest{
		MaterialID: 1, Quantity: decp("1"), Mattam: &mattam, GrillMattam: true,
	})

	resp, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.Items[0].Mattam)
	assert.Equal(t, "2", *resp.Items[0].Mattam)
	assert.True(t, resp.Items[0].GrillMattam)
	assert.False(t, resp.Items[0].MattamChecked)
}

func TestBillDocumentPath(t *testing.T) {
	f := newBillFixture(t)
	ctx := context.Background()
	f.renderer.err = errBoom

	resp, err := f.svc.Create(ctx, billReq(1, "KL07AB-1234", false, item(1, "1")))
	require.NoError(t, err)

	_, err = f.svc.DocumentPath(ctx, resp.Bill.BillID)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))

	_, err = f.svc.DocumentPath(ctx, 999)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))

	// The stored path points at a file that does not exist on this machine.
	f.renderer.err = nil
	outcome, err := f.svc.RegenerateDocument(ctx, resp.Bill.BillID)
	require.NoError(t, err)
	assert.Equal(t, dto.DocumentGenerated, outcome.Status)
	_, err = f.svc.DocumentPath(ctx, resp.Bill.BillID)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}

func TestBillList(t *testing.T) {
	f := newBillFixture(t)
	ctx := context.Background()
	for _, owner := range []int64{1, 2, 1} {
		_, err := f.svc.Create(ctx, billReq(owner, "KL07AB-1234", false, item(1, "1")))
		require.NoError(t, err)
	}

	bills, err := f.svc.List(ctx, dto.BillFilter{OwnerID: 1, Limit: 100})
	require.NoError(t, err)
	require.Len(t, bills, 2)
	assert.Greater(t, bills[0].BillID, bills[1].BillID)
}
