package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"agencyledger/internal/dto"
	"agencyledger/internal/ledger"
	"agencyledger/internal/model"
	"agencyledger/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// ── Helpers ───────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decp(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

func fixedClock(at time.Time) Clock { return func() time.Time { return at } }

// ── Materials ─────────────────────────────────────────────────────────────────

type stubMaterialRepo struct {
	items  map[int64]*model.Material
	nextID int64
}

func newStubMaterialRepo(ms ...model.Material) *stubMaterialRepo {
	r := &stubMaterialRepo{items: make(map[int64]*model.Material)}
	for i := range ms {
		m := ms[i]
		r.items[m.ID] = &m
		if m.ID > r.nextID {
			r.nextID = m.ID
		}
	}
	return r
}

func (r *stubMaterialRepo) Create(_ context.Context, m *model.Material) error {
	for _, existing := range r.items {
		if existing.Name == m.Name {
			return repository.ErrDuplicate
		}
	}
	r.nextID++
	m.ID = r.nextID
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *stubMaterialRepo) FindByID(_ context.Context, id int64) (*model.Material, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *stubMaterialRepo) FindByIDs(_ context.Context, _ *gorm.DB, ids []int64) ([]model.Material, error) {
	var out []model.Material
	for _, id := range ids {
		if m, ok := r.items[id]; ok {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMaterialRepo) List(_ context.Context, includeInactive bool) ([]model.Material, error) {
	var out []model.Material
	for _, m := range r.items {
		if includeInactive || m.IsActive {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubMaterialRepo) Update(_ context.Context, m *model.Material) error {
	if _, ok := r.items[m.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range r.items {
		if id != m.ID && existing.Name == m.Name {
			return repository.ErrDuplicate
		}
	}
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *stubMaterialRepo) SetActive(_ context.Context, id int64, active bool) error {
	m, ok := r.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	m.IsActive = active
	return nil
}

var _ repository.MaterialRepository = (*stubMaterialRepo)(nil)

// ── Owners ────────────────────────────────────────────────────────────────────

type stubOwnerRepo struct {
	items  map[int64]*model.Owner
	nextID int64
}

func newStubOwnerRepo(owners ...model.Owner) *stubOwnerRepo {
	r := &stubOwnerRepo{items: make(map[int64]*model.Owner)}
	for i := range owners {
		o := owners[i]
		r.items[o.ID] = &o
		if o.ID > r.nextID {
			r.nextID = o.ID
		}
	}
	return r
}

func (r *stubOwnerRepo) Create(_ context.Context, o *model.Owner) error {
	for _, existing := range r.items {
		if existing.Name == o.Name {
			return repository.ErrDuplicate
		}
	}
	r.nextID++
	o.ID = r.nextID
	cp := *o
	r.items[o.ID] = &cp
	return nil
}

func (r *stubOwnerRepo) FindByID(_ context.Context, id int64) (*model.Owner, error) {
	o, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *stubOwnerRepo) List(_ context.Context, includeInactive bool) ([]model.Owner, error) {
	var out []model.Owner
	for _, o := range r.items {
		if includeInactive || o.IsActive {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubOwnerRepo) Update(_ context.Context, o *model.Owner) error {
	if _, ok := r.items[o.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *o
	r.items[o.ID] = &cp
	return nil
}

func (r *stubOwnerRepo) SetActive(_ context.Context, id int64, active bool) error {
	o, ok := r.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	o.IsActive = active
	return nil
}

var _ repository.OwnerRepository = (*stubOwnerRepo)(nil)

// ── Vehicles ──────────────────────────────────────────────────────────────────

type stubVehicleRepo struct {
	items  []*model.Vehicle
	nextID int64
}

func (r *stubVehicleRepo) Search(_ context.Context, ownerID int64, q string, limit int) ([]model.Vehicle, error) {
	var out []model.Vehicle
	for _, v := range r.items {
		if v.OwnerID == ownerID && strings.Contains(v.VehicleNumber, q) {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastUsedAt.After(out[j].LastUsedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubVehicleRepo) Upsert(_ context.Context, _ *gorm.DB, v *model.Vehicle) error {
	for _, existing := range r.items {
		if existing.OwnerID == v.OwnerID && existing.VehicleNumber == v.VehicleNumber {
			if v.LastUsedAt.After(existing.LastUsedAt) {
				existing.LastUsedAt = v.LastUsedAt
			}
			*v = *existing
			return nil
		}
	}
	r.nextID++
	v.ID = r.nextID
	cp := *v
	r.items = append(r.items, &cp)
	return nil
}

func (r *stubVehicleRepo) Delete(_ context.Context, id int64) error {
	for i, v := range r.items {
		if v.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

var _ repository.VehicleRepository = (*stubVehicleRepo)(nil)

// ── Bills and transactions ────────────────────────────────────────────────────

// stubLedgerStore backs both the bill and the transaction stubs so that
// RecomputeTotal sees line edits.
type stubLedgerStore struct {
	bills     map[int64]*model.Bill
	txns      map[int64]*model.Transaction
	counters  map[time.Time]int
	materials *stubMaterialRepo
	owners    *stubOwnerRepo
	nextBill  int64
	nextTxn   int64
	nextPass  int64

	failCreate error
	failSetPDF error
}

func newStubLedgerStore(materials *stubMaterialRepo, owners *stubOwnerRepo) *stubLedgerStore {
	return &stubLedgerStore{
		bills:     make(map[int64]*model.Bill),
		txns:      make(map[int64]*model.Transaction),
		counters:  make(map[time.Time]int),
		materials: materials,
		owners:    owners,
	}
}

type stubBillRepo struct{ s *stubLedgerStore }

func (r *stubBillRepo) Create(_ context.Context, _ *gorm.DB, b *model.Bill) error {
	s := r.s
	if s.failCreate != nil {
		return s.failCreate
	}
	s.nextBill++
	b.ID = s.nextBill
	for i := range b.Items {
		s.nextTxn++
		b.Items[i].ID = s.nextTxn
		b.Items[i].BillID = &b.ID
		item := b.Items[i]
		s.txns[item.ID] = &item
	}
	if b.Pass != nil {
		s.nextPass++
		b.Pass.ID = s.nextPass
		b.Pass.BillID = &b.ID
	}
	header := *b
	header.Items = nil
	s.bills[b.ID] = &header
	return nil
}

func (r *stubBillRepo) NextDailyNo(_ context.Context, _ *gorm.DB, billDate time.Time) (int, error) {
	r.s.counters[billDate]++
	return r.s.counters[billDate], nil
}

func (r *stubBillRepo) RecomputeTotal(_ context.Context, _ *gorm.DB, id int64) error {
	b, ok := r.s.bills[id]
	if !ok {
		return repository.ErrNotFound
	}
	total := decimal.Zero
	for _, t := range r.s.txns {
		if t.BillID != nil && *t.BillID == id {
			total = total.Add(t.TotalCost)
		}
	}
	if b.IncludePass && b.Pass != nil {
		total = total.Add(b.Pass.PassAmount)
	}
	b.TotalAmount = total
	return nil
}

func (r *stubBillRepo) FindByID(ctx context.Context, id int64) (*model.Bill, error) {
	b, ok := r.s.bills[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *b
	cp.Owner, _ = r.s.owners.FindByID(ctx, b.OwnerID)
	for _, t := range r.s.txns {
		if t.BillID != nil && *t.BillID == id {
			item := *t
			item.Material, _ = r.s.materials.FindByID(ctx, t.MaterialID)
			cp.Items = append(cp.Items, item)
		}
	}
	sort.Slice(cp.Items, func(i, j int) bool { return cp.Items[i].ID < cp.Items[j].ID })
	return &cp, nil
}

func (r *stubBillRepo) List(_ context.Context, filter dto.BillFilter) ([]model.Bill, error) {
	var out []model.Bill
	for _, b := range r.s.bills {
		if filter.OwnerID == 0 || b.OwnerID == filter.OwnerID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *stubBillRepo) SetPDFPath(_ context.Context, id int64, path string) error {
	if r.s.failSetPDF != nil {
		return r.s.failSetPDF
	}
	b, ok := r.s.bills[id]
	if !ok {
		return repository.ErrNotFound
	}
	b.PDFPath = &path
	return nil
}

func (r *stubBillRepo) DB() *gorm.DB { return nil }

var _ repository.BillRepository = (*stubBillRepo)(nil)

type stubTransactionRepo struct{ s *stubLedgerStore }

func (r *stubTransactionRepo) Create(_ context.Context, _ *gorm.DB, t *model.Transaction) error {
	r.s.nextTxn++
	t.ID = r.s.nextTxn
	cp := *t
	r.s.txns[t.ID] = &cp
	return nil
}

func (r *stubTransactionRepo) FindByID(ctx context.Context, id int64) (*model.Transaction, error) {
	t, ok := r.s.txns[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	cp.Material, _ = r.s.materials.FindByID(ctx, t.MaterialID)
	return &cp, nil
}

func (r *stubTransactionRepo) Update(_ context.Context, _ *gorm.DB, t *model.Transaction) error {
	if _, ok := r.s.txns[t.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *t
	cp.Material = nil
	r.s.txns[t.ID] = &cp
	return nil
}

func (r *stubTransactionRepo) Delete(_ context.Context, _ *gorm.DB, id int64) error {
	if _, ok := r.s.txns[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.txns, id)
	return nil
}

var _ repository.TransactionRepository = (*stubTransactionRepo)(nil)

// ── Payments and ledger ───────────────────────────────────────────────────────

type stubPaymentRepo struct{ payments []model.Payment }

func (r *stubPaymentRepo) Create(_ context.Context, p *model.Payment) error {
	p.ID = int64(len(r.payments) + 1)
	r.payments = append(r.payments, *p)
	return nil
}

var _ repository.PaymentRepository = (*stubPaymentRepo)(nil)

type stubLedgerRepo struct {
	events []ledger.Event
	totals []ledger.OwnerTotals

	gotStart, gotEnd time.Time
}

func (r *stubLedgerRepo) OwnerEvents(_ context.Context, ownerID int64) ([]ledger.Event, error) {
	var out []ledger.Event
	for _, e := range r.events {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubLedgerRepo) RangeEvents(_ context.Context, start, end time.Time) ([]ledger.Event, error) {
	r.gotStart, r.gotEnd = start, end
	var out []ledger.Event
	for _, e := range r.events {
		if !e.At.Before(start) && e.At.Before(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubLedgerRepo) OwnerTotals(_ context.Context, start, end time.Time) ([]ledger.OwnerTotals, error) {
	r.gotStart, r.gotEnd = start, end
	out := make([]ledger.OwnerTotals, len(r.totals))
	copy(out, r.totals)
	return out, nil
}

var _ repository.LedgerRepository = (*stubLedgerRepo)(nil)

// ── Renderer ──────────────────────────────────────────────────────────────────

type stubRenderer struct {
	err   error
	calls int
	last  *model.Bill
}

func (r *stubRenderer) Render(b *model.Bill) (string, error) {
	r.calls++
	r.last = b
	if r.err != nil {
		return "", r.err
	}
	return "/tmp/bills/" + strings.ToLower(b.VehicleNumber) + ".pdf", nil
}

var errBoom = errors.New("boom")
