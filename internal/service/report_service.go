package service

import (
	"context"
	"time"

	"agencyledger/internal/apierror"
	"agencyledger/internal/dto"
	"agencyledger/internal/ledger"
	"agencyledger/internal/repository"
)

type ReportService interface {
	// OwnersSummary totals every owner's credits and debits inside the range.
	// Owners without activity are included with zero totals.
	OwnersSummary(ctx context.Context, q dto.ReportQuery) (*dto.OwnersSummaryResponse, error)
	// Weekly groups the range's events by owner and calendar day, carrying each
	// owner's running balance across days.
	Weekly(ctx context.Context, q dto.ReportQuery) (*dto.WeeklyReportResponse, error)
}

type reportService struct {
	repo  repository.LedgerRepository
	loc   *time.Location
	clock Clock
}

func NewReportService(repo repository.LedgerRepository, loc *time.Location, clock Clock) ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &reportService{repo: repo, loc: loc, clock: clock}
}

func (s *reportService) OwnersSummary(ctx context.Context, q dto.ReportQuery) (*dto.OwnersSummaryResponse, error) {
	order := ledger.SortOrder(q.Sort)
	switch order {
	case "":
		order = ledger.ByName
	case ledger.ByName, ledger.ByActivity:
	default:
		return nil, apierror.Validationf("sort must be %q or %q", ledger.ByName, ledger.ByActivity)
	}

	r, err := ledger.ResolveRange(q.From, q.To, s.clock.now(), s.loc)
	if err != nil {
		return nil, apierror.Validation(err.Error())
	}
	start, end := r.Bounds()

	totals, err := s.repo.OwnerTotals(ctx, start, end)
	if err != nil {
		return nil, err
	}
	ledger.SortTotals(totals, order)

	resp := &dto.OwnersSummaryResponse{From: r.From, To: r.To, Owners: make([]dto.OwnerSummaryRow, len(totals))}
	for i, t := range totals {
		resp.Owners[i] = dto.OwnerSummaryRow{
			OwnerID:      t.OwnerID,
			OwnerName:    t.OwnerName,
			TotalCredit:  t.TotalCredit,
			TotalDebit:   t.TotalDebit,
			Balance:      t.Balance(),
			LastActivity: t.LastActivity(),
		}
	}
	return resp, nil
}

func (s *reportService) Weekly(ctx context.Context, q dto.ReportQuery) (*dto.WeeklyReportResponse, error) {
	if q.From == "" || q.To == "" {
		return nil, apierror.Validation("from and to dates are required")
	}
	r, err := ledger.ResolveRange(q.From, q.To, s.clock.now(), s.loc)
	if err != nil {
		return nil, apierror.Validation(err.Error())
	}
	start, end := r.Bounds()

	events, err := s.repo.RangeEvents(ctx, start, end)
	if err != nil {
		return nil, err
	}

	periods := ledger.GroupByOwnerDay(events, s.loc)
	resp := &dto.WeeklyReportResponse{From: r.From, To: r.To, Owners: make([]dto.WeeklyOwner, len(periods))}
	for i, p := range periods {
		owner := dto.WeeklyOwner{OwnerID: p.OwnerID, OwnerName: p.OwnerName, Entries: make([]dto.WeeklyDay, len(p.Days))}
		for j, d := range p.Days {
			day := dto.WeeklyDay{
				Date:     d.Date,
				Items:    make([]dto.WeeklyItem, len(d.Lines)),
				DayTotal: d.DayTotal,
				Paid:     d.Paid,
				Balance:  d.Balance,
			}
			for k, l := range d.Lines {
				day.Items[k] = dto.WeeklyItem{Material: l.Material, Qty: l.Quantity, Rate: l.Rate, Total: l.Total}
			}
			owner.Entries[j] = day
		}
		resp.Owners[i] = owner
	}
	return resp, nil
}
