package service

import (
	"context"
	"time"

	"agencyledger/internal/apierror"
	"agencyledger/internal/dto"
	"agencyledger/internal/model"
	"agencyledger/internal/repository"
)

// PaymentService records debits. Balances are never stored; the ledger derives
// them on read.
type PaymentService interface {
	Record(ctx context.Context, ownerID int64, req dto.RecordPaymentRequest) (*dto.PaymentResponse, error)
}

type paymentService struct {
	repo   repository.PaymentRepository
	owners repository.OwnerRepository
	loc    *time.Location // calendar for date-only payment dates
	clock  Clock
}

func NewPaymentService(repo repository.PaymentRepository, owners repository.OwnerRepository, loc *time.Location, clock Clock) PaymentService {
	if loc == nil {
		loc = time.UTC
	}
	return &paymentService{repo: repo, owners: owners, loc: loc, clock: clock}
}

func (s *paymentService) Record(ctx context.Context, ownerID int64, req dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	if req.Amount == nil || !req.Amount.Round(2).IsPositive() {
		return nil, apierror.Validation("Valid amount is required")
	}
	if _, err := s.owners.FindByID(ctx, ownerID); err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("owner not found")
		}
		return nil, err
	}

	now := s.clock.now()
	p := &model.Payment{
		OwnerID:     ownerID,
		Amount:      req.Amount.Round(2),
		Mode:        trimmedOrNil(req.Mode),
		Notes:       trimmedOrNil(req.Notes),
		PaymentDate: now,
	}
	if req.PaymentDate != nil && !req.PaymentDate.IsZero() {
		p.PaymentDate = req.PaymentDate.Resolve(now, s.loc)
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := paymentToResponse(p)
	return &resp, nil
}
