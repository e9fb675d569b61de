package service

import (
	"context"

	"agencyledger/internal/apierror"
	"agencyledger/internal/dto"
	"agencyledger/internal/ledger"
	"agencyledger/internal/repository"

	"github.com/shopspring/decimal"
)

type LedgerService interface {
	// OwnerLedger returns every event of the owner, oldest first, with the
	// running balance. An owner without events gets an empty slice.
	OwnerLedger(ctx context.Context, ownerID int64) ([]dto.LedgerEntryResponse, error)
}

type ledgerService struct {
	repo   repository.LedgerRepository
	owners repository.OwnerRepository
}

func NewLedgerService(repo repository.LedgerRepository, owners repository.OwnerRepository) LedgerService {
	return &ledgerService{repo: repo, owners: owners}
}

func (s *ledgerService) OwnerLedger(ctx context.Context, ownerID int64) ([]dto.LedgerEntryResponse, error) {
	if _, err := s.owners.FindByID(ctx, ownerID); err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("owner not found")
		}
		return nil, err
	}
	events, err := s.repo.OwnerEvents(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	entries := ledger.Running(events)
	resp := make([]dto.LedgerEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = entryToResponse(e)
	}
	return resp, nil
}

func entryToResponse(e ledger.Entry) dto.LedgerEntryResponse {
	credit, debit := decimal.Zero, decimal.Zero
	if e.Kind == ledger.Credit {
		credit = e.Amount
	} else {
		debit = e.Amount
	}
	return dto.LedgerEntryResponse{
		ID:            e.ID,
		Source:        string(e.Source),
		EntryDate:     e.At,
		EntryType:     string(e.Kind),
		Description:   e.Description,
		MaterialName:  e.Description,
		VehicleNumber: e.Vehicle,
		Quantity:      e.Quantity,
		RateAtSale:    e.Rate,
		Amount:        e.Amount,
		SignedAmount:  e.Signed(),
		CreditAmount:  credit,
		DebitAmount:   debit,
		Balance:       e.Balance,
	}
}
