package service

import (
	"context"

	"agencyledger/internal/apierror"
	"agencyledger/internal/dto"
	"agencyledger/internal/model"
	"agencyledger/internal/repository"

	"gorm.io/gorm"
)

// TransactionService handles single sale lines: quick sales outside a bill and
// corrections to recorded lines. Corrections keep the parent bill's total equal
// to the sum of its lines plus pass.
type TransactionService interface {
	Create(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionChangeResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateTransactionRequest) (*dto.TransactionChangeResponse, error)
	Delete(ctx context.Context, id int64) (*dto.TransactionChangeResponse, error)
}

type transactionService struct {
	repo      repository.TransactionRepository
	bills     repository.BillRepository
	materials repository.MaterialRepository
	owners    repository.OwnerRepository
	clock     Clock
}

func NewTransactionService(
	repo repository.TransactionRepository,
	bills repository.BillRepository,
	materials repository.MaterialRepository,
	owners repository.OwnerRepository,
	clock Clock,
) TransactionService {
	return &transactionService{repo: repo, bills: bills, materials: materials, owners: owners, clock: clock}
}

func (s *transactionService) Create(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionChangeResponse, error) {
	vehicle := NormalizeVehicle(req.VehicleNumber)
	if req.OwnerID <= 0 || req.MaterialID <= 0 || vehicle == "" || req.Quantity == nil {
		return nil, apierror.Validation("owner_id, material_id, vehicle_number and quantity are required")
	}
	qty := req.Quantity.Round(3)
	if !qty.IsPositive() {
		return nil, apierror.Validation("quantity must be greater than zero")
	}
	if _, err := s.owners.FindByID(ctx, req.OwnerID); err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("owner not found")
		}
		return nil, apierror.Abort("Failed to create transaction", err)
	}

	var t model.Transaction
	err := runTx(ctx, s.bills.DB(), func(tx *gorm.DB) error {
		found, err := s.materials.FindByIDs(ctx, tx, []int64{req.MaterialID})
		if err != nil {
			return err
		}
		if len(found) == 0 {
			return apierror.Validationf("unknown material %d", req.MaterialID)
		}
		m := found[0]
		t = model.Transaction{
			OwnerID:              req.OwnerID,
			MaterialID:           m.ID,
			VehicleNumber:        vehicle,
			Quantity:             qty,
			RateAtSale:           m.RatePerUnit,
			TotalCost:            qty.Mul(m.RatePerUnit).Round(2),
			TransactionTimestamp: s.clock.now(),
		}
		if err := s.repo.Create(ctx, tx, &t); err != nil {
			return err
		}
		t.Material = &m
		return nil
	})
	if err != nil {
		if apierror.Is(err, apierror.KindValidation) {
			return nil, err
		}
		return nil, apierror.Abort("Failed to create transaction", err)
	}
	return &dto.TransactionChangeResponse{
		Message:     "Transaction created successfully",
		Transaction: transactionToResponse(&t),
	}, nil
}

func (s *transactionService) Update(ctx context.Context, id int64, req dto.UpdateTransactionRequest) (*dto.TransactionChangeResponse, error) {
	vehicle := NormalizeVehicle(req.VehicleNumber)
	if vehicle == "" || req.Quantity == nil || req.RateAtSale == nil {
		return nil, apierror.Validation("vehicle_number, quantity and rate_at_sale are required")
	}
	qty, rate := req.Quantity.Round(3), req.RateAtSale.Round(2)
	if !qty.IsPositive() {
		return nil, apierror.Validation("quantity must be greater than zero")
	}
	if rate.IsNegative() {
		return nil, apierror.Validation("rate_at_sale cannot be negative")
	}

	t, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	t.VehicleNumber = vehicle
	t.Quantity = qty
	t.RateAtSale = rate
	t.TotalCost = qty.Mul(rate).Round(2)

	err = runTx(ctx, s.bills.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Update(ctx, tx, t); err != nil {
			return err
		}
		if t.BillID != nil {
			return s.bills.RecomputeTotal(ctx, tx, *t.BillID)
		}
		return nil
	})
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("Transaction not found")
		}
		return nil, apierror.Abort("Failed to update transaction", err)
	}
	return &dto.TransactionChangeResponse{
		Message:     "Transaction updated successfully",
		Transaction: transactionToResponse(t),
	}, nil
}

func (s *transactionService) Delete(ctx context.Context, id int64) (*dto.TransactionChangeResponse, error) {
	t, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	err = runTx(ctx, s.bills.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Delete(ctx, tx, id); err != nil {
			return err
		}
		if t.BillID != nil {
			return s.bills.RecomputeTotal(ctx, tx, *t.BillID)
		}
		return nil
	})
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("Transaction not found")
		}
		return nil, apierror.Abort("Failed to delete transaction", err)
	}
	return &dto.TransactionChangeResponse{
		Message:     "Transaction deleted successfully",
		Transaction: transactionToResponse(t),
	}, nil
}

func (s *transactionService) find(ctx context.Context, id int64) (*model.Transaction, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("Transaction not found")
		}
		return nil, err
	}
	return t, nil
}
