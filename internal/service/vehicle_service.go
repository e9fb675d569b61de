package service

import (
	"context"

	"agencyledger/internal/apierror"
	"agencyledger/internal/dto"
	"agencyledger/internal/model"
	"agencyledger/internal/repository"
)

const suggestionLimit = 5

type VehicleService interface {
	Suggest(ctx context.Context, filter dto.VehicleFilter) ([]dto.VehicleResponse, error)
	Create(ctx context.Context, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error)
	Delete(ctx context.Context, id int64) error
}

type vehicleService struct {
	repo   repository.VehicleRepository
	owners repository.OwnerRepository
	clock  Clock
}

func NewVehicleService(repo repository.VehicleRepository, owners repository.OwnerRepository, clock Clock) VehicleService {
	return &vehicleService{repo: repo, owners: owners, clock: clock}
}

func (s *vehicleService) Suggest(ctx context.Context, filter dto.VehicleFilter) ([]dto.VehicleResponse, error) {
	if filter.OwnerID <= 0 {
		return nil, apierror.Validation("owner_id is required")
	}
	vehicles, err := s.repo.Search(ctx, filter.OwnerID, NormalizeVehicle(filter.Q), suggestionLimit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VehicleResponse, len(vehicles))
	for i := range vehicles {
		resp[i] = vehicleToResponse(&vehicles[i])
	}
	return resp, nil
}

// Create registers a plate for autocomplete. Re-adding an existing plate only
// refreshes last_used_at; the response carries the stored row, whose
// last_used_at may be later than now.
func (s *vehicleService) Create(ctx context.Context, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	number := NormalizeVehicle(req.VehicleNumber)
	if req.OwnerID <= 0 || number == "" {
		return nil, apierror.Validation("owner_id and vehicle_number are required")
	}
	if _, err := s.owners.FindByID(ctx, req.OwnerID); err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("owner not found")
		}
		return nil, err
	}
	v := &model.Vehicle{OwnerID: req.OwnerID, VehicleNumber: number, LastUsedAt: s.clock.now()}
	if err := s.repo.Upsert(ctx, nil, v); err != nil {
		return nil, err
	}
	resp := vehicleToResponse(v)
	return &resp, nil
}

func (s *vehicleService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return apierror.NotFound("Vehicle not found")
		}
		return err
	}
	return nil
}
