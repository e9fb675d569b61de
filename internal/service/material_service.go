package service

import (
	"context"
	"strings"

	"agencyledger/internal/apierror"
	"agencyledger/internal/dto"
	"agencyledger/internal/model"
	"agencyledger/internal/repository"
)

const defaultUnit = "ton"

type MaterialService interface {
	Create(ctx context.Context, req dto.CreateMaterialRequest) (*dto.MaterialResponse, error)
	List(ctx context.Context, includeInactive bool) ([]dto.MaterialResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateMaterialRequest) (*dto.MaterialResponse, error)
	SetActive(ctx context.Context, id int64, active bool) error
}

type materialService struct{ repo repository.MaterialRepository }

func NewMaterialService(repo repository.MaterialRepository) MaterialService {
	return &materialService{repo: repo}
}

func (s *materialService) Create(ctx context.Context, req dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.RatePerUnit == nil {
		return nil, apierror.Validation("name and rate_per_unit are required")
	}
	if req.RatePerUnit.IsNegative() {
		return nil, apierror.Validation("rate_per_unit cannot be negative")
	}
	m := &model.Material{
		Name:        name,
		Unit:        unitOrDefault(req.Unit),
		RatePerUnit: req.RatePerUnit.Round(2),
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		if repository.IsDuplicate(err) {
			return nil, apierror.Conflict("Material name already exists", err)
		}
		return nil, err
	}
	resp := materialToResponse(m)
	return &resp, nil
}

func (s *materialService) List(ctx context.Context, includeInactive bool) ([]dto.MaterialResponse, error) {
	materials, err := s.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MaterialResponse, len(materials))
	for i := range materials {
		resp[i] = materialToResponse(&materials[i])
	}
	return resp, nil
}

// Update changes the catalog price. Rates already copied into transactions
// are untouched.
func (s *materialService) Update(ctx context.Context, id int64, req dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.RatePerUnit == nil {
		return nil, apierror.Validation("name and rate_per_unit are required")
	}
	if req.RatePerUnit.IsNegative() {
		return nil, apierror.Validation("rate_per_unit cannot be negative")
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("material not found")
		}
		return nil, err
	}
	m.Name = name
	m.Unit = unitOrDefault(req.Unit)
	m.RatePerUnit = req.RatePerUnit.Round(2)
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}
	if err := s.repo.Update(ctx, m); err != nil {
		switch {
		case repository.IsDuplicate(err):
			return nil, apierror.Conflict("Material name already exists", err)
		case repository.IsNotFound(err):
			return nil, apierror.NotFound("material not found")
		}
		return nil, err
	}
	resp := materialToResponse(m)
	return &resp, nil
}

func (s *materialService) SetActive(ctx context.Context, id int64, active bool) error {
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		if repository.IsNotFound(err) {
			return apierror.NotFound("material not found")
		}
		return err
	}
	return nil
}

func unitOrDefault(unit string) string {
	if u := strings.TrimSpace(unit); u != "" {
		return u
	}
	return defaultUnit
}
