package service

import (
	"context"
	"strings"

	"agencyledger/internal/apierror"
	"agencyledger/internal/dto"
	"agencyledger/internal/model"
	"agencyledger/internal/repository"
)

type OwnerService interface {
	Create(ctx context.Context, req dto.CreateOwnerRequest) (*dto.OwnerResponse, error)
	Get(ctx context.Context, id int64) (*dto.OwnerResponse, error)
	List(ctx context.Context, includeInactive bool) ([]dto.OwnerResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateOwnerRequest) (*dto.OwnerResponse, error)
	SetActive(ctx context.Context, id int64, active bool) error
}

type ownerService struct{ repo repository.OwnerRepository }

func NewOwnerService(repo repository.OwnerRepository) OwnerService {
	return &ownerService{repo: repo}
}

func (s *ownerService) Create(ctx context.Context, req dto.CreateOwnerRequest) (*dto.OwnerResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apierror.Validation("Owner name is required")
	}
	o := &model.Owner{
		Name:        name,
		ContactInfo: trimmedOrNil(req.ContactInfo),
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		if repository.IsDuplicate(err) {
			return nil, apierror.Conflict("Owner name already exists", err)
		}
		return nil, err
	}
	resp := ownerToResponse(o)
	return &resp, nil
}

func (s *ownerService) Get(ctx context.Context, id int64) (*dto.OwnerResponse, error) {
	o, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ownerToResponse(o)
	return &resp, nil
}

func (s *ownerService) List(ctx context.Context, includeInactive bool) ([]dto.OwnerResponse, error) {
	owners, err := s.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.OwnerResponse, len(owners))
	for i := range owners {
		resp[i] = ownerToResponse(&owners[i])
	}
	return resp, nil
}

func (s *ownerService) Update(ctx context.Context, id int64, req dto.UpdateOwnerRequest) (*dto.OwnerResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apierror.Validation("Owner name is required")
	}
	o, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Name = name
	o.ContactInfo = trimmedOrNil(req.ContactInfo)
	if req.IsActive != nil {
		o.IsActive = *req.IsActive
	}
	if err := s.repo.Update(ctx, o); err != nil {
		switch {
		case repository.IsDuplicate(err):
			return nil, apierror.Conflict("Owner name already exists", err)
		case repository.IsNotFound(err):
			return nil, apierror.NotFound("owner not found")
		}
		return nil, err
	}
	resp := ownerToResponse(o)
	return &resp, nil
}

func (s *ownerService) SetActive(ctx context.Context, id int64, active bool) error {
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		if repository.IsNotFound(err) {
			return apierror.NotFound("owner not found")
		}
		return err
	}
	return nil
}

func (s *ownerService) find(ctx context.Context, id int64) (*model.Owner, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("owner not found")
		}
		return nil, err
	}
	return o, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
