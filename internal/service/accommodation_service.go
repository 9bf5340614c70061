package service

import (
	"context"

	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
)

type AccommodationService struct {
	accommodations AccommodationStore
}

func NewAccommodationService(accommodations AccommodationStore) *AccommodationService {
	return &AccommodationService{accommodations: accommodations}
}

func (s *AccommodationService) List(ctx context.Context) ([]models.Accommodation, error) {
	return s.accommodations.GetAll(ctx)
}

func (s *AccommodationService) Get(ctx context.Context, accommodationID string) (*models.Accommodation, error) {
	id, err := ParseID("accommodation", accommodationID)
	if err != nil {
		return nil, err
	}

	accommodation, err := s.accommodations.GetByID(ctx, id)
	if err != nil {
		return nil, notFound("Accommodation", err)
	}
	return accommodation, nil
}

func (s *AccommodationService) Create(ctx context.Context, req models.CreateAccommodationRequest) (*models.Accommodation, error) {
	accommodation := &models.Accommodation{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		PricePerBed: req.PricePerBed,
		ImageURL:    req.ImageURL,
	}
	if err := s.accommodations.Create(ctx, accommodation); err != nil {
		return nil, err
	}
	return accommodation, nil
}

// Update changes the listing only. Bookings keep the total they were created with.
func (s *AccommodationService) Update(ctx context.Context, accommodationID string, req models.UpdateAccommodationRequest) (*models.Accommodation, error) {
	accommodation, err := s.Get(ctx, accommodationID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		accommodation.Name = *req.Name
	}
	if req.Description != nil {
		accommodation.Description = *req.Description
	}
	if req.Location != nil {
		accommodation.Location = *req.Location
	}
	if req.PricePerBed != nil {
		accommodation.PricePerBed = *req.PricePerBed
	}
	if req.ImageURL != nil {
		accommodation.ImageURL = *req.ImageURL
	}

	if err := s.accommodations.Update(ctx, accommodation); err != nil {
		return nil, notFound("Accommodation", err)
	}
	return accommodation, nil
}
