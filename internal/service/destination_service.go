package service

import (
	"context"

	"github.com/arunkarthik0712/travel-planner-backend/internal/models"
)

// PopularLimit caps the popular destinations listing.
const PopularLimit = 9

type DestinationService struct {
	destinations DestinationStore
}

func NewDestinationService(destinations DestinationStore) *DestinationService {
	return &DestinationService{destinations: destinations}
}

// List orders by price. An empty order means ascending.
func (s *DestinationService) List(ctx context.Context, order string) ([]models.Destination, error) {
	switch models.SortOrder(order) {
	case "", models.SortAsc:
		return s.destinations.GetAll(ctx, models.SortAsc)
	case models.SortDesc:
		return s.destinations.GetAll(ctx, models.SortDesc)
	default:
		return nil, ValidationError{Msg: "Invalid sortOrder. Must be 'asc' or 'desc'."}
	}
}

func (s *DestinationService) Popular(ctx context.Context) ([]models.Destination, error) {
	return s.destinations.GetPopular(ctx, PopularLimit)
}

func (s *DestinationService) Get(ctx context.Context, destinationID string) (*models.Destination, error) {
	id, err := ParseID("destination", destinationID)
	if err != nil {
		return nil, err
	}

	destination, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		return nil, notFound("Destination", err)
	}
	return destination, nil
}
