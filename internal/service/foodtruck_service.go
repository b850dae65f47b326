package service

import (
	"context"
	"errors"

	"foodtruck-api/internal/models"
	"foodtruck-api/internal/store"

	"github.com/rs/zerolog"
)

// FoodTruckService turns record store results into found / not found outcomes for the HTTP layer
type FoodTruckService struct {
	store  FoodTruckStore
	logger zerolog.Logger
}

// FoodTruckStore interface for dependency injection
type FoodTruckStore interface {
	Values() []models.FoodTruck
	Len() int
	Get(locationID int64) (models.FoodTruck, bool, error)
	GetByBlock(block string) ([]models.FoodTruck, bool, error)
	Insert(ft *models.FoodTruck) (bool, error)
}

// NewFoodTruckService creates a new food truck service
func NewFoodTruckService(st FoodTruckStore, logger zerolog.Logger) *FoodTruckService {
	return &FoodTruckService{store: st, logger: logger}
}

// GetFoodTrucks returns every food truck in the catalog
func (s *FoodTruckService) GetFoodTrucks(ctx context.Context) []models.FoodTruck {
	return s.store.Values()
}

// CountFoodTrucks returns the catalog size
func (s *FoodTruckService) CountFoodTrucks(ctx context.Context) int {
	return s.store.Len()
}

// GetFoodTruckByLocationID looks up one food truck. An out of range id is logged and reported as not found.
func (s *FoodTruckService) GetFoodTruckByLocationID(ctx context.Context, locationID int64) (models.FoodTruck, bool) {
	ft, found, err := s.store.Get(locationID)
	if err != nil {
		s.log(ctx, err).Int64("location_id", locationID).Msg("invalid locationId")
		return models.FoodTruck{}, false
	}
	return ft, found
}

// GetFoodTrucksByBlock returns the food trucks of a block. An empty block is logged and reported as not found.
func (s *FoodTruckService) GetFoodTrucksByBlock(ctx context.Context, block string) ([]models.FoodTruck, bool) {
	trucks, found, err := s.store.GetByBlock(block)
	if err != nil {
		s.log(ctx, err).Msg("value for block is empty")
		return nil, false
	}
	return trucks, found
}

// AddFoodTruck inserts a food truck, returning false for duplicates and invalid input
func (s *FoodTruckService) AddFoodTruck(ctx context.Context, ft *models.FoodTruck) bool {
	ok, err := s.store.Insert(ft)
	if err == nil {
		return ok
	}

	switch {
	case errors.Is(err, store.ErrOutOfRange):
		s.log(ctx, err).Int64("location_id", ft.LocationID).Msg("invalid locationId")
	case errors.Is(err, store.ErrInvalidArgument):
		s.log(ctx, err).Msg("food truck is nil")
	default:
		s.log(ctx, err).Msg("failed to add food truck")
	}
	return false
}

// log starts an error event on the request logger when the context carries one.
func (s *FoodTruckService) log(ctx context.Context, err error) *zerolog.Event {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		l = &s.logger
	}
	return l.Error().Err(err)
}
