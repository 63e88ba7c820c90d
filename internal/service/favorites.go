package service

import (
	"context"
	"errors"

	"sotrama/internal/domain"
	"sotrama/internal/redis"
	"sotrama/internal/repository"
)

// FavoriteService manages each traveller's favorite trips.
type FavoriteService struct {
	favoriteStore redis.FavoriteStoreInterface
	tripRepo      repository.TripRepository
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(favoriteStore redis.FavoriteStoreInterface, tripRepo repository.TripRepository) *FavoriteService {
	return &FavoriteService{
		favoriteStore: favoriteStore,
		tripRepo:      tripRepo,
	}
}

// Add marks a trip as a favorite. The trip must exist in the catalog.
func (s *FavoriteService) Add(ctx context.Context, phone string, tripID int64) error {
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}
	if tripID <= 0 {
		return ErrInvalidTripID
	}

	if _, err := s.tripRepo.GetByID(ctx, tripID); err != nil {
		return err
	}

	return s.favoriteStore.Add(ctx, phone, tripID)
}

// Remove unmarks a trip as a favorite.
func (s *FavoriteService) Remove(ctx context.Context, phone string, tripID int64) error {
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}
	if tripID <= 0 {
		return ErrInvalidTripID
	}

	return s.favoriteStore.Remove(ctx, phone, tripID)
}

// List resolves the traveller's favorite trips against the catalog.
// Favorites whose trip has since been removed are skipped.
func (s *FavoriteService) List(ctx context.Context, phone string) ([]*domain.Trip, error) {
	if !phonePattern.MatchString(phone) {
		return nil, ErrInvalidPhone
	}

	ids, err := s.favoriteStore.Members(ctx, phone)
	if err != nil {
		return nil, err
	}

	trips := make([]*domain.Trip, 0, len(ids))
	for _, id := range ids {
		trip, err := s.tripRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, err
		}
		trips = append(trips, trip)
	}

	return trips, nil
}
