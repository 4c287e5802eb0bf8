package repository

import (
	apperrors "github.com/subediaakash/car-renting-system/internal/errors"
	"github.com/subediaakash/car-renting-system/internal/store"
)

// VehicleRepository reads the vehicle collection. The fleet file is
// maintained outside this program, so there is no write side.
type VehicleRepository struct {
	store *store.Store
}

func NewVehicleRepository(s *store.Store) *VehicleRepository {
	return &VehicleRepository{store: s}
}

func (r *VehicleRepository) List() ([]store.Vehicle, error) {
	lines, err := r.store.ReadLines(r.store.Paths.Vehicles)
	if err != nil {
		return nil, err
	}
	vehicles := make([]store.Vehicle, 0, len(lines))
	for i, line := range lines {
		v, err := store.ParseVehicle(line)
		if err != nil {
			return nil, &apperrors.ParseError{File: r.store.Paths.Vehicles, Line: i + 1, Err: err}
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}
