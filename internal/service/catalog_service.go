package service

import "github.com/subediaakash/car-renting-system/internal/store"

// CatalogService answers availability queries over the fleet.
type CatalogService struct {
	vehicles VehicleSource
	rentals  RentalSource
}

func NewCatalogService(vehicles VehicleSource, rentals RentalSource) *CatalogService {
	return &CatalogService{vehicles: vehicles, rentals: rentals}
}

// AvailableVehicles returns the vehicles with no active rental, in fleet
// file order. An empty result is a value, not an error.
func (s *CatalogService) AvailableVehicles() ([]store.Vehicle, error) {
	vehicles, err := s.vehicles.List()
	if err != nil {
		return nil, err
	}
	rentals, err := s.rentals.List()
	if err != nil {
		return nil, err
	}

	rented := make(map[string]struct{}, len(rentals))
	for _, r := range rentals {
		rented[r.Registration] = struct{}{}
	}

	available := make([]store.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if _, ok := rented[v.Registration]; !ok {
			available = append(available, v)
		}
	}
	return available, nil
}
