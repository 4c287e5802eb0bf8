package repository

import (
	"strings"

	apperrors "github.com/subediaakash/car-renting-system/internal/errors"
	"github.com/subediaakash/car-renting-system/internal/store"
)

// RentalRepository manages the active-rental collection. A registration
// appears at most once, so delete-by-registration is unambiguous.
type RentalRepository struct {
	store *store.Store
}

func NewRentalRepository(s *store.Store) *RentalRepository {
	return &RentalRepository{store: s}
}

func (r *RentalRepository) List() ([]store.Rental, error) {
	lines, err := r.store.ReadLines(r.store.Paths.Rentals)
	if err != nil {
		return nil, err
	}
	rentals := make([]store.Rental, 0, len(lines))
	for i, line := range lines {
		rec, err := store.ParseRental(line)
		if err != nil {
			return nil, &apperrors.ParseError{File: r.store.Paths.Rentals, Line: i + 1, Err: err}
		}
		rentals = append(rentals, rec)
	}
	return rentals, nil
}

// FindByRegistration returns the active rental for reg, or nil if the
// vehicle is not currently rented.
func (r *RentalRepository) FindByRegistration(reg string) (*store.Rental, error) {
	rentals, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range rentals {
		if rentals[i].Registration == reg {
			return &rentals[i], nil
		}
	}
	return nil, nil
}

func (r *RentalRepository) Create(rec store.Rental) error {
	return r.store.AppendLine(r.store.Paths.Rentals, store.FormatRental(rec))
}

// DeleteByRegistration rewrites the file without the lines whose
// registration field equals reg and returns how many were removed.
func (r *RentalRepository) DeleteByRegistration(reg string) (int, error) {
	lines, err := r.store.ReadLines(r.store.Paths.Rentals)
	if err != nil {
		return 0, err
	}
	kept := make([]string, 0, len(lines))
	removed := 0
	for _, line := range lines {
		if strings.SplitN(line, ",", 2)[0] == reg {
			removed++
			continue
		}
		kept = append(kept, line)
	}
	if removed == 0 {
		return 0, nil
	}
	if err := r.store.RewriteLines(r.store.Paths.Rentals, kept); err != nil {
		return 0, err
	}
	return removed, nil
}
