package repository

import (
	apperrors "github.com/subediaakash/car-renting-system/internal/errors"
	"github.com/subediaakash/car-renting-system/internal/store"
)

// CustomerRepository reads and appends the customer collection. Customers
// are never mutated or deleted.
type CustomerRepository struct {
	store *store.Store
}

func NewCustomerRepository(s *store.Store) *CustomerRepository {
	return &CustomerRepository{store: s}
}

func (r *CustomerRepository) List() ([]store.Customer, error) {
	lines, err := r.store.ReadLines(r.store.Paths.Customers)
	if err != nil {
		return nil, err
	}
	customers := make([]store.Customer, 0, len(lines))
	for i, line := range lines {
		c, err := store.ParseCustomer(line)
		if err != nil {
			return nil, &apperrors.ParseError{File: r.store.Paths.Customers, Line: i + 1, Err: err}
		}
		customers = append(customers, c)
	}
	return customers, nil
}

func (r *CustomerRepository) Create(c store.Customer) error {
	return r.store.AppendLine(r.store.Paths.Customers, store.FormatCustomer(c))
}
