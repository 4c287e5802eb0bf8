package service

import (
	"errors"

	"github.com/subediaakash/car-renting-system/internal/store"
)

// Func-field test doubles for the source contracts.

var _ VehicleSource = (*mockVehicleSource)(nil)

type mockVehicleSource struct {
	ListFunc func() ([]store.Vehicle, error)
}

func (m *mockVehicleSource) List() ([]store.Vehicle, error) {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return nil, nil
}

var _ CustomerSource = (*mockCustomerSource)(nil)

type mockCustomerSource struct {
	ListFunc   func() ([]store.Customer, error)
	CreateFunc func(c store.Customer) error

	created []store.Customer
}

func (m *mockCustomerSource) List() ([]store.Customer, error) {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return nil, nil
}

func (m *mockCustomerSource) Create(c store.Customer) error {
	m.created = append(m.created, c)
	if m.CreateFunc != nil {
		return m.CreateFunc(c)
	}
	return nil
}

var _ RentalSource = (*mockRentalSource)(nil)

type mockRentalSource struct {
	ListFunc   func() ([]store.Rental, error)
	FindFunc   func(reg string) (*store.Rental, error)
	CreateFunc func(r store.Rental) error
	DeleteFunc func(reg string) (int, error)
}

func (m *mockRentalSource) List() ([]store.Rental, error) {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return nil, nil
}

func (m *mockRentalSource) FindByRegistration(reg string) (*store.Rental, error) {
	if m.FindFunc != nil {
		return m.FindFunc(reg)
	}
	return nil, nil
}

func (m *mockRentalSource) Create(r store.Rental) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(r)
	}
	return errors.New("CreateFunc not set")
}

func (m *mockRentalSource) DeleteByRegistration(reg string) (int, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(reg)
	}
	return 0, errors.New("DeleteFunc not set")
}

var _ TransactionSource = (*mockTransactionSource)(nil)

type mockTransactionSource struct {
	ListFunc   func() ([]store.Transaction, error)
	CreateFunc func(t store.Transaction) error
}

func (m *mockTransactionSource) List() ([]store.Transaction, error) {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return nil, nil
}

func (m *mockTransactionSource) Create(t store.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(t)
	}
	return errors.New("CreateFunc not set")
}
