package service

import "github.com/subediaakash/car-renting-system/internal/store"

// Data-source contracts the services depend on. The flat-file repositories
// satisfy them; anything with the same shape (an embedded KV store, a test
// double) can be swapped in without touching workflow logic.

type VehicleSource interface {
	List() ([]store.Vehicle, error)
}

type CustomerSource interface {
	List() ([]store.Customer, error)
	Create(c store.Customer) error
}

type RentalSource interface {
	List() ([]store.Rental, error)
	FindByRegistration(reg string) (*store.Rental, error)
	Create(r store.Rental) error
	DeleteByRegistration(reg string) (int, error)
}

type TransactionSource interface {
	List() ([]store.Transaction, error)
	Create(t store.Transaction) error
}
