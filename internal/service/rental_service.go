package service

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/subediaakash/car-renting-system/internal/entities"
	apperrors "github.com/subediaakash/car-renting-system/internal/errors"
	"github.com/subediaakash/car-renting-system/internal/store"
)

// RentalService orchestrates the rent and return workflows.
type RentalService struct {
	catalog      *CatalogService
	customers    *CustomerService
	vehicles     VehicleSource
	rentals      RentalSource
	transactions TransactionSource
	log          *logrus.Logger
	now          func() time.Time
}

func NewRentalService(
	catalog *CatalogService,
	customers *CustomerService,
	vehicles VehicleSource,
	rentals RentalSource,
	transactions TransactionSource,
	log *logrus.Logger,
) *RentalService {
	return &RentalService{
		catalog:      catalog,
		customers:    customers,
		vehicles:     vehicles,
		rentals:      rentals,
		transactions: transactions,
		log:          log,
		now:          time.Now,
	}
}

// Rent checks the registration against the available set, onboards the
// customer and opens the rental. No record is written until every check has
// passed; the customer append and the rental append then happen in order.
func (s *RentalService) Rent(reg string, req RegisterRequest) (*store.Rental, error) {
	available, err := s.catalog.AvailableVehicles()
	if err != nil {
		return nil, err
	}
	if len(available) == 0 {
		return nil, apperrors.ErrNoVehiclesAvailable
	}
	if !containsRegistration(available, reg) {
		return nil, apperrors.ErrUnknownVehicle
	}

	customer, err := s.customers.Register(req)
	if err != nil {
		return nil, err
	}

	rental := store.Rental{
		Registration: reg,
		CustomerDOB:  customer.DOB,
		StartTime:    s.now().Truncate(time.Minute),
	}
	if err := s.rentals.Create(rental); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"registration": reg,
		"customer_id":  customer.ID,
	}).Info("rental opened")
	return &rental, nil
}

// Return closes the active rental for reg: records the transaction, then
// removes the rental. Duration counts any partial day as a full day, so a
// same-day return still costs one day's rate.
func (s *RentalService) Return(reg string) (*entities.ReturnReceipt, error) {
	rental, err := s.rentals.FindByRegistration(reg)
	if err != nil {
		return nil, err
	}
	if rental == nil {
		return nil, apperrors.ErrNoActiveRental
	}

	vehicles, err := s.vehicles.List()
	if err != nil {
		return nil, err
	}
	var vehicle *store.Vehicle
	for i := range vehicles {
		if vehicles[i].Registration == reg {
			vehicle = &vehicles[i]
			break
		}
	}
	if vehicle == nil {
		return nil, &apperrors.IntegrityError{
			Message: fmt.Sprintf("active rental references unknown vehicle %s", reg),
		}
	}

	end := s.now().Truncate(time.Minute)
	days := wholeDays(rental.StartTime, end)
	cost := math.Round(float64(days)*vehicle.DailyRate*100) / 100

	txn := store.Transaction{
		Registration: reg,
		CustomerDOB:  rental.CustomerDOB,
		StartTime:    rental.StartTime,
		EndTime:      end,
		DurationDays: days,
		Price:        cost,
	}
	if err := s.transactions.Create(txn); err != nil {
		return nil, err
	}

	removed, err := s.rentals.DeleteByRegistration(reg)
	if err != nil {
		return nil, err
	}
	if removed != 1 {
		s.log.WithField("registration", reg).Warnf("expected to remove 1 rental, removed %d", removed)
	}

	s.log.WithFields(logrus.Fields{
		"registration": reg,
		"days":         days,
		"cost":         cost,
	}).Info("rental closed")

	return &entities.ReturnReceipt{
		Registration: reg,
		DurationDays: days,
		Cost:         cost,
	}, nil
}

// wholeDays is floor(end-start in days) + 1, never below 1.
func wholeDays(start, end time.Time) int {
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}

func containsRegistration(vehicles []store.Vehicle, reg string) bool {
	for _, v := range vehicles {
		if v.Registration == reg {
			return true
		}
	}
	return false
}
