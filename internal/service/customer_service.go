package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/subediaakash/car-renting-system/internal/errors"
	"github.com/subediaakash/car-renting-system/internal/store"
	"github.com/subediaakash/car-renting-system/internal/utils"
)

const (
	minCustomerAge = 18
	maxCustomerAge = 75
)

// RegisterRequest carries the prompted customer details.
type RegisterRequest struct {
	DOB       string
	FirstName string
	LastName  string
	Email     string
}

// CustomerService onboards new customers.
type CustomerService struct {
	customers CustomerSource
	now       func() time.Time
}

func NewCustomerService(customers CustomerSource) *CustomerService {
	return &CustomerService{customers: customers, now: time.Now}
}

// ValidateDOB runs the date-of-birth checks alone: format, age window and
// uniqueness. The interactive flow aborts a rental on the first failure
// here, before any further details are collected.
func (s *CustomerService) ValidateDOB(dob string) error {
	birth, err := time.ParseInLocation(store.DateLayout, dob, time.Local)
	if err != nil {
		return apperrors.ErrInvalidDateFormat
	}

	// Plain year subtraction, not calendar-aware age.
	age := s.now().Year() - birth.Year()
	if age < minCustomerAge || age > maxCustomerAge {
		return apperrors.ErrAgeOutOfRange
	}

	existing, err := s.customers.List()
	if err != nil {
		return err
	}
	for _, c := range existing {
		if c.DOB == dob {
			return apperrors.ErrDuplicateCustomer
		}
	}
	return nil
}

// Register runs the full validation pipeline and appends the customer.
// Nothing is written unless every check passes. Names are stored upper-cased.
func (s *CustomerService) Register(req RegisterRequest) (*store.Customer, error) {
	if err := s.ValidateDOB(req.DOB); err != nil {
		return nil, err
	}

	first := strings.ToUpper(strings.TrimSpace(req.FirstName))
	last := strings.ToUpper(strings.TrimSpace(req.LastName))
	if utils.ContainsDigit(first) || utils.ContainsDigit(last) {
		return nil, apperrors.ErrNameContainsDigits
	}

	email := strings.TrimSpace(req.Email)
	if !utils.ValidEmail(email) {
		return nil, apperrors.ErrInvalidEmail
	}

	c := store.Customer{
		ID:        uuid.NewString(),
		DOB:       req.DOB,
		FirstName: first,
		LastName:  last,
		Email:     email,
	}
	if err := s.customers.Create(c); err != nil {
		return nil, err
	}
	return &c, nil
}
