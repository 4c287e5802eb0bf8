package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	apperrors "github.com/subediaakash/car-renting-system/internal/errors"
	"github.com/subediaakash/car-renting-system/internal/service"
	"github.com/subediaakash/car-renting-system/internal/store"
	"github.com/subediaakash/car-renting-system/internal/utils"
)

// Menu drives the interactive session: render options, dispatch, repeat.
type Menu struct {
	in        *bufio.Reader
	out       io.Writer
	catalog   *service.CatalogService
	customers *service.CustomerService
	rentals   *service.RentalService
	reports   *service.ReportService
	log       *logrus.Logger
}

func NewMenu(
	in io.Reader,
	out io.Writer,
	catalog *service.CatalogService,
	customers *service.CustomerService,
	rentals *service.RentalService,
	reports *service.ReportService,
	log *logrus.Logger,
) *Menu {
	return &Menu{
		in:        bufio.NewReader(in),
		out:       out,
		catalog:   catalog,
		customers: customers,
		rentals:   rentals,
		reports:   reports,
		log:       log,
	}
}

// Run loops until the user selects exit or input ends. Errors from a
// dispatched action are reported and the menu continues.
func (m *Menu) Run() error {
	for {
		m.printMenu()
		choice, err := m.prompt("\nWhat is your selection? ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch choice {
		case "0":
			fmt.Fprintln(m.out, "\nThank you for using the Car Rental System!")
			return nil
		case "1":
			err = m.listAvailableCars()
		case "2":
			err = m.rentCar()
		case "3":
			err = m.returnCar()
		case "4":
			err = m.countMoney()
		default:
			fmt.Fprintln(m.out, "\nInvalid selection. Please choose a valid option.")
			continue
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			m.reportError(err)
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "\n=== Car Rental System ===")
	fmt.Fprintln(m.out, "1. List available cars")
	fmt.Fprintln(m.out, "2. Rent a car")
	fmt.Fprintln(m.out, "3. Return a car")
	fmt.Fprintln(m.out, "4. Count money")
	fmt.Fprintln(m.out, "0. Exit")
}

func (m *Menu) listAvailableCars() error {
	cars, err := m.catalog.AvailableVehicles()
	if err != nil {
		return err
	}
	if len(cars) == 0 {
		fmt.Fprintln(m.out, "\nNo cars are currently available.")
		return nil
	}
	fmt.Fprintln(m.out, "\nAvailable cars:")
	for _, car := range cars {
		fmt.Fprintf(m.out, "*Reg. nr. %s, Model: %s, Price per day: %.2f\n",
			car.Registration, car.Model, car.DailyRate)
		fmt.Fprintf(m.out, "Properties: %s\n", strings.Join(car.Properties, ", "))
	}
	return nil
}

func (m *Menu) rentCar() error {
	cars, err := m.catalog.AvailableVehicles()
	if err != nil {
		return err
	}
	if len(cars) == 0 {
		fmt.Fprintln(m.out, "\nSorry, no cars are currently available.")
		return nil
	}

	reg, err := m.promptRegistration(cars)
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "\nEnter customer details:")
	dob, err := m.prompt("Date of birth (DD/MM/YYYY): ")
	if err != nil {
		return err
	}
	// A failed date-of-birth check aborts the whole rental; the remaining
	// prompts re-ask until valid.
	if err := m.customers.ValidateDOB(dob); err != nil {
		return err
	}

	first, err := m.promptName("First")
	if err != nil {
		return err
	}
	last, err := m.promptName("Last")
	if err != nil {
		return err
	}
	email, err := m.promptEmail()
	if err != nil {
		return err
	}

	if _, err := m.rentals.Rent(reg, service.RegisterRequest{
		DOB:       dob,
		FirstName: first,
		LastName:  last,
		Email:     email,
	}); err != nil {
		return err
	}

	fmt.Fprintln(m.out, "\nCar rented successfully!")
	return nil
}

func (m *Menu) returnCar() error {
	reg, err := m.prompt("\nEnter registration number of car to return: ")
	if err != nil {
		return err
	}
	receipt, err := m.rentals.Return(reg)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "\nCar returned successfully!")
	fmt.Fprintf(m.out, "Rental duration: %d days\n", receipt.DurationDays)
	fmt.Fprintf(m.out, "Total cost: $%.2f\n", receipt.Cost)
	return nil
}

func (m *Menu) countMoney() error {
	report, err := m.reports.Revenue()
	if err != nil {
		return err
	}
	if report.Count == 0 {
		fmt.Fprintln(m.out, "\nNo completed rentals yet.")
		return nil
	}
	fmt.Fprintf(m.out, "\nTotal earnings: $%.2f\n", report.Total)
	fmt.Fprintf(m.out, "Number of completed rentals: %d\n", report.Count)
	return nil
}

// promptRegistration re-asks until the entered registration is in the
// available set.
func (m *Menu) promptRegistration(available []store.Vehicle) (string, error) {
	for {
		reg, err := m.prompt("\nEnter registration number of car to rent: ")
		if err != nil {
			return "", err
		}
		for _, car := range available {
			if car.Registration == reg {
				return reg, nil
			}
		}
		fmt.Fprintln(m.out, "Invalid registration number. Please try again.")
	}
}

// promptName re-asks until the name holds no digits. Names are upper-cased.
func (m *Menu) promptName(kind string) (string, error) {
	for {
		name, err := m.prompt(kind + " name: ")
		if err != nil {
			return "", err
		}
		name = strings.ToUpper(name)
		if !utils.ContainsDigit(name) {
			return name, nil
		}
		fmt.Fprintln(m.out, "Name cannot contain numbers. Please try again.")
	}
}

// promptEmail re-asks until the address passes the minimal check.
func (m *Menu) promptEmail() (string, error) {
	for {
		email, err := m.prompt("Email: ")
		if err != nil {
			return "", err
		}
		if utils.ValidEmail(email) {
			return email, nil
		}
		fmt.Fprintln(m.out, "Invalid email format. Please enter a valid email address.")
	}
}

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// reportError separates user mistakes from data-integrity faults. Both keep
// the menu alive; only the latter is logged, since it means the store needs
// attention.
func (m *Menu) reportError(err error) {
	switch {
	case apperrors.IsUserError(err):
		fmt.Fprintf(m.out, "\n%s\n", err)
	case apperrors.IsIntegrityFault(err):
		m.log.WithError(err).Error("data integrity fault")
		fmt.Fprintf(m.out, "\nData error: %s\n", err)
	default:
		m.log.WithError(err).Error("operation failed")
		fmt.Fprintf(m.out, "\nError: %s\n", err)
	}
}
