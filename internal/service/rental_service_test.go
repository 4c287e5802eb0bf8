package service

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/subediaakash/car-renting-system/internal/errors"
	"github.com/subediaakash/car-renting-system/internal/repository"
	"github.com/subediaakash/car-renting-system/internal/store"
)

// rentalFixture wires real file-backed repositories in a temp dir, with a
// controllable clock shared by the customer and rental services.
type rentalFixture struct {
	store   *store.Store
	rentals *RentalService
	catalog *CatalogService
	reports *ReportService
	clock   *time.Time
}

func newRentalFixture(t *testing.T, vehicleLines string) *rentalFixture {
	t.Helper()
	dir := t.TempDir()
	st := store.New(store.Paths{
		Vehicles:     filepath.Join(dir, "vehicles.txt"),
		Customers:    filepath.Join(dir, "customers.txt"),
		Rentals:      filepath.Join(dir, "rentedVehicles.txt"),
		Transactions: filepath.Join(dir, "transActions.txt"),
	})
	if vehicleLines != "" {
		require.NoError(t, os.WriteFile(st.Paths.Vehicles, []byte(vehicleLines), 0o644))
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	vehicleRepo := repository.NewVehicleRepository(st)
	customerRepo := repository.NewCustomerRepository(st)
	rentalRepo := repository.NewRentalRepository(st)
	transactionRepo := repository.NewTransactionRepository(st)

	catalog := NewCatalogService(vehicleRepo, rentalRepo)
	customers := NewCustomerService(customerRepo)
	rentals := NewRentalService(catalog, customers, vehicleRepo, rentalRepo, transactionRepo, log)
	reports := NewReportService(transactionRepo)

	now := time.Date(2025, 8, 15, 10, 30, 0, 0, time.Local)
	f := &rentalFixture{store: st, rentals: rentals, catalog: catalog, reports: reports, clock: &now}
	tick := func() time.Time { return *f.clock }
	customers.now = tick
	rentals.now = tick
	return f
}

func (f *rentalFixture) advance(d time.Duration) {
	*f.clock = f.clock.Add(d)
}

func TestRentAndReturnEndToEnd(t *testing.T) {
	f := newRentalFixture(t, "ABC123,Sedan,25.00,AC,GPS\n")

	available, err := f.catalog.AvailableVehicles()
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "ABC123", available[0].Registration)

	rental, err := f.rentals.Rent("ABC123", RegisterRequest{
		DOB: "01/01/1990", FirstName: "John", LastName: "Doe", Email: "a@b.c",
	})
	require.NoError(t, err)
	assert.Equal(t, "01/01/1990", rental.CustomerDOB)

	// The car is now out.
	available, err = f.catalog.AvailableVehicles()
	require.NoError(t, err)
	assert.Empty(t, available)

	rentalLines, err := f.store.ReadLines(f.store.Paths.Rentals)
	require.NoError(t, err)
	require.Len(t, rentalLines, 1)
	assert.Equal(t, "ABC123,01/01/1990,15/08/2025 10:30", rentalLines[0])

	// Three days later the partial day counts in full: 4 days at 25.00.
	f.advance(72 * time.Hour)
	receipt, err := f.rentals.Return("ABC123")
	require.NoError(t, err)
	assert.Equal(t, 4, receipt.DurationDays)
	assert.Equal(t, 100.00, receipt.Cost)

	txnLines, err := f.store.ReadLines(f.store.Paths.Transactions)
	require.NoError(t, err)
	require.Len(t, txnLines, 1)
	assert.Equal(t, "ABC123,01/01/1990,15/08/2025 10:30,18/08/2025 10:30,4,100.00", txnLines[0])

	rentalLines, err = f.store.ReadLines(f.store.Paths.Rentals)
	require.NoError(t, err)
	assert.Empty(t, rentalLines)

	// Returned car is rentable again.
	available, err = f.catalog.AvailableVehicles()
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "ABC123", available[0].Registration)
}

func TestRentFailures(t *testing.T) {
	t.Run("no vehicles at all", func(t *testing.T) {
		f := newRentalFixture(t, "")
		_, err := f.rentals.Rent("ABC123", RegisterRequest{DOB: "01/01/1990", FirstName: "John", LastName: "Doe", Email: "a@b.c"})
		assert.ErrorIs(t, err, apperrors.ErrNoVehiclesAvailable)
	})

	t.Run("unknown registration", func(t *testing.T) {
		f := newRentalFixture(t, "ABC123,Sedan,25.00\n")
		_, err := f.rentals.Rent("NOPE", RegisterRequest{DOB: "01/01/1990", FirstName: "John", LastName: "Doe", Email: "a@b.c"})
		assert.ErrorIs(t, err, apperrors.ErrUnknownVehicle)
	})

	t.Run("already rented registration", func(t *testing.T) {
		f := newRentalFixture(t, "ABC123,Sedan,25.00\nXYZ789,Coupe,40.50\n")
		_, err := f.rentals.Rent("ABC123", RegisterRequest{DOB: "01/01/1990", FirstName: "John", LastName: "Doe", Email: "a@b.c"})
		require.NoError(t, err)

		_, err = f.rentals.Rent("ABC123", RegisterRequest{DOB: "02/02/1985", FirstName: "Jane", LastName: "Roe", Email: "j@r.c"})
		assert.ErrorIs(t, err, apperrors.ErrUnknownVehicle)
	})

	t.Run("onboarding failure writes nothing", func(t *testing.T) {
		f := newRentalFixture(t, "ABC123,Sedan,25.00\n")
		_, err := f.rentals.Rent("ABC123", RegisterRequest{DOB: "01/01/1990", FirstName: "John", LastName: "Doe", Email: "bob"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)

		customerLines, err := f.store.ReadLines(f.store.Paths.Customers)
		require.NoError(t, err)
		assert.Empty(t, customerLines)

		rentalLines, err := f.store.ReadLines(f.store.Paths.Rentals)
		require.NoError(t, err)
		assert.Empty(t, rentalLines)
	})
}

func TestReturnFailures(t *testing.T) {
	t.Run("no active rental", func(t *testing.T) {
		f := newRentalFixture(t, "ABC123,Sedan,25.00\n")
		_, err := f.rentals.Return("ABC123")
		assert.ErrorIs(t, err, apperrors.ErrNoActiveRental)
	})

	t.Run("rental for a vanished vehicle is an integrity fault", func(t *testing.T) {
		f := newRentalFixture(t, "ABC123,Sedan,25.00\n")
		_, err := f.rentals.Rent("ABC123", RegisterRequest{DOB: "01/01/1990", FirstName: "John", LastName: "Doe", Email: "a@b.c"})
		require.NoError(t, err)

		// Fleet file loses the car while it is out.
		require.NoError(t, os.WriteFile(f.store.Paths.Vehicles, nil, 0o644))

		_, err = f.rentals.Return("ABC123")
		require.Error(t, err)
		var ie *apperrors.IntegrityError
		assert.ErrorAs(t, err, &ie)
	})
}

func TestDurationLaw(t *testing.T) {
	rent := func(t *testing.T) *rentalFixture {
		f := newRentalFixture(t, "ABC123,Sedan,25.00\n")
		_, err := f.rentals.Rent("ABC123", RegisterRequest{DOB: "01/01/1990", FirstName: "John", LastName: "Doe", Email: "a@b.c"})
		require.NoError(t, err)
		return f
	}

	t.Run("same-instant return costs one day", func(t *testing.T) {
		f := rent(t)
		receipt, err := f.rentals.Return("ABC123")
		require.NoError(t, err)
		assert.Equal(t, 1, receipt.DurationDays)
		assert.Equal(t, 25.00, receipt.Cost)
	})

	t.Run("25 hours is two days", func(t *testing.T) {
		f := rent(t)
		f.advance(25 * time.Hour)
		receipt, err := f.rentals.Return("ABC123")
		require.NoError(t, err)
		assert.Equal(t, 2, receipt.DurationDays)
		assert.Equal(t, 50.00, receipt.Cost)
	})

	t.Run("just under a day is still one day", func(t *testing.T) {
		f := rent(t)
		f.advance(23 * time.Hour)
		receipt, err := f.rentals.Return("ABC123")
		require.NoError(t, err)
		assert.Equal(t, 1, receipt.DurationDays)
	})
}

func TestWholeDaysClampsToOne(t *testing.T) {
	start := time.Date(2025, 8, 15, 10, 30, 0, 0, time.Local)
	assert.Equal(t, 1, wholeDays(start, start.Add(-2*time.Hour)))
}
