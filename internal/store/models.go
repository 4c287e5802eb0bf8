package store

import "time"

// Layouts used across the stored files. Dates are day-first, timestamps
// carry no seconds.
const (
	DateLayout      = "02/01/2006"
	TimestampLayout = "02/01/2006 15:04"
)

// Vehicle is one line of the vehicles file. Vehicles are loaded read-only;
// fleet management happens outside this program.
type Vehicle struct {
	Registration string
	Model        string
	DailyRate    float64
	Properties   []string
}

// Customer is one line of the customers file. ID is a synthetic UUID; the
// date of birth stays a plain attribute even though duplicate detection
// still keys on it.
type Customer struct {
	ID        string
	DOB       string
	FirstName string
	LastName  string
	Email     string
}

// Rental is one line of the rented-vehicles file. At most one rental per
// registration exists at any time.
type Rental struct {
	Registration string
	CustomerDOB  string
	StartTime    time.Time
}

// Transaction is one line of the append-only transactions file.
type Transaction struct {
	Registration string
	CustomerDOB  string
	StartTime    time.Time
	EndTime      time.Time
	DurationDays int
	Price        float64
}
