package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Line codecs for the four record collections. Fields are comma separated
// with no quoting or escaping, so a parse is a plain split plus per-field
// conversion. A malformed line is an error, never a skipped record.

// ParseVehicle maps a vehicles-file line to a Vehicle.
// Layout: registration,model,rate[,property...]
func ParseVehicle(line string) (Vehicle, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 3 {
		return Vehicle{}, fmt.Errorf("vehicle line needs at least 3 fields, got %d", len(fields))
	}
	rate, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Vehicle{}, fmt.Errorf("invalid daily rate %q: %w", fields[2], err)
	}
	if rate < 0 {
		return Vehicle{}, fmt.Errorf("negative daily rate %q", fields[2])
	}
	return Vehicle{
		Registration: fields[0],
		Model:        fields[1],
		DailyRate:    rate,
		Properties:   fields[3:],
	}, nil
}

// ParseCustomer maps a customers-file line to a Customer.
// Layout: id,dob,firstName,lastName,email
func ParseCustomer(line string) (Customer, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 5 {
		return Customer{}, fmt.Errorf("customer line needs 5 fields, got %d", len(fields))
	}
	return Customer{
		ID:        fields[0],
		DOB:       fields[1],
		FirstName: fields[2],
		LastName:  fields[3],
		Email:     fields[4],
	}, nil
}

// FormatCustomer renders a Customer as a customers-file line.
func FormatCustomer(c Customer) string {
	return strings.Join([]string{c.ID, c.DOB, c.FirstName, c.LastName, c.Email}, ",")
}

// ParseRental maps a rented-vehicles line to a Rental.
// Layout: registration,customerDob,startTimestamp
func ParseRental(line string) (Rental, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return Rental{}, fmt.Errorf("rental line needs 3 fields, got %d", len(fields))
	}
	start, err := time.ParseInLocation(TimestampLayout, fields[2], time.Local)
	if err != nil {
		return Rental{}, fmt.Errorf("invalid start timestamp %q: %w", fields[2], err)
	}
	return Rental{
		Registration: fields[0],
		CustomerDOB:  fields[1],
		StartTime:    start,
	}, nil
}

// FormatRental renders a Rental as a rented-vehicles line.
func FormatRental(r Rental) string {
	return strings.Join([]string{r.Registration, r.CustomerDOB, r.StartTime.Format(TimestampLayout)}, ",")
}

// ParseTransaction maps a transactions-file line to a Transaction.
// Layout: registration,customerDob,start,end,durationDays,price
func ParseTransaction(line string) (Transaction, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 6 {
		return Transaction{}, fmt.Errorf("transaction line needs 6 fields, got %d", len(fields))
	}
	start, err := time.ParseInLocation(TimestampLayout, fields[2], time.Local)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid start timestamp %q: %w", fields[2], err)
	}
	end, err := time.ParseInLocation(TimestampLayout, fields[3], time.Local)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid end timestamp %q: %w", fields[3], err)
	}
	days, err := strconv.Atoi(fields[4])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid duration %q: %w", fields[4], err)
	}
	price, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid price %q: %w", fields[5], err)
	}
	return Transaction{
		Registration: fields[0],
		CustomerDOB:  fields[1],
		StartTime:    start,
		EndTime:      end,
		DurationDays: days,
		Price:        price,
	}, nil
}

// FormatTransaction renders a Transaction as a transactions-file line.
// Price keeps the fixed 2-decimal display precision.
func FormatTransaction(t Transaction) string {
	return strings.Join([]string{
		t.Registration,
		t.CustomerDOB,
		t.StartTime.Format(TimestampLayout),
		t.EndTime.Format(TimestampLayout),
		strconv.Itoa(t.DurationDays),
		strconv.FormatFloat(t.Price, 'f', 2, 64),
	}, ",")
}
