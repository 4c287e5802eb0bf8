package entities

// ReturnReceipt is the displayable outcome of closing a rental.
type ReturnReceipt struct {
	Registration string
	DurationDays int
	Cost         float64
}
