package entities

// RevenueReport sums the recorded transactions. Count zero is the distinct
// "no completed rentals yet" state, not a $0.00 report.
type RevenueReport struct {
	Total float64
	Count int
}
