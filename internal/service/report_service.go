package service

import "github.com/subediaakash/car-renting-system/internal/entities"

// ReportService aggregates the completed-rental log.
type ReportService struct {
	transactions TransactionSource
}

func NewReportService(transactions TransactionSource) *ReportService {
	return &ReportService{transactions: transactions}
}

// Revenue sums the stored per-transaction prices. Prices are already
// rounded to cents when written, so a plain sum matches stored precision.
func (s *ReportService) Revenue() (*entities.RevenueReport, error) {
	txns, err := s.transactions.List()
	if err != nil {
		return nil, err
	}
	report := &entities.RevenueReport{Count: len(txns)}
	for _, t := range txns {
		report.Total += t.Price
	}
	return report, nil
}
