package repository

import (
	apperrors "github.com/subediaakash/car-renting-system/internal/errors"
	"github.com/subediaakash/car-renting-system/internal/store"
)

// TransactionRepository manages the append-only completed-rental log.
type TransactionRepository struct {
	store *store.Store
}

func NewTransactionRepository(s *store.Store) *TransactionRepository {
	return &TransactionRepository{store: s}
}

func (r *TransactionRepository) List() ([]store.Transaction, error) {
	lines, err := r.store.ReadLines(r.store.Paths.Transactions)
	if err != nil {
		return nil, err
	}
	txns := make([]store.Transaction, 0, len(lines))
	for i, line := range lines {
		t, err := store.ParseTransaction(line)
		if err != nil {
			return nil, &apperrors.ParseError{File: r.store.Paths.Transactions, Line: i + 1, Err: err}
		}
		txns = append(txns, t)
	}
	return txns, nil
}

func (r *TransactionRepository) Create(t store.Transaction) error {
	return r.store.AppendLine(r.store.Paths.Transactions, store.FormatTransaction(t))
}
