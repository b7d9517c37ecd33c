package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-demo/internal/operator/actions"
	"github.com/carson-networks/bank-demo/internal/storage"
	"github.com/carson-networks/bank-demo/internal/storage/account"
	"github.com/carson-networks/bank-demo/internal/storage/transaction"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	transactions transaction.ITransactionReader
	accounts     account.IAccountReader
	operator     actionProcessor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactions transaction.ITransactionReader, accounts account.IAccountReader, op actionProcessor) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		accounts:     accounts,
		operator:     op,
	}
}

// CreateTransaction stores a new transaction against an existing account. It fails with
// storage.ErrAccountReference when the account does not exist and leaves nothing behind.
func (s *TransactionService) CreateTransaction(ctx context.Context, tx Transaction) (*Transaction, error) {
	if tx.Amount.IsNegative() {
		return nil, storage.ErrInvalidAmount
	}

	action := &actions.CreateTransaction{
		AccountID:  tx.AccountID,
		Amount:     tx.Amount,
		OccurredAt: tx.OccurredAt,
		Type:       tx.Type,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	created := transactionFromStorage(action.Result)
	return &created, nil
}

// GetTransaction retrieves a transaction by ID.
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	row, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tx := transactionFromStorage(row)
	return &tx, nil
}

// ListTransactionsByAccount returns every transaction of an account. An unknown
// account yields storage.ErrNotFound rather than an empty list.
func (s *TransactionService) ListTransactionsByAccount(ctx context.Context, accountID uuid.UUID) ([]Transaction, error) {
	if _, err := s.accounts.FindByID(ctx, accountID); err != nil {
		return nil, err
	}

	rows, err := s.transactions.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = transactionFromStorage(row)
	}
	return converted, nil
}
