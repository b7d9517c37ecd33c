package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-demo/internal/operator/actions"
	"github.com/carson-networks/bank-demo/internal/storage"
)

// actionProcessor runs a write action inside one database transaction.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Account     *AccountService
	Aggregate   *AggregateService
	Seed        *SeedService
}

// NewService creates a new Service with the given storage and write operator.
func NewService(store *storage.Storage, op actionProcessor, logger *logrus.Logger) *Service {
	accounts := store.Reader.Accounts
	transactions := store.Reader.Transactions
	return &Service{
		Transaction: NewTransactionService(transactions, accounts, op),
		Account:     NewAccountService(accounts, op),
		Aggregate:   NewAggregateService(accounts, transactions),
		Seed:        NewSeedService(op, logger),
	}
}
