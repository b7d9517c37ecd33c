package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-demo/internal/storage/account"
	"github.com/carson-networks/bank-demo/internal/storage/transaction"
)

type AggregateService struct {
	accounts     account.IAccountReader
	transactions transaction.ITransactionReader
}

func NewAggregateService(accounts account.IAccountReader, transactions transaction.ITransactionReader) *AggregateService {
	return &AggregateService{accounts: accounts, transactions: transactions}
}

// TotalBalance is the sum of every account balance; zero when there are no accounts.
func (s *AggregateService) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	return s.accounts.SumBalances(ctx)
}

// SumTransactionsByType is the sum of amounts over transactions of one type.
func (s *AggregateService) SumTransactionsByType(ctx context.Context, transactionType TransactionType) (decimal.Decimal, error) {
	return s.transactions.SumByType(ctx, transactionType)
}
