package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-demo/internal/storage/sqlconfig"
	"github.com/carson-networks/bank-demo/internal/storage/transaction"
)

// TransactionType represents a transaction type in the service layer.
type TransactionType = sqlconfig.TransactionType

const (
	TransactionTypeDeposit    = sqlconfig.TransactionTypeDeposit
	TransactionTypeWithdrawal = sqlconfig.TransactionTypeWithdrawal
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	Amount     decimal.Decimal
	OccurredAt time.Time
	Type       TransactionType
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:         row.ID,
		AccountID:  row.AccountID,
		Amount:     row.Amount,
		OccurredAt: row.OccurredAt,
		Type:       row.Type,
	}
}
