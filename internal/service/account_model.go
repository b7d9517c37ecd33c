package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-demo/internal/storage/account"
	"github.com/carson-networks/bank-demo/internal/storage/sqlconfig"
)

// AccountType represents an account type in the service layer.
type AccountType = sqlconfig.AccountType

const (
	AccountTypeChecking = sqlconfig.AccountTypeChecking
	AccountTypeSavings  = sqlconfig.AccountTypeSavings
)

// Account represents an account in the service layer.
type Account struct {
	ID       uuid.UUID
	Balance  decimal.Decimal
	OpenedAt time.Time
	Type     AccountType
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

func accountFromStorage(row *account.Account) Account {
	return Account{
		ID:       row.ID,
		Balance:  row.Balance,
		OpenedAt: row.OpenedAt,
		Type:     row.Type,
	}
}

func accountsFromStorage(rows []*account.Account) []Account {
	if len(rows) == 0 {
		return nil
	}
	converted := make([]Account, len(rows))
	for i, row := range rows {
		converted[i] = accountFromStorage(row)
	}
	return converted
}
