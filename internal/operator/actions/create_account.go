package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-demo/internal/storage"
	"github.com/carson-networks/bank-demo/internal/storage/account"
	"github.com/carson-networks/bank-demo/internal/storage/sqlconfig"
)

type CreateAccount struct {
	Balance  decimal.Decimal
	OpenedAt time.Time
	Type     sqlconfig.AccountType

	// Result holds the stored account once Perform succeeds.
	Result *account.Account
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := writer.Account.Create(ctx, &account.AccountCreate{
		Balance:  c.Balance,
		OpenedAt: c.OpenedAt,
		Type:     c.Type,
	})
	if err != nil {
		return err
	}

	c.Result = created
	return nil
}
