package actions

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-demo/internal/storage"
	"github.com/carson-networks/bank-demo/internal/storage/sqlconfig"
	"github.com/carson-networks/bank-demo/internal/storage/transaction"
)

type CreateTransaction struct {
	AccountID  uuid.UUID
	Amount     decimal.Decimal
	OccurredAt time.Time
	Type       sqlconfig.TransactionType

	Result *transaction.Transaction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if t.Amount.IsNegative() {
		return storage.ErrInvalidAmount
	}

	_, err := writer.Account.FindByIDForShare(ctx, t.AccountID)
	if errors.Is(err, storage.ErrNotFound) {
		return storage.ErrAccountReference
	}
	if err != nil {
		return err
	}

	created, err := writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		Amount:     t.Amount,
		OccurredAt: t.OccurredAt,
		Type:       t.Type,
		AccountID:  t.AccountID,
	})
	if err != nil {
		return err
	}

	t.Result = created
	return nil
}
