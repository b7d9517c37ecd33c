package transaction

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/bank-demo/internal/storage/sqlconfig"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Insert stores a transaction and returns the stored row. A dangling AccountID fails
// with sqlconfig.ErrAccountReference and a negative amount with sqlconfig.ErrInvalidAmount.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	if create.Amount.IsNegative() {
		return nil, sqlconfig.ErrInvalidAmount
	}

	occurredAt := create.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	query := psql.Insert(
		im.Into(psql.Quote(sqlconfig.TransactionsTable),
			sqlconfig.TransactionColumnAmount,
			sqlconfig.TransactionColumnOccurredAt,
			sqlconfig.TransactionColumnType,
			sqlconfig.TransactionColumnAccountID,
		),
		im.Values(
			psql.Arg(create.Amount),
			psql.Arg(occurredAt),
			psql.Arg(create.Type),
			psql.Arg(create.AccountID),
		),
		im.Returning(transactionColumns...),
	)
	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, sqlconfig.ClassifyError(err)
	}
	return row, nil
}
