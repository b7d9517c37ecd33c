package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/bank-demo/internal/storage/sqlconfig"
)

var _ ITransactionReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	query := selectTransactions(
		sm.Where(psql.Quote(sqlconfig.TransactionColumnID).EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, sqlconfig.ClassifyError(err)
	}
	return row, nil
}

// ListByAccount returns every transaction that references accountID, oldest first.
func (r *Reader) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*Transaction, error) {
	query := selectTransactions(
		sm.Where(psql.Quote(sqlconfig.TransactionColumnAccountID).EQ(psql.Arg(accountID))),
		sm.OrderBy(psql.Quote(sqlconfig.TransactionColumnOccurredAt)).Asc(),
		sm.OrderBy(psql.Quote(sqlconfig.TransactionColumnID)).Asc(),
	)
	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, sqlconfig.ClassifyError(err)
	}
	return rows, nil
}

// SumByType returns the sum of amounts over transactions of the given type, zero if none match.
func (r *Reader) SumByType(ctx context.Context, transactionType sqlconfig.TransactionType) (decimal.Decimal, error) {
	total, err := bob.One(ctx, r.exec, sumByTypeQuery(transactionType), scan.SingleColumnMapper[decimal.Decimal])
	if err != nil {
		return decimal.Zero, sqlconfig.ClassifyError(err)
	}
	return total, nil
}

func (r *Reader) Count(ctx context.Context) (int64, error) {
	query := psql.Select(
		sm.Columns(psql.Raw("count(*)")),
		sm.From(psql.Quote(sqlconfig.TransactionsTable)),
	)
	count, err := bob.One(ctx, r.exec, query, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, sqlconfig.ClassifyError(err)
	}
	return count, nil
}
