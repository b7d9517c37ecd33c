package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"

	"github.com/carson-networks/bank-demo/internal/storage/sqlconfig"
)

// Transaction represents a transaction record. AccountID is a lookup key into the
// account table; a transaction never owns its account.
type Transaction struct {
	ID         uuid.UUID                 `db:"id"`
	Amount     decimal.Decimal           `db:"montant"`
	OccurredAt time.Time                 `db:"date"`
	Type       sqlconfig.TransactionType `db:"type"`
	AccountID  uuid.UUID                 `db:"compte_id"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Amount     decimal.Decimal
	OccurredAt time.Time // defaults to now if zero
	Type       sqlconfig.TransactionType
	AccountID  uuid.UUID
}

// ITransactionReader is the read side of the transaction store.
type ITransactionReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*Transaction, error)
	SumByType(ctx context.Context, transactionType sqlconfig.TransactionType) (decimal.Decimal, error)
	Count(ctx context.Context) (int64, error)
}

var transactionColumns = []any{
	psql.Quote(sqlconfig.TransactionColumnID),
	psql.Quote(sqlconfig.TransactionColumnAmount),
	psql.Quote(sqlconfig.TransactionColumnOccurredAt),
	psql.Quote(sqlconfig.TransactionColumnType),
	psql.Quote(sqlconfig.TransactionColumnAccountID),
}

func selectTransactions(mods ...bob.Mod[*dialect.SelectQuery]) bob.BaseQuery[*dialect.SelectQuery] {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(psql.Quote(sqlconfig.TransactionsTable)),
	}
	return psql.Select(append(queryMods, mods...)...)
}

func sumByTypeQuery(transactionType sqlconfig.TransactionType) bob.BaseQuery[*dialect.SelectQuery] {
	return psql.Select(
		sm.Columns(psql.Raw(`COALESCE(SUM("montant"), 0)`)),
		sm.From(psql.Quote(sqlconfig.TransactionsTable)),
		sm.Where(psql.Quote(sqlconfig.TransactionColumnType).EQ(psql.Arg(transactionType))),
	)
}
