package account

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

const DefaultPageSize = 20

// Account represents an account record.
type Account struct {
	ID       uuid.UUID             `db:"id"`
	Balance  decimal.Decimal       `db:"solde"`
	OpenedAt time.Time             `db:"date"`
	Type     sqlconfig.AccountType `db:"type"`
}

// AccountFilter specifies filters for listing accounts.
type AccountFilter struct {
	Limit  int
	Offset int
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

// AccountListResult contains a page of accounts and an optional next cursor.
type AccountListResult struct {
	Accounts   []*Account
	NextCursor *AccountCursor
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	Balance  decimal.Decimal
	OpenedAt time.Time // defaults to now if zero
	Type     sqlconfig.AccountType
}

// IAccountReader is the read side of the account store.
type IAccountReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	List(ctx context.Context, filter *AccountFilter) (*AccountListResult, error)
	ListAll(ctx context.Context) ([]*Account, error)
	FindByType(ctx context.Context, accountType sqlconfig.AccountType) ([]*Account, error)
	SumBalances(ctx context.Context) (decimal.Decimal, error)
	Count(ctx context.Context) (int64, error)
}

var accountColumns = []any{
	psql.Quote(sqlconfig.AccountColumnID),
	psql.Quote(sqlconfig.AccountColumnBalance),
	psql.Quote(sqlconfig.AccountColumnOpenedAt),
	psql.Quote(sqlconfig.AccountColumnType),
}

func selectAccounts(mods ...bob.Mod[*dialect.SelectQuery]) bob.BaseQuery[*dialect.SelectQuery] {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(accountColumns...),
		sm.From(psql.Quote(sqlconfig.AccountsTable)),
	}
	return psql.Select(append(queryMods, mods...)...)
}

func byID(id uuid.UUID) bob.Mod[*dialect.SelectQuery] {
	return sm.Where(psql.Quote(sqlconfig.AccountColumnID).EQ(psql.Arg(id)))
}

func byType(accountType sqlconfig.AccountType) bob.Mod[*dialect.SelectQuery] {
	return sm.Where(psql.Quote(sqlconfig.AccountColumnType).EQ(psql.Arg(accountType)))
}

func sumBalancesQuery() bob.BaseQuery[*dialect.SelectQuery] {
	return psql.Select(
		sm.Columns(psql.Raw(`COALESCE(SUM("solde"), 0)`)),
		sm.From(psql.Quote(sqlconfig.AccountsTable)),
	)
}

func oldestFirst() []bob.Mod[*dialect.SelectQuery] {
	return []bob.Mod[*dialect.SelectQuery]{
		sm.OrderBy(psql.Quote(sqlconfig.AccountColumnOpenedAt)).Asc(),
		sm.OrderBy(psql.Quote(sqlconfig.AccountColumnID)).Asc(),
	}
}
