package account

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/bank-demo/internal/storage/sqlconfig"
)

var _ IAccountReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) List(ctx context.Context, filter *AccountFilter) (*AccountListResult, error) {
	limit := DefaultPageSize
	offset := 0
	if filter != nil {
		if filter.Limit > 0 {
			limit = filter.Limit
		}
		offset = filter.Offset
	}

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Limit(limit + 1),
		sm.Offset(offset),
	}
	queryMods = append(queryMods, oldestFirst()...)
	rows, err := bob.All(ctx, r.exec, selectAccounts(queryMods...), scan.StructMapper[*Account]())
	if err != nil {
		return nil, sqlconfig.ClassifyError(err)
	}

	if len(rows) == 0 {
		return &AccountListResult{Accounts: nil, NextCursor: nil}, nil
	}

	var nextCursor *AccountCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &AccountCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	return &AccountListResult{Accounts: rows, NextCursor: nextCursor}, nil
}

// ListAll returns every account, oldest first.
func (r *Reader) ListAll(ctx context.Context) ([]*Account, error) {
	rows, err := bob.All(ctx, r.exec, selectAccounts(oldestFirst()...), scan.StructMapper[*Account]())
	if err != nil {
		return nil, sqlconfig.ClassifyError(err)
	}
	return rows, nil
}

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	row, err := bob.One(ctx, r.exec, selectAccounts(byID(id)), scan.StructMapper[*Account]())
	if err != nil {
		return nil, sqlconfig.ClassifyError(err)
	}
	return row, nil
}

func (r *Reader) FindByType(ctx context.Context, accountType sqlconfig.AccountType) ([]*Account, error) {
	queryMods := append([]bob.Mod[*dialect.SelectQuery]{byType(accountType)}, oldestFirst()...)
	rows, err := bob.All(ctx, r.exec, selectAccounts(queryMods...), scan.StructMapper[*Account]())
	if err != nil {
		return nil, sqlconfig.ClassifyError(err)
	}
	return rows, nil
}

// SumBalances returns the sum of every balance, or zero when there are no accounts.
// It is a single statement so it reads one snapshot of the table.
func (r *Reader) SumBalances(ctx context.Context) (decimal.Decimal, error) {
	total, err := bob.One(ctx, r.exec, sumBalancesQuery(), scan.SingleColumnMapper[decimal.Decimal])
	if err != nil {
		return decimal.Zero, sqlconfig.ClassifyError(err)
	}
	return total, nil
}

func (r *Reader) Count(ctx context.Context) (int64, error) {
	query := psql.Select(
		sm.Columns(psql.Raw("count(*)")),
		sm.From(psql.Quote(sqlconfig.AccountsTable)),
	)
	count, err := bob.One(ctx, r.exec, query, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, sqlconfig.ClassifyError(err)
	}
	return count, nil
}
