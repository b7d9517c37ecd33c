package storage

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"

	"github.com/carson-networks/bank-demo/internal/storage/account"
	"github.com/carson-networks/bank-demo/internal/storage/sqlconfig"
	"github.com/carson-networks/bank-demo/internal/storage/transaction"
)

// seedLockKey is the pg advisory lock key taken while claiming seed data.
const seedLockKey int64 = 0x62616e6b64656d6f

type Writer struct {
	tx          bob.Tx
	Account     *account.Writer
	Transaction *transaction.Writer
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:          tx,
		Account:     account.NewWriter(tx),
		Transaction: transaction.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return sqlconfig.ClassifyError(w.tx.Commit(context.Background()))
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}

// ClaimSeed serialises concurrent seeders on an advisory lock held until the
// transaction ends, then records name in the seed claim table. It reports false
// when name was already claimed by an earlier, committed seed.
func (w *Writer) ClaimSeed(ctx context.Context, name string) (bool, error) {
	if _, err := w.tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", seedLockKey); err != nil {
		return false, sqlconfig.ClassifyError(err)
	}

	result, err := bob.Exec(ctx, w.tx, seedClaimQuery(name))
	if err != nil {
		return false, sqlconfig.ClassifyError(err)
	}
	inserted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return inserted == 1, nil
}

func seedClaimQuery(name string) bob.BaseQuery[*dialect.InsertQuery] {
	return psql.Insert(
		im.Into(psql.Quote(sqlconfig.SeedClaimTable), sqlconfig.SeedClaimColumnName),
		im.Values(psql.Arg(name)),
		im.OnConflict(psql.Quote(sqlconfig.SeedClaimColumnName)).DoNothing(),
	)
}
