package account

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
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

// FindByIDForShare reads an account and holds a share lock on its row until the
// transaction ends, so the row cannot be deleted underneath the caller.
func (w *Writer) FindByIDForShare(ctx context.Context, id uuid.UUID) (*Account, error) {
	query := selectAccounts(byID(id), sm.ForShare())
	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[*Account]())
	if err != nil {
		return nil, sqlconfig.ClassifyError(err)
	}
	return row, nil
}

// Create inserts an account and returns the stored row with its generated ID.
func (w *Writer) Create(ctx context.Context, create *AccountCreate) (*Account, error) {
	openedAt := create.OpenedAt
	if openedAt.IsZero() {
		openedAt = time.Now()
	}

	query := psql.Insert(
		im.Into(psql.Quote(sqlconfig.AccountsTable),
			sqlconfig.AccountColumnBalance,
			sqlconfig.AccountColumnOpenedAt,
			sqlconfig.AccountColumnType,
		),
		im.Values(psql.Arg(create.Balance), psql.Arg(openedAt), psql.Arg(create.Type)),
		im.Returning(accountColumns...),
	)
	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[*Account]())
	if err != nil {
		return nil, sqlconfig.ClassifyError(err)
	}
	return row, nil
}
