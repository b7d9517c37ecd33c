package sqlconfig

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"
)

var (
	// ErrNotFound indicates a lookup by id matched no row.
	ErrNotFound = errors.New("record not found")
	// ErrAccountReference indicates a transaction referenced an account that does not exist.
	ErrAccountReference = errors.New("transaction references an unknown account")
	// ErrInvalidAmount indicates a negative transaction amount.
	ErrInvalidAmount = errors.New("transaction amount must not be negative")
	// ErrStoreUnavailable indicates the database could not be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
)

const (
	pqForeignKeyViolation pq.ErrorCode  = "23503"
	pqCheckViolation      pq.ErrorCode  = "23514"
	pqConnectionException pq.ErrorClass = "08"
)

// ClassifyError maps driver errors onto the store's sentinel errors. The original
// error is kept in the chain so callers can still inspect it.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == pqForeignKeyViolation && pqErr.Constraint == TransactionAccountConstraint:
			return fmt.Errorf("%w: %w", ErrAccountReference, err)
		case pqErr.Code == pqCheckViolation && pqErr.Constraint == TransactionAmountConstraint:
			return fmt.Errorf("%w: %w", ErrInvalidAmount, err)
		case pqErr.Code.Class() == pqConnectionException:
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return err
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return err
}
