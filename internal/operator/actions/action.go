package actions

import (
	"context"

	"github.com/carson-networks/bank-demo/internal/storage"
)

// IAction is a unit of write work. Perform runs inside a single transaction owned by
// the operator; returning an error rolls the whole action back.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
