package httperror

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-demo/internal/storage"
)

// FromService maps a service error onto the HTTP status the API reports for it.
func FromService(err error, message string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrAccountReference):
		return huma.Error404NotFound(message, err)
	case errors.Is(err, storage.ErrInvalidAmount):
		return huma.Error400BadRequest(message, err)
	case errors.Is(err, storage.ErrStoreUnavailable):
		return huma.Error503ServiceUnavailable(message, err)
	default:
		return huma.Error500InternalServerError(message, err)
	}
}
