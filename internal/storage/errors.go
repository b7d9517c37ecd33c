package storage

import "github.com/carson-networks/bank-demo/internal/storage/sqlconfig"

var (
	ErrNotFound         = sqlconfig.ErrNotFound
	ErrAccountReference = sqlconfig.ErrAccountReference
	ErrInvalidAmount    = sqlconfig.ErrInvalidAmount
	ErrStoreUnavailable = sqlconfig.ErrStoreUnavailable
)
