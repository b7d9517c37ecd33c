package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/bank-demo/internal/config"
	"github.com/carson-networks/bank-demo/internal/storage/sqlconfig"
)

type Storage struct {
	DB     *sql.DB
	bobDB  bob.DB
	Reader *Reader
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(env.PostgresMaxConns)

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, sqlconfig.ClassifyError(err)
	}

	return NewStorageFromDB(db), nil
}

// NewStorageFromDB wraps an already opened connection pool.
func NewStorageFromDB(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)
	return &Storage{
		DB:     db,
		bobDB:  bobDB,
		Reader: NewReader(bobDB),
	}
}

// Write starts a database transaction. The caller must Commit or Rollback the returned Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("storage.Write: %w", sqlconfig.ClassifyError(err))
	}
	writer := NewWriter(tx)
	return &writer, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
