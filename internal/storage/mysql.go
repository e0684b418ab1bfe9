package storage

import (
	"context"
	"database/sql"
	"errors"
)

// MySQL is a Store over a single key/value table. It exists so the
// slot model can outlive a process without a Redis instance; the
// access pattern stays identical (whole-value reads and writes).
type MySQL struct {
	db *sql.DB
}

// NewMySQL prepares the slots table and returns the store. The table
// is created on first use so deployments need no separate migration
// step.
func NewMySQL(ctx context.Context, db *sql.DB) (*MySQL, error) {
	_, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS slots (
			k VARCHAR(191) NOT NULL PRIMARY KEY,
			v MEDIUMBLOB NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return nil, err
	}
	return &MySQL{db: db}, nil
}

func (s *MySQL) Get(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	err := s.db.QueryRowContext(ctx, "SELECT v FROM slots WHERE k=?", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return v, err
}

func (s *MySQL) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO slots (k, v) VALUES (?,?) ON DUPLICATE KEY UPDATE v=VALUES(v)",
		key, value)
	return err
}

func (s *MySQL) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM slots WHERE k=?", key)
	return err
}
