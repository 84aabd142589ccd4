package store

import (
	"context"
	"database/sql"
	"encoding/json"

	_ "github.com/lib/pq"
)

// PgStore persists session state in a single key-value table:
//
//	CREATE TABLE storefront_state (
//	    namespace  TEXT NOT NULL,
//	    key        TEXT NOT NULL,
//	    value      JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
//	    PRIMARY KEY (namespace, key)
//	);
//
// Postgres carries no change signal here, so Subscribe is a no-op and
// concurrent writers get plain last-write-wins semantics.
type PgStore struct {
	db *sql.DB
}

func NewPgStore(db *sql.DB) *PgStore {
	return &PgStore{db: db}
}

func (s *PgStore) Load(ctx context.Context, namespace, key string, dest any) error {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM storefront_state WHERE namespace = $1 AND key = $2`,
		namespace, key,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return ErrMalformed
	}
	return nil
}

func (s *PgStore) Save(ctx context.Context, namespace, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO storefront_state (namespace, key, value, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (namespace, key)
		 DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		namespace, key, raw,
	)
	return err
}

func (s *PgStore) Erase(ctx context.Context, namespace, key string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM storefront_state WHERE namespace = $1 AND key = $2`,
		namespace, key,
	)
	return err
}

func (s *PgStore) Subscribe(_ context.Context, _ string, _ func(key string)) (func(), error) {
	return func() {}, nil
}
