package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// kvRepo implements KVRepo on the "kv" table.
type kvRepo struct {
	drv *entsql.Driver
}

func (r *kvRepo) Get(ctx context.Context, key string) ([]byte, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("value").
		From(entsql.Table(KVTable.Name)).
		Where(entsql.EQ("key", key)).
		Limit(1).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query key %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query key %q: %w", key, err)
		}
		return nil, ErrNotFound
	}
	var value string
	if err := rows.Scan(&value); err != nil {
		return nil, fmt.Errorf("scan key %q: %w", key, err)
	}
	return []byte(value), nil
}

func (r *kvRepo) Put(ctx context.Context, key string, value []byte) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(KVTable.Name).
		Columns("key", "value", "updated_at").
		Values(key, string(value), time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("put key %q: %w", key, err)
	}
	return nil
}

func (r *kvRepo) Delete(ctx context.Context, key string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(KVTable.Name).
		Where(entsql.EQ("key", key)).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete key %q: %w", key, err)
	}
	return nil
}
