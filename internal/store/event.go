package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter hands out the global monotonic sequence stamped on every
// event, so the activity log has one total order even when events are
// appended from several goroutines.
//
// Uses raw SQL because the builder has no atomic counter primitive. The mutex
// serializes within the process; the RETURNING clause makes the increment
// atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo on the "events" table.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

var eventColumns = []string{"id", "sequence", "kind", "session_id", "payload", "created_at"}

func (r *eventRepo) Append(ctx context.Context, e Event) (Event, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return Event{}, err
	}
	if len(e.Payload) == 0 {
		e.Payload = json.RawMessage("{}")
	}
	e.Sequence = seqNum
	e.Timestamp = time.Now().UTC()

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(EventsTable.Name).
		Columns("sequence", "kind", "session_id", "payload", "created_at").
		Values(e.Sequence, e.Kind, e.SessionID, string(e.Payload), e.Timestamp).
		Query()

	var res entsql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return Event{}, fmt.Errorf("save %s event: %w", e.Kind, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Event{}, fmt.Errorf("save %s event: %w", e.Kind, err)
	}
	e.ID = int(id)
	return e, nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode LLM request event: %w", err)
	}
	_, err = r.Append(ctx, Event{Kind: EventKindLLMRequest, Payload: payload})
	return err
}

func (r *eventRepo) Query(ctx context.Context, opts QueryOpts) ([]Event, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(eventColumns...).
		From(entsql.Table(EventsTable.Name)).
		OrderBy(entsql.Desc("sequence"))
	if opts.Kind != "" {
		sel.Where(entsql.EQ("kind", opts.Kind))
	}
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	query, args := sel.Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) Get(ctx context.Context, id int) (Event, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(eventColumns...).
		From(entsql.Table(EventsTable.Name)).
		Where(entsql.EQ("id", id)).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return Event{}, fmt.Errorf("query event %d: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return Event{}, fmt.Errorf("query event %d: %w", id, err)
		}
		return Event{}, fmt.Errorf("event %d: %w", id, ErrNotFound)
	}
	return scanEvent(rows)
}

func scanEvent(rows *entsql.Rows) (Event, error) {
	var (
		e       Event
		payload string
	)
	if err := rows.Scan(&e.ID, &e.Sequence, &e.Kind, &e.SessionID, &payload, &e.Timestamp); err != nil {
		return Event{}, fmt.Errorf("scan event: %w", err)
	}
	e.Payload = json.RawMessage(payload)
	return e, nil
}

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
