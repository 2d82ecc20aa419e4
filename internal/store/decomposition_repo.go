// Package store persists morpheme decompositions in Postgres so repeated
// lookups do not hit the remote source again.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"github.com/Alfex4936/wordform/internal/model"
)

var ErrNotFound = sql.ErrNoRows

// Schema creates the decompositions table.
const Schema = `
create table if not exists decompositions (
  word       text        not null,
  source     text        not null,
  segments   jsonb       not null,
  created_at timestamptz not null default now(),
  primary key (word, source)
)`

// Open connects through the pgx stdlib driver and pings the server.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	return db, nil
}

type DecompositionRepo struct{ DB *sql.DB }

func NewDecompositionRepo(db *sql.DB) *DecompositionRepo { return &DecompositionRepo{DB: db} }

// EnsureSchema runs Schema.
func (r *DecompositionRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, Schema)
	return err
}

// Find returns the stored decomposition of word from source.
// If maxAge > 0, older rows count as missing.
func (r *DecompositionRepo) Find(ctx context.Context, word, source string, maxAge time.Duration) ([]model.Segment, error) {
	const q = `select segments, created_at from decompositions where word = $1 and source = $2`
	var (
		js []byte
		ts time.Time
	)
	if err := r.DB.QueryRowContext(ctx, q, word, source).Scan(&js, &ts); err != nil {
		return nil, err
	}
	if maxAge > 0 && time.Since(ts) > maxAge {
		return nil, ErrNotFound
	}
	var segs []model.Segment
	if err := json.Unmarshal(js, &segs); err != nil {
		// broken row: treat as a miss, it will be overwritten
		return nil, ErrNotFound
	}
	return segs, nil
}

// Upsert stores segs for (word, source), refreshing created_at.
func (r *DecompositionRepo) Upsert(ctx context.Context, word, source string, segs []model.Segment) error {
	js, err := json.Marshal(segs)
	if err != nil {
		return err
	}
	const q = `
insert into decompositions (word, source, segments, created_at)
values ($1, $2, $3, now())
on conflict (word, source) do update
set segments = excluded.segments,
    created_at = excluded.created_at`
	_, err = r.DB.ExecContext(ctx, q, word, source, js)
	return err
}

// PurgeOlderThan deletes rows older than olderThan.
func (r *DecompositionRepo) PurgeOlderThan(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, errors.New("store: olderThan must be > 0")
	}
	const q = `delete from decompositions where created_at < $1`
	res, err := r.DB.ExecContext(ctx, q, time.Now().Add(-olderThan))
	if err != nil {
		return 0, err
	}
	aff, _ := res.RowsAffected()
	return aff, nil
}
