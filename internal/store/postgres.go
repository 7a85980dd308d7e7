package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/shapesapp/shapes/internal/document"
	"github.com/shapesapp/shapes/internal/scene"
	"github.com/shapesapp/shapes/internal/typeid"
)

// DB is the subset of *pgxpool.Pool the store needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

const schema = `
CREATE TABLE IF NOT EXISTS scene_snapshots (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	version    INTEGER NOT NULL,
	document   JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (name, version)
)`

// PostgresStore keeps every saved version as a row in scene_snapshots.
type PostgresStore struct {
	db DB
}

func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the snapshot table if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate scene_snapshots: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, name string, sc *scene.Scene) (Snapshot, error) {
	if err := ValidateName(name); err != nil {
		return Snapshot{}, err
	}
	doc, err := document.Marshal(sc)
	if err != nil {
		return Snapshot{}, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	// serialize version allocation per name
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, name); err != nil {
		return Snapshot{}, fmt.Errorf("lock scene %s: %w", name, err)
	}

	snap := Snapshot{ID: typeid.NewSnapshotID(), Name: name}
	err = tx.QueryRow(ctx, `
		INSERT INTO scene_snapshots (id, name, version, document)
		SELECT $1, $2, COALESCE(MAX(version), 0) + 1, $3
		FROM scene_snapshots WHERE name = $2
		RETURNING version, created_at`,
		snap.ID, name, doc,
	).Scan(&snap.Version, &snap.CreatedAt)
	if err != nil {
		return Snapshot{}, fmt.Errorf("insert snapshot: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("commit: %w", err)
	}
	return snap, nil
}

func (s *PostgresStore) Load(ctx context.Context, name string) (*scene.Scene, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	var doc []byte
	err := s.db.QueryRow(ctx, `
		SELECT document FROM scene_snapshots
		WHERE name = $1 ORDER BY version DESC LIMIT 1`, name,
	).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return document.Unmarshal(doc)
}

func (s *PostgresStore) List(ctx context.Context) ([]Snapshot, error) {
	rows, err := s.db.Query(ctx, `
		SELECT DISTINCT ON (name) id, name, version, created_at
		FROM scene_snapshots ORDER BY name, version DESC`)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var list []Snapshot
	for rows.Next() {
		var snap Snapshot
		if err := rows.Scan(&snap.ID, &snap.Name, &snap.Version, &snap.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		list = append(list, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return list, nil
}

func (s *PostgresStore) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	tag, err := s.db.Exec(ctx, `DELETE FROM scene_snapshots WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("delete snapshots: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
