// Package store keeps an audit history of extraction attempts in Postgres.
// It is optional: the pipeline itself never touches it.
package store

import (
	"context"
	"embed"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema embed.FS

type DB struct{ *pgxpool.Pool }

func Open(dsn string) (*DB, error) {
	p, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &DB{p}, nil
}

func (db *DB) Close(ctx context.Context)      { db.Pool.Close() }
func (db *DB) Ping(ctx context.Context) error { return db.Pool.Ping(ctx) }

func Migrate(ctx context.Context, db *DB) error {
	sqlBytes, err := schema.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, string(sqlBytes))
	return err
}

// Attempt is one processed input and its outcome. State holds the
// normalized game-state JSON when validation produced one, nil otherwise.
type Attempt struct {
	ID        int64
	CreatedAt time.Time
	InputText string
	Relevant  bool
	Status    string
	OK        bool
	State     []byte
}

func (db *DB) SaveAttempt(ctx context.Context, a Attempt) (int64, error) {
	var state any
	if len(a.State) > 0 {
		state = a.State
	}
	var id int64
	err := db.QueryRow(ctx, `
        INSERT INTO extractions(input_text, relevant, status, ok, state)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id
    `, a.InputText, a.Relevant, a.Status, a.OK, state).Scan(&id)
	return id, err
}

// Recent returns the newest attempts first.
func (db *DB) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(ctx, `
        SELECT id, created_at, input_text, relevant, status, ok, state
          FROM extractions
         ORDER BY id DESC
         LIMIT $1
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Attempt{}
	for rows.Next() {
		var a Attempt
		if err := rows.Scan(&a.ID, &a.CreatedAt, &a.InputText, &a.Relevant, &a.Status, &a.OK, &a.State); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
