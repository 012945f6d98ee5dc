package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	gametypes "gamecore/pkg/game/types"
	"gamecore/pkg/journal"
	"gamecore/pkg/log"
	"github.com/jackc/pgx/v5"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id BIGSERIAL PRIMARY KEY,
	created_at BIGINT NOT NULL,
	state BYTEA NOT NULL
);
CREATE TABLE IF NOT EXISTS journal (
	id TEXT PRIMARY KEY,
	created_at BIGINT NOT NULL,
	kind TEXT NOT NULL,
	entry BYTEA NOT NULL
);
`

type PostgresRepository struct {
	conn *pgx.Conn
}

// NewPostgresRepository creates a new PostgresRepository.
// It panics if it is unable to connect to the database.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) Repository {
	conn := connectDb(ctx, connStr)

	if _, err := conn.Exec(ctx, postgresSchema); err != nil {
		panic(fmt.Sprintf("Unable to create schema: %v\n", err))
	}

	return &PostgresRepository{
		conn: conn,
	}
}

func connectDb(ctx context.Context, connStr string) *pgx.Conn {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		panic(fmt.Sprintf("Unable to connect to database: %v\n", err))
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		panic(fmt.Sprintf("Unable to query database: %v\n", err))
	}
	log.Info("Connected to %s as %s", database, username)

	return conn
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) SaveSnapshot(ctx context.Context, timestamp int64, gameState gametypes.GameState) error {
	blob, err := encodeSnapshot(gameState)
	if err != nil {
		return err
	}

	q := `
	INSERT INTO snapshots (created_at, state) VALUES ($1, $2);
	`
	if _, err := r.conn.Exec(ctx, q, timestamp, blob); err != nil {
		return fmt.Errorf("failed to insert snapshot: %v", err)
	}

	return nil
}

func (r *PostgresRepository) LoadLatestSnapshot(ctx context.Context) (*gametypes.GameState, error) {
	q := `
	SELECT state FROM snapshots ORDER BY id DESC LIMIT 1;
	`
	var blob []byte
	if err := r.conn.QueryRow(ctx, q).Scan(&blob); err != nil {
		if err == pgx.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan snapshot: %v", err)
	}

	return decodeSnapshot(blob)
}

func (r *PostgresRepository) AppendJournal(ctx context.Context, entry *journal.Entry) error {
	blob, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal journal entry: %v", err)
	}

	q := `
	INSERT INTO journal (id, created_at, kind, entry) VALUES ($1, $2, $3, $4);
	`
	if _, err := r.conn.Exec(ctx, q, entry.ID, entry.Timestamp, entry.Kind, blob); err != nil {
		return fmt.Errorf("failed to insert journal entry: %v", err)
	}

	return nil
}

func (r *PostgresRepository) ListJournal(ctx context.Context, limit int) ([]*journal.Entry, error) {
	q := `
	SELECT entry FROM journal ORDER BY created_at DESC, id LIMIT $1;
	`
	rows, err := r.conn.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %v", err)
	}
	defer rows.Close()

	var entries []*journal.Entry
	for rows.Next() {
		var blob []byte
		if err := rows.Scan(&blob); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %v", err)
		}
		entry := &journal.Entry{}
		if err := json.Unmarshal(blob, entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal journal entry: %v", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate journal: %v", err)
	}

	return entries, nil
}
