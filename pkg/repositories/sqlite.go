package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	gametypes "gamecore/pkg/game/types"
	"gamecore/pkg/journal"
	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at INTEGER NOT NULL,
	state BLOB NOT NULL
);
CREATE TABLE IF NOT EXISTS journal (
	id TEXT PRIMARY KEY,
	created_at INTEGER NOT NULL,
	kind TEXT NOT NULL,
	entry BLOB NOT NULL
);
`

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, path string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %v", err)
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveSnapshot(ctx context.Context, timestamp int64, gameState gametypes.GameState) error {
	blob, err := encodeSnapshot(gameState)
	if err != nil {
		return err
	}

	q := `
	INSERT INTO snapshots (created_at, state)
	VALUES (?, ?);
	`
	if _, err := r.db.ExecContext(ctx, q, timestamp, blob); err != nil {
		return fmt.Errorf("failed to insert snapshot: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) LoadLatestSnapshot(ctx context.Context) (*gametypes.GameState, error) {
	q := `
	SELECT state FROM snapshots ORDER BY id DESC LIMIT 1;
	`
	var blob []byte
	if err := r.db.QueryRowContext(ctx, q).Scan(&blob); err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan snapshot: %v", err)
	}

	return decodeSnapshot(blob)
}

func (r *SQLiteRepository) AppendJournal(ctx context.Context, entry *journal.Entry) error {
	blob, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal journal entry: %v", err)
	}

	q := `
	INSERT INTO journal (id, created_at, kind, entry)
	VALUES (?, ?, ?, ?);
	`
	if _, err := r.db.ExecContext(ctx, q, entry.ID, entry.Timestamp, entry.Kind, blob); err != nil {
		return fmt.Errorf("failed to insert journal entry: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) ListJournal(ctx context.Context, limit int) ([]*journal.Entry, error) {
	q := `
	SELECT entry FROM journal ORDER BY created_at DESC, id LIMIT ?;
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
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
