package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteHistoryStore persists hand records in a SQLite database
type SQLiteHistoryStore struct {
	db *sql.DB
}

// NewSQLiteHistoryStore opens (creating if needed) a SQLite-backed history store
func NewSQLiteHistoryStore(path string) (*SQLiteHistoryStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS hand_history (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			cards TEXT NOT NULL,
			result TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_hand_history_session ON hand_history(session_id)`,
	}
	for _, query := range schema {
		if _, err := db.Exec(query); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating hand_history schema: %w", err)
		}
	}

	return &SQLiteHistoryStore{db: db}, nil
}

// Append adds a record to the store
func (s *SQLiteHistoryStore) Append(record HandRecord) error {
	if record.SessionID == "" {
		return fmt.Errorf("record has no sessionID")
	}

	_, err := s.db.Exec(
		`INSERT INTO hand_history (id, session_id, cards, result, created_at) VALUES (?, ?, ?, ?, ?)`,
		record.ID, record.SessionID, record.Cards, record.Result, record.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting hand record: %w", err)
	}
	return nil
}

// BySession retrieves all records for the given session, oldest first
func (s *SQLiteHistoryStore) BySession(sessionID string) ([]HandRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, cards, result, created_at FROM hand_history WHERE session_id = ? ORDER BY created_at ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying hand history: %w", err)
	}
	defer rows.Close()

	records := []HandRecord{}
	for rows.Next() {
		var record HandRecord
		var createdAt string
		if err := rows.Scan(&record.ID, &record.SessionID, &record.Cards, &record.Result, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning hand record: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing record timestamp: %w", err)
		}
		record.CreatedAt = ts
		records = append(records, record)
	}

	return records, rows.Err()
}

// Close closes the underlying database
func (s *SQLiteHistoryStore) Close() error {
	return s.db.Close()
}
