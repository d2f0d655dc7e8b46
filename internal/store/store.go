// Package store is an append-only SQLite log of gateway turns. The assistant
// core never reads it; it exists so the gateway can list recent transcripts.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

type Turn struct {
	ID          int64     `json:"id"`
	Assistant   string    `json:"assistant"`
	UserMessage string    `json:"user_message"`
	Reply       string    `json:"reply"`
	CreatedAt   time.Time `json:"created_at"`
}

type Store struct {
	conn *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
// Pass ":memory:" for an in-memory database (used by tests).
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		// Expand leading ~ to actual home directory.
		if strings.HasPrefix(path, "~/") {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			path = filepath.Join(home, path[2:])
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Single connection avoids "database is locked" under concurrent writes.
	conn.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, err
		}
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &Store{conn: conn}, nil
}

func (s *Store) SaveTurn(ctx context.Context, assistant, userMessage, reply string) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO turns (assistant, user_message, reply, created_at) VALUES (?, ?, ?, ?)`,
		assistant, userMessage, reply, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// RecentTurns returns up to limit turns for an assistant, newest first.
func (s *Store) RecentTurns(ctx context.Context, assistant string, limit int) ([]Turn, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, assistant, user_message, reply, created_at
		 FROM turns WHERE assistant = ? ORDER BY id DESC LIMIT ?`,
		assistant, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turns []Turn
	for rows.Next() {
		var t Turn
		var createdAt string
		if err := rows.Scan(&t.ID, &t.Assistant, &t.UserMessage, &t.Reply, &createdAt); err != nil {
			return nil, err
		}
		t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

func (s *Store) Close() error {
	return s.conn.Close()
}
