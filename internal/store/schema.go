package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a targeted row does not exist.
var ErrNotFound = errors.New("not found")

const schemaSQL = `
-- Board collections
CREATE TABLE IF NOT EXISTS groups (
  id TEXT PRIMARY KEY,                  -- e.g., "grp-x9y8z7w6"
  name TEXT NOT NULL,
  icon TEXT NOT NULL DEFAULT '',        -- single glyph for the rail
  color TEXT NOT NULL DEFAULT '',       -- hex accent color
  created_at INTEGER NOT NULL,          -- unix millis
  owner_node_id TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS workspaces (
  id TEXT PRIMARY KEY,                  -- e.g., "wsp-a1b2c3d4"
  group_id TEXT NOT NULL,
  name TEXT NOT NULL,
  created_at INTEGER NOT NULL,
  owner_node_id TEXT NOT NULL DEFAULT '',
  FOREIGN KEY (group_id) REFERENCES groups(id)
);

CREATE TABLE IF NOT EXISTS boards (
  id TEXT PRIMARY KEY,                  -- e.g., "brd-q5r6s7t8"
  workspace_id TEXT NOT NULL,
  name TEXT NOT NULL,
  face TEXT NOT NULL DEFAULT 'canvas',  -- canvas, notebook, notes
  created_at INTEGER NOT NULL,
  updated_at INTEGER NOT NULL DEFAULT 0,
  owner_node_id TEXT NOT NULL DEFAULT '',
  FOREIGN KEY (workspace_id) REFERENCES workspaces(id)
);

-- Notebook cells, one JSON array per board
CREATE TABLE IF NOT EXISTS board_cells (
  board_id TEXT PRIMARY KEY,
  cells_json TEXT NOT NULL,
  updated_at INTEGER NOT NULL,
  FOREIGN KEY (board_id) REFERENCES boards(id)
);

-- Notes face buffer, one row per board
CREATE TABLE IF NOT EXISTS board_notes (
  board_id TEXT PRIMARY KEY,
  content TEXT NOT NULL,
  updated_at INTEGER NOT NULL,
  FOREIGN KEY (board_id) REFERENCES boards(id)
);

-- Direct messaging
CREATE TABLE IF NOT EXISTS peers (
  id TEXT PRIMARY KEY,                  -- e.g., "peer-m3n4p5q6"
  display_name TEXT NOT NULL,
  online INTEGER NOT NULL DEFAULT 0,
  last_seen INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS dm_messages (
  id TEXT PRIMARY KEY,                  -- e.g., "dm-u7v8w9x0"
  peer_id TEXT NOT NULL,
  direction TEXT NOT NULL,              -- 'in' or 'out'
  body TEXT NOT NULL,
  created_at INTEGER NOT NULL,
  read INTEGER NOT NULL DEFAULT 0,
  FOREIGN KEY (peer_id) REFERENCES peers(id)
);

CREATE INDEX IF NOT EXISTS idx_boards_workspace ON boards(workspace_id);
CREATE INDEX IF NOT EXISTS idx_dm_messages_peer ON dm_messages(peer_id, created_at);
`

// DBTX abstracts *sql.DB and *sql.Tx.
type DBTX interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// InitSchema initializes the cyan schema and applies migrations.
func InitSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := initSchemaWith(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func initSchemaWith(db DBTX) error {
	if err := migrateSchema(db); err != nil {
		return err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		return err
	}
	return nil
}

// SchemaExists reports whether the cyan schema is present.
func SchemaExists(db *sql.DB) (bool, error) {
	row := db.QueryRow(`
		SELECT name FROM sqlite_master
		WHERE type='table' AND name='boards'
	`)
	var name string
	err := row.Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return name != "", nil
}

type tableColumn struct {
	Name    string
	ColType string
	NotNull int
	PK      int
}

func getTableInfo(db DBTX, table string) ([]tableColumn, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []tableColumn
	for rows.Next() {
		var col tableColumn
		var cid int
		var defaultValue sql.NullString
		if err := rows.Scan(&cid, &col.Name, &col.ColType, &col.NotNull, &defaultValue, &col.PK); err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return columns, nil
}

func hasColumn(columns []tableColumn, name string) bool {
	for _, col := range columns {
		if col.Name == name {
			return true
		}
	}
	return false
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
