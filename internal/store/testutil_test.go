package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/block-xaero/cyan/internal/types"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func requireSchema(t *testing.T, db *sql.DB) {
	t.Helper()
	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
}

func seedBoard(t *testing.T, db *sql.DB, name string) types.Board {
	t.Helper()
	group, err := CreateGroup(db, "xaero", "✦", "#00a0a0", "node-test")
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	workspace, err := CreateWorkspace(db, group.ID, "core", "node-test")
	if err != nil {
		t.Fatalf("create workspace: %v", err)
	}
	board, err := CreateBoard(db, workspace.ID, name, "node-test")
	if err != nil {
		t.Fatalf("create board: %v", err)
	}
	return board
}
