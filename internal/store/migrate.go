package store

// migrateSchema upgrades live tables column-by-column. Tables are never
// dropped or rewritten; columns added after first release get ALTER TABLE
// treatment so older databases open cleanly.
func migrateSchema(db DBTX) error {
	boards, err := getTableInfo(db, "boards")
	if err != nil {
		return err
	}

	if len(boards) > 0 {
		// board_type predates the face naming.
		if hasColumn(boards, "board_type") && !hasColumn(boards, "face") {
			if _, err := db.Exec("ALTER TABLE boards RENAME COLUMN board_type TO face"); err != nil {
				return err
			}
		} else if !hasColumn(boards, "face") {
			if _, err := db.Exec("ALTER TABLE boards ADD COLUMN face TEXT NOT NULL DEFAULT 'canvas'"); err != nil {
				return err
			}
		}

		if !hasColumn(boards, "updated_at") {
			if _, err := db.Exec("ALTER TABLE boards ADD COLUMN updated_at INTEGER NOT NULL DEFAULT 0"); err != nil {
				return err
			}
			if _, err := db.Exec("UPDATE boards SET updated_at = created_at WHERE updated_at = 0"); err != nil {
				return err
			}
		}
	}

	for _, table := range []string{"groups", "workspaces", "boards"} {
		columns, err := getTableInfo(db, table)
		if err != nil {
			return err
		}
		if len(columns) == 0 || hasColumn(columns, "owner_node_id") {
			continue
		}
		if _, err := db.Exec("ALTER TABLE " + table + " ADD COLUMN owner_node_id TEXT NOT NULL DEFAULT ''"); err != nil {
			return err
		}
	}

	return nil
}
