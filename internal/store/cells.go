package store

import "database/sql"

// GetCellsJSON returns the raw cells blob for a board. The second return
// is false when the board has no cells row yet.
func GetCellsJSON(db DBTX, boardID string) (string, bool, error) {
	row := db.QueryRow(`SELECT cells_json FROM board_cells WHERE board_id = ?`, boardID)
	var blob string
	if err := row.Scan(&blob); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return blob, true, nil
}

// SaveCellsJSON writes the cells blob for a board and touches the board's
// modified time.
func SaveCellsJSON(db DBTX, boardID, blob string) error {
	now := nowMillis()
	if _, err := db.Exec(
		`INSERT INTO board_cells (board_id, cells_json, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(board_id) DO UPDATE SET cells_json = excluded.cells_json, updated_at = excluded.updated_at`,
		boardID, blob, now,
	); err != nil {
		return err
	}
	_, err := db.Exec(`UPDATE boards SET updated_at = ? WHERE id = ?`, now, boardID)
	return err
}

// CellsUpdatedAt returns the last cells write time, zero when absent.
func CellsUpdatedAt(db DBTX, boardID string) (int64, error) {
	row := db.QueryRow(`SELECT updated_at FROM board_cells WHERE board_id = ?`, boardID)
	var ts int64
	if err := row.Scan(&ts); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return ts, nil
}
