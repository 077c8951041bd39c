package store

import (
	"database/sql"

	"github.com/block-xaero/cyan/internal/types"
)

// GetNote returns a board's notes buffer, or nil when none was saved.
func GetNote(db DBTX, boardID string) (*types.Note, error) {
	row := db.QueryRow(`SELECT board_id, content, updated_at FROM board_notes WHERE board_id = ?`, boardID)
	var note types.Note
	if err := row.Scan(&note.BoardID, &note.Content, &note.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

// SaveNote writes a board's notes buffer and touches the board's modified
// time.
func SaveNote(db DBTX, boardID, content string) (types.Note, error) {
	note := types.Note{
		BoardID:   boardID,
		Content:   content,
		UpdatedAt: nowMillis(),
	}
	if _, err := db.Exec(
		`INSERT INTO board_notes (board_id, content, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(board_id) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at`,
		note.BoardID, note.Content, note.UpdatedAt,
	); err != nil {
		return types.Note{}, err
	}
	_, err := db.Exec(`UPDATE boards SET updated_at = ? WHERE id = ?`, note.UpdatedAt, boardID)
	if err != nil {
		return types.Note{}, err
	}
	return note, nil
}
