package store

import (
	"database/sql"
	"fmt"

	"github.com/block-xaero/cyan/internal/core"
	"github.com/block-xaero/cyan/internal/types"
)

// CreateGroup inserts a new group.
func CreateGroup(db DBTX, name, icon, color, ownerNodeID string) (types.Group, error) {
	guid, err := core.GenerateGUID("grp")
	if err != nil {
		return types.Group{}, err
	}

	group := types.Group{
		ID:          guid,
		Name:        name,
		Icon:        icon,
		Color:       color,
		CreatedAt:   nowMillis(),
		OwnerNodeID: ownerNodeID,
	}

	_, err = db.Exec(
		`INSERT INTO groups (id, name, icon, color, created_at, owner_node_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		group.ID, group.Name, group.Icon, group.Color, group.CreatedAt, group.OwnerNodeID,
	)
	if err != nil {
		return types.Group{}, fmt.Errorf("create group: %w", err)
	}
	return group, nil
}

// ListGroups returns all groups ordered by creation.
func ListGroups(db DBTX) ([]types.Group, error) {
	rows, err := db.Query(
		`SELECT id, name, icon, color, created_at, owner_node_id
		 FROM groups ORDER BY created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []types.Group
	for rows.Next() {
		var g types.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Icon, &g.Color, &g.CreatedAt, &g.OwnerNodeID); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}

// CreateWorkspace inserts a new workspace under a group.
func CreateWorkspace(db DBTX, groupID, name, ownerNodeID string) (types.Workspace, error) {
	guid, err := core.GenerateGUID("wsp")
	if err != nil {
		return types.Workspace{}, err
	}

	workspace := types.Workspace{
		ID:          guid,
		GroupID:     groupID,
		Name:        name,
		CreatedAt:   nowMillis(),
		OwnerNodeID: ownerNodeID,
	}

	_, err = db.Exec(
		`INSERT INTO workspaces (id, group_id, name, created_at, owner_node_id)
		 VALUES (?, ?, ?, ?, ?)`,
		workspace.ID, workspace.GroupID, workspace.Name, workspace.CreatedAt, workspace.OwnerNodeID,
	)
	if err != nil {
		return types.Workspace{}, fmt.Errorf("create workspace: %w", err)
	}
	return workspace, nil
}

// ListWorkspaces returns workspaces, optionally scoped to one group.
func ListWorkspaces(db DBTX, groupID string) ([]types.Workspace, error) {
	query := `SELECT id, group_id, name, created_at, owner_node_id FROM workspaces`
	args := []any{}
	if groupID != "" {
		query += ` WHERE group_id = ?`
		args = append(args, groupID)
	}
	query += ` ORDER BY created_at`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workspaces []types.Workspace
	for rows.Next() {
		var w types.Workspace
		if err := rows.Scan(&w.ID, &w.GroupID, &w.Name, &w.CreatedAt, &w.OwnerNodeID); err != nil {
			return nil, err
		}
		workspaces = append(workspaces, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return workspaces, nil
}

// CreateBoard inserts a new board with the default face.
func CreateBoard(db DBTX, workspaceID, name, ownerNodeID string) (types.Board, error) {
	guid, err := core.GenerateGUID("brd")
	if err != nil {
		return types.Board{}, err
	}

	now := nowMillis()
	board := types.Board{
		ID:          guid,
		WorkspaceID: workspaceID,
		Name:        name,
		Face:        types.FaceCanvas,
		CreatedAt:   now,
		UpdatedAt:   now,
		OwnerNodeID: ownerNodeID,
	}

	_, err = db.Exec(
		`INSERT INTO boards (id, workspace_id, name, face, created_at, updated_at, owner_node_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		board.ID, board.WorkspaceID, board.Name, string(board.Face),
		board.CreatedAt, board.UpdatedAt, board.OwnerNodeID,
	)
	if err != nil {
		return types.Board{}, fmt.Errorf("create board: %w", err)
	}
	return board, nil
}

// GetBoard returns a board by id, or nil if absent.
func GetBoard(db DBTX, id string) (*types.Board, error) {
	row := db.QueryRow(
		`SELECT id, workspace_id, name, face, created_at, updated_at, owner_node_id
		 FROM boards WHERE id = ?`, id,
	)
	var b types.Board
	var face string
	if err := row.Scan(&b.ID, &b.WorkspaceID, &b.Name, &face, &b.CreatedAt, &b.UpdatedAt, &b.OwnerNodeID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	b.Face = types.Face(face)
	return &b, nil
}

// RenameBoard updates a board's name.
func RenameBoard(db DBTX, id, name string) error {
	result, err := db.Exec(
		`UPDATE boards SET name = ?, updated_at = ? WHERE id = ?`,
		name, nowMillis(), id,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// DeleteBoard removes a board and its cell and note rows.
func DeleteBoard(db DBTX, id string) error {
	if _, err := db.Exec(`DELETE FROM board_cells WHERE board_id = ?`, id); err != nil {
		return err
	}
	if _, err := db.Exec(`DELETE FROM board_notes WHERE board_id = ?`, id); err != nil {
		return err
	}
	result, err := db.Exec(`DELETE FROM boards WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// ListBoardCards returns all boards joined with group and workspace names.
func ListBoardCards(db DBTX) ([]types.BoardCard, error) {
	rows, err := db.Query(`
		SELECT b.id, b.workspace_id, b.name, b.face, b.created_at, b.updated_at, b.owner_node_id,
		       g.id, g.name, g.color, w.name
		FROM boards b
		JOIN workspaces w ON w.id = b.workspace_id
		JOIN groups g ON g.id = w.group_id
		ORDER BY b.created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []types.BoardCard
	for rows.Next() {
		var card types.BoardCard
		var face string
		if err := rows.Scan(
			&card.ID, &card.WorkspaceID, &card.Name, &face, &card.CreatedAt, &card.UpdatedAt, &card.OwnerNodeID,
			&card.GroupID, &card.GroupName, &card.GroupColor, &card.WorkspaceName,
		); err != nil {
			return nil, err
		}
		card.Face = types.Face(face)
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}

// GetFace returns a board's active face.
func GetFace(db DBTX, boardID string) (types.Face, error) {
	row := db.QueryRow(`SELECT face FROM boards WHERE id = ?`, boardID)
	var face string
	if err := row.Scan(&face); err != nil {
		if err == sql.ErrNoRows {
			return "", ErrNotFound
		}
		return "", err
	}
	return types.Face(face), nil
}

// SetFace persists a board's active face.
func SetFace(db DBTX, boardID string, face types.Face) error {
	if !types.ValidFace(string(face)) {
		return fmt.Errorf("invalid face %q", face)
	}
	result, err := db.Exec(
		`UPDATE boards SET face = ?, updated_at = ? WHERE id = ?`,
		string(face), nowMillis(), boardID,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}
