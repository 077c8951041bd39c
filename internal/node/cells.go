package node

import (
	"encoding/json"
	"fmt"

	"github.com/block-xaero/cyan/internal/core"
	"github.com/block-xaero/cyan/internal/store"
	"github.com/block-xaero/cyan/internal/types"
)

const welcomeCellContent = "# Welcome\n\nThis notebook is empty. Press `a` to add a cell, `enter` to edit one."

// Cells loads a board's notebook cells. A missing row or a malformed blob
// falls back to a default welcome cell, which is persisted immediately so
// the next load is clean; the failure is logged, never surfaced.
func (n *Node) Cells(boardID string) ([]types.Cell, error) {
	blob, ok, err := store.GetCellsJSON(n.db, boardID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return n.resetCells(boardID)
	}

	var cells []types.Cell
	if err := json.Unmarshal([]byte(blob), &cells); err != nil {
		n.log.Warn().Err(err).Str("board", boardID).Msg("malformed cells blob, resetting")
		return n.resetCells(boardID)
	}
	return cells, nil
}

func (n *Node) resetCells(boardID string) ([]types.Cell, error) {
	guid, err := core.GenerateGUID("cel")
	if err != nil {
		return nil, err
	}
	cells := []types.Cell{{
		ID:       guid,
		CellType: types.CellTypeMarkdown,
		Content:  welcomeCellContent,
	}}
	if err := n.SaveCells(boardID, cells); err != nil {
		return nil, err
	}
	return cells, nil
}

// SaveCells persists the whole cell list for a board.
func (n *Node) SaveCells(boardID string, cells []types.Cell) error {
	if cells == nil {
		cells = []types.Cell{}
	}
	blob, err := json.Marshal(cells)
	if err != nil {
		return fmt.Errorf("encode cells: %w", err)
	}
	return store.SaveCellsJSON(n.db, boardID, string(blob))
}

// AppendCell adds a cell to the end of a board's notebook.
func (n *Node) AppendCell(boardID string, cellType types.CellType, content string) (types.Cell, error) {
	cells, err := n.Cells(boardID)
	if err != nil {
		return types.Cell{}, err
	}

	guid, err := core.GenerateGUID("cel")
	if err != nil {
		return types.Cell{}, err
	}
	cell := types.Cell{ID: guid, CellType: cellType, Content: content}

	cells = append(cells, cell)
	if err := n.SaveCells(boardID, cells); err != nil {
		return types.Cell{}, err
	}
	return cell, nil
}

// UpdateCell replaces one cell's content.
func (n *Node) UpdateCell(boardID, cellID, content string) error {
	cells, err := n.Cells(boardID)
	if err != nil {
		return err
	}
	for i := range cells {
		if cells[i].ID == cellID {
			cells[i].Content = content
			return n.SaveCells(boardID, cells)
		}
	}
	return fmt.Errorf("cell %s: %w", cellID, store.ErrNotFound)
}

// ReorderCells moves the cell at from to position to.
func (n *Node) ReorderCells(boardID string, from, to int) error {
	cells, err := n.Cells(boardID)
	if err != nil {
		return err
	}
	if from < 0 || from >= len(cells) || to < 0 || to >= len(cells) {
		return fmt.Errorf("reorder out of range: %d -> %d of %d", from, to, len(cells))
	}
	if from == to {
		return nil
	}

	cell := cells[from]
	cells = append(cells[:from], cells[from+1:]...)
	rest := append([]types.Cell{}, cells[to:]...)
	cells = append(append(cells[:to], cell), rest...)

	return n.SaveCells(boardID, cells)
}

// DeleteCell removes one cell from a board's notebook.
func (n *Node) DeleteCell(boardID, cellID string) error {
	cells, err := n.Cells(boardID)
	if err != nil {
		return err
	}
	for i := range cells {
		if cells[i].ID == cellID {
			cells = append(cells[:i], cells[i+1:]...)
			return n.SaveCells(boardID, cells)
		}
	}
	return fmt.Errorf("cell %s: %w", cellID, store.ErrNotFound)
}

// Note loads a board's notes buffer; a missing row is an empty note.
func (n *Node) Note(boardID string) (types.Note, error) {
	note, err := store.GetNote(n.db, boardID)
	if err != nil {
		return types.Note{}, err
	}
	if note == nil {
		return types.Note{BoardID: boardID}, nil
	}
	return *note, nil
}

// SaveNote persists a board's notes buffer.
func (n *Node) SaveNote(boardID, content string) (types.Note, error) {
	return store.SaveNote(n.db, boardID, content)
}
