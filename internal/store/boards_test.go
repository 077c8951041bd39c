package store

import (
	"strings"
	"testing"

	"github.com/block-xaero/cyan/internal/types"
)

func TestCreateBoardDefaults(t *testing.T) {
	db := openTestDB(t)
	requireSchema(t, db)

	board := seedBoard(t, db, "roadmap")

	if !strings.HasPrefix(board.ID, "brd-") {
		t.Errorf("expected brd- prefix, got %q", board.ID)
	}
	if board.Face != types.FaceCanvas {
		t.Errorf("expected canvas default, got %q", board.Face)
	}
	if board.UpdatedAt != board.CreatedAt {
		t.Errorf("expected updated_at == created_at on create")
	}

	got, err := GetBoard(db, board.ID)
	if err != nil {
		t.Fatalf("get board: %v", err)
	}
	if got == nil || got.Name != "roadmap" {
		t.Fatalf("expected roadmap, got %+v", got)
	}
}

func TestGetBoardMissing(t *testing.T) {
	db := openTestDB(t)
	requireSchema(t, db)

	got, err := GetBoard(db, "brd-missing1")
	if err != nil {
		t.Fatalf("get board: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing board, got %+v", got)
	}
}

func TestListBoardCardsJoins(t *testing.T) {
	db := openTestDB(t)
	requireSchema(t, db)

	board := seedBoard(t, db, "sketches")

	cards, err := ListBoardCards(db)
	if err != nil {
		t.Fatalf("list cards: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}
	card := cards[0]
	if card.ID != board.ID {
		t.Errorf("card id: got %q", card.ID)
	}
	if card.GroupName != "xaero" || card.WorkspaceName != "core" {
		t.Errorf("join fields wrong: group=%q workspace=%q", card.GroupName, card.WorkspaceName)
	}
	if card.GroupColor != "#00a0a0" {
		t.Errorf("group color: got %q", card.GroupColor)
	}
}

func TestFaceRoundTrip(t *testing.T) {
	db := openTestDB(t)
	requireSchema(t, db)

	board := seedBoard(t, db, "notes-board")

	if err := SetFace(db, board.ID, types.FaceNotes); err != nil {
		t.Fatalf("set face: %v", err)
	}
	face, err := GetFace(db, board.ID)
	if err != nil {
		t.Fatalf("get face: %v", err)
	}
	if face != types.FaceNotes {
		t.Fatalf("expected notes, got %q", face)
	}
}

func TestSetFaceRejectsUnknown(t *testing.T) {
	db := openTestDB(t)
	requireSchema(t, db)

	board := seedBoard(t, db, "b")

	if err := SetFace(db, board.ID, "spreadsheet"); err == nil {
		t.Fatal("expected error for unknown face")
	}
	if err := SetFace(db, "brd-missing1", types.FaceNotebook); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteBoardRemovesDependents(t *testing.T) {
	db := openTestDB(t)
	requireSchema(t, db)

	board := seedBoard(t, db, "doomed")
	if err := SaveCellsJSON(db, board.ID, `[]`); err != nil {
		t.Fatalf("save cells: %v", err)
	}
	if _, err := SaveNote(db, board.ID, "temp"); err != nil {
		t.Fatalf("save note: %v", err)
	}

	if err := DeleteBoard(db, board.ID); err != nil {
		t.Fatalf("delete board: %v", err)
	}

	if _, ok, err := GetCellsJSON(db, board.ID); err != nil || ok {
		t.Fatalf("expected cells row gone, ok=%v err=%v", ok, err)
	}
	if note, err := GetNote(db, board.ID); err != nil || note != nil {
		t.Fatalf("expected note row gone, note=%+v err=%v", note, err)
	}
	if got, err := GetBoard(db, board.ID); err != nil || got != nil {
		t.Fatalf("expected board gone, got=%+v err=%v", got, err)
	}
}

func TestRenameBoard(t *testing.T) {
	db := openTestDB(t)
	requireSchema(t, db)

	board := seedBoard(t, db, "old-name")
	if err := RenameBoard(db, board.ID, "new-name"); err != nil {
		t.Fatalf("rename: %v", err)
	}

	got, err := GetBoard(db, board.ID)
	if err != nil || got == nil {
		t.Fatalf("get board: %v", err)
	}
	if got.Name != "new-name" {
		t.Fatalf("expected new-name, got %q", got.Name)
	}
	if got.UpdatedAt < board.UpdatedAt {
		t.Errorf("rename must not rewind updated_at")
	}

	if err := RenameBoard(db, "brd-missing1", "x"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
