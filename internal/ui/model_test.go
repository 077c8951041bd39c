package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/block-xaero/cyan/internal/node"
	"github.com/block-xaero/cyan/internal/types"
)

func openTestNode(t *testing.T) *node.Node {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	n, err := node.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open node: %v", err)
	}
	t.Cleanup(func() {
		_ = n.Close()
	})
	return n
}

func newTestModel(t *testing.T, n *node.Node) *Model {
	t.Helper()
	m, err := NewModel(Options{Node: n})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	m.handleWindowSizeMsg(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func TestNewModelLoadsSeedState(t *testing.T) {
	n := openTestNode(t)
	m := newTestModel(t, n)

	if len(m.visible) != 1 || m.visible[0].Name != "welcome" {
		t.Fatalf("visible = %+v, want the seeded welcome board", m.visible)
	}
	if m.view != viewBoards {
		t.Fatalf("view = %d, want boards grid", m.view)
	}
	if !m.counters.Ready {
		t.Fatal("counters should report ready")
	}

	out := m.View()
	if !strings.Contains(out, "welcome") {
		t.Errorf("grid view missing board name:\n%s", out)
	}
	if !strings.Contains(out, "boards") {
		t.Errorf("view missing nav rail:\n%s", out)
	}
}

func TestViewBeforeFirstResizeIsEmpty(t *testing.T) {
	n := openTestNode(t)
	m, err := NewModel(Options{Node: n})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	if out := m.View(); out != "" {
		t.Errorf("expected empty frame before the first size message, got %q", out)
	}
}

func TestOpenBoardSwitchesFaces(t *testing.T) {
	n := openTestNode(t)
	m := newTestModel(t, n)
	boardID := m.visible[0].ID

	_ = m.openBoard(boardID)
	if m.view != viewBoard {
		t.Fatalf("view = %d, want board detail", m.view)
	}
	if m.face != types.FaceCanvas {
		t.Fatalf("face = %q, want seeded canvas", m.face)
	}
	if len(m.cells) != 1 {
		t.Fatalf("cells = %d, want the welcome cell", len(m.cells))
	}

	_ = m.switchFace(types.FaceNotebook)
	if m.face != types.FaceNotebook {
		t.Fatalf("face = %q after switch", m.face)
	}
	face, err := n.Face(boardID)
	if err != nil {
		t.Fatalf("face: %v", err)
	}
	if face != types.FaceNotebook {
		t.Errorf("face switch did not persist, node has %q", face)
	}

	out := m.View()
	if !strings.Contains(out, "notebook") {
		t.Errorf("detail view missing face tab:\n%s", out)
	}

	m.closeBoard()
	if m.view != viewBoards || m.board != nil {
		t.Error("close should return to the grid and drop board state")
	}
}

func TestOpenBoardUnknownID(t *testing.T) {
	n := openTestNode(t)
	m := newTestModel(t, n)

	_ = m.openBoard("board-nope")
	if m.view != viewBoards {
		t.Fatalf("unknown board should stay on the grid, view = %d", m.view)
	}
	if m.status == "" {
		t.Error("expected a status notice for the missing board")
	}
}

func TestNotebookCellLifecycle(t *testing.T) {
	n := openTestNode(t)
	m := newTestModel(t, n)
	boardID := m.visible[0].ID

	_ = m.openBoard(boardID)
	_ = m.switchFace(types.FaceNotebook)

	m.appendCell()
	if len(m.cells) != 2 || m.cellIndex != 1 {
		t.Fatalf("append: cells=%d index=%d", len(m.cells), m.cellIndex)
	}

	_ = m.startCellEdit()
	if !m.editing {
		t.Fatal("editor should be open")
	}
	m.editor.SetValue("SELECT id FROM boards;")
	m.saveEditedCell()
	if m.editing {
		t.Fatal("save should close the editor")
	}
	if m.cells[1].CellType != types.CellTypeSQL {
		t.Errorf("cell type = %q, want re-detected sql", m.cells[1].CellType)
	}

	cells, err := n.Cells(boardID)
	if err != nil {
		t.Fatalf("cells: %v", err)
	}
	if len(cells) != 2 || cells[1].Content != "SELECT id FROM boards;" {
		t.Fatalf("persisted cells = %+v", cells)
	}

	m.moveSelectedCell(-1)
	if m.cellIndex != 0 || m.cells[0].Content != "SELECT id FROM boards;" {
		t.Fatal("move up should swap the cell and follow the selection")
	}

	m.deleteSelectedCell()
	if len(m.cells) != 1 {
		t.Fatalf("delete: cells=%d", len(m.cells))
	}
	cells, err = n.Cells(boardID)
	if err != nil {
		t.Fatalf("cells: %v", err)
	}
	if len(cells) != 1 {
		t.Fatalf("persisted cells after delete = %d", len(cells))
	}
}

func TestNotesFaceSaves(t *testing.T) {
	n := openTestNode(t)
	m := newTestModel(t, n)
	boardID := m.visible[0].ID

	_ = m.openBoard(boardID)
	_ = m.switchFace(types.FaceNotes)
	if !m.notes.Focused() {
		t.Fatal("notes buffer should take focus")
	}

	m.notes.SetValue("# scratch\n\n- [x] first pass")
	m.notesDirty = true
	m.saveNotes()
	if m.notesDirty {
		t.Error("save should clear the dirty flag")
	}

	note, err := n.Note(boardID)
	if err != nil {
		t.Fatalf("note: %v", err)
	}
	if note.Content != "# scratch\n\n- [x] first pass" {
		t.Errorf("persisted note = %q", note.Content)
	}
}

func TestGridFilterNarrowsVisible(t *testing.T) {
	n := openTestNode(t)
	groups, err := n.Groups()
	if err != nil {
		t.Fatalf("groups: %v", err)
	}
	workspaces, err := n.Workspaces(groups[0].ID)
	if err != nil {
		t.Fatalf("workspaces: %v", err)
	}
	for _, name := range []string{"design-notes", "launch-plan"} {
		if _, err := n.CreateBoard(workspaces[0].ID, name); err != nil {
			t.Fatalf("create board: %v", err)
		}
	}

	m := newTestModel(t, n)
	if len(m.visible) != 3 {
		t.Fatalf("visible = %d, want 3", len(m.visible))
	}

	m.filter.SetValue("launch")
	m.applyBoardOrder()
	if len(m.visible) != 1 || m.visible[0].Name != "launch-plan" {
		t.Fatalf("filtered visible = %+v", m.visible)
	}

	m.filter.Reset()
	m.applyBoardOrder()
	if len(m.visible) != 3 {
		t.Fatalf("clearing the filter should restore all cards, got %d", len(m.visible))
	}
}

func TestDMConversationFlow(t *testing.T) {
	n := openTestNode(t)
	if _, err := n.ReceiveDM("", "zed", "hey — **ship it**?"); err != nil {
		t.Fatalf("receive dm: %v", err)
	}

	m := newTestModel(t, n)
	if len(m.peers) != 1 || m.peers[0].Unread != 1 {
		t.Fatalf("peers = %+v", m.peers)
	}
	if m.totalUnread() != 1 {
		t.Fatalf("total unread = %d", m.totalUnread())
	}

	m.openDMs()
	_ = m.openConversation(m.peers[0])
	if m.peerID == "" || len(m.messages) != 1 {
		t.Fatalf("conversation not open: peerID=%q messages=%d", m.peerID, len(m.messages))
	}

	peers, err := n.Peers()
	if err != nil {
		t.Fatalf("peers: %v", err)
	}
	if peers[0].Unread != 0 {
		t.Errorf("opening the conversation should clear unread, got %d", peers[0].Unread)
	}

	m.composer.SetValue("on it")
	_ = m.sendCurrentMessage()
	if len(m.messages) != 2 || m.messages[1].Direction != types.DMOut {
		t.Fatalf("messages after send = %+v", m.messages)
	}
	if m.lastMsgID != m.messages[1].ID {
		t.Error("send should advance the latest-seen message id")
	}

	out := m.View()
	if !strings.Contains(out, "zed") {
		t.Errorf("conversation view missing peer name:\n%s", out)
	}

	m.closeConversation()
	if m.peerID != "" || m.messages != nil {
		t.Error("close should drop conversation state")
	}
}

func TestPollRefreshesCards(t *testing.T) {
	n := openTestNode(t)
	m := newTestModel(t, n)

	groups, err := n.Groups()
	if err != nil {
		t.Fatalf("groups: %v", err)
	}
	workspaces, err := n.Workspaces(groups[0].ID)
	if err != nil {
		t.Fatalf("workspaces: %v", err)
	}
	if _, err := n.CreateBoard(workspaces[0].ID, "roadmap"); err != nil {
		t.Fatalf("create board: %v", err)
	}

	cards, err := n.Boards()
	if err != nil {
		t.Fatalf("boards: %v", err)
	}
	peers, err := n.Peers()
	if err != nil {
		t.Fatalf("peers: %v", err)
	}
	counters, err := n.Counters()
	if err != nil {
		t.Fatalf("counters: %v", err)
	}

	_, cmd := m.handlePollMsg(pollMsg{cards: cards, peers: peers, counters: counters})
	if cmd == nil {
		t.Fatal("poll handler should re-arm the tick")
	}
	if len(m.visible) != 2 {
		t.Fatalf("visible after poll = %d, want 2", len(m.visible))
	}
	if m.counters.Objects != counters.Objects {
		t.Errorf("counters not updated: %+v", m.counters)
	}
}
