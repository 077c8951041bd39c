package mcp

import (
	"encoding/json"
	"strings"
	"testing"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/block-xaero/cyan/internal/node"
	"github.com/block-xaero/cyan/internal/types"
)

func openToolContext(t *testing.T) ToolContext {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	n, err := node.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open node: %v", err)
	}
	t.Cleanup(func() {
		_ = n.Close()
	})
	return ToolContext{Node: n}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("content = %+v, want one text block", result.Content)
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("content type %T, want TextContent", result.Content[0])
	}
	return text.Text
}

func TestListBoardsTool(t *testing.T) {
	ctx := openToolContext(t)

	result := handleListBoards(ctx, listBoardsArgs{})
	if result.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, result))
	}
	text := resultText(t, result)
	if !strings.Contains(text, "welcome") || !strings.Contains(text, "personal/general") {
		t.Fatalf("listing = %q", text)
	}

	result = handleListBoards(ctx, listBoardsArgs{Pattern: "no-such-board"})
	if text := resultText(t, result); text != "No boards" {
		t.Fatalf("empty filter result = %q", text)
	}

	result = handleListBoards(ctx, listBoardsArgs{Sort: "bogus"})
	if !result.IsError {
		t.Fatal("unknown sort key should error")
	}
}

func TestGetCellsTool(t *testing.T) {
	ctx := openToolContext(t)
	boards, err := ctx.Node.Boards()
	if err != nil {
		t.Fatalf("boards: %v", err)
	}

	result := handleGetCells(ctx, getCellsArgs{BoardID: boards[0].ID})
	if result.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, result))
	}

	var cells []types.Cell
	if err := json.Unmarshal([]byte(resultText(t, result)), &cells); err != nil {
		t.Fatalf("decode cells: %v", err)
	}
	if len(cells) != 1 || cells[0].CellType != types.CellTypeMarkdown {
		t.Fatalf("cells = %+v", cells)
	}

	if result := handleGetCells(ctx, getCellsArgs{}); !result.IsError {
		t.Fatal("missing board_id should error")
	}
}

func TestSaveNoteTool(t *testing.T) {
	ctx := openToolContext(t)
	boards, err := ctx.Node.Boards()
	if err != nil {
		t.Fatalf("boards: %v", err)
	}

	result := handleSaveNote(ctx, saveNoteArgs{BoardID: boards[0].ID, Content: "# agenda"})
	if result.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, result))
	}

	note, err := ctx.Node.Note(boards[0].ID)
	if err != nil {
		t.Fatalf("note: %v", err)
	}
	if note.Content != "# agenda" {
		t.Fatalf("note = %q", note.Content)
	}
}

func TestSendDMTool(t *testing.T) {
	ctx := openToolContext(t)
	peer, err := ctx.Node.AddPeer("zed")
	if err != nil {
		t.Fatalf("add peer: %v", err)
	}

	result := handleSendDM(ctx, sendDMArgs{Peer: "zed", Body: "ping"})
	if result.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, result))
	}
	if !strings.Contains(resultText(t, result), "zed") {
		t.Fatalf("result = %q", resultText(t, result))
	}

	messages, err := ctx.Node.Messages(peer.ID)
	if err != nil {
		t.Fatalf("messages: %v", err)
	}
	if len(messages) != 1 || messages[0].Direction != types.DMOut {
		t.Fatalf("messages = %+v", messages)
	}

	if result := handleSendDM(ctx, sendDMArgs{Peer: "nobody", Body: "hi"}); !result.IsError {
		t.Fatal("unknown peer should error")
	}
	if result := handleSendDM(ctx, sendDMArgs{Peer: "zed", Body: "  "}); !result.IsError {
		t.Fatal("blank body should error")
	}
}

func TestStatusAndPeersTools(t *testing.T) {
	ctx := openToolContext(t)
	if _, err := ctx.Node.ReceiveDM("", "ana", "hello"); err != nil {
		t.Fatalf("receive dm: %v", err)
	}

	status := resultText(t, handleGetStatus(ctx))
	if !strings.Contains(status, "ready") || !strings.Contains(status, "unread DMs: 1") {
		t.Fatalf("status = %q", status)
	}

	peers := resultText(t, handleListPeers(ctx))
	if !strings.Contains(peers, "ana") || !strings.Contains(peers, "1 unread") {
		t.Fatalf("peers = %q", peers)
	}
}
