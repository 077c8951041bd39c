package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/block-xaero/cyan/internal/core"
	"github.com/block-xaero/cyan/internal/node"
	"github.com/block-xaero/cyan/internal/types"
)

type ToolContext struct {
	Node *node.Node
}

type listBoardsArgs struct {
	Pattern string `json:"pattern,omitempty" jsonschema:"Optional glob or substring matched against board, group, and workspace names"`
	Sort    string `json:"sort,omitempty" jsonschema:"Sort order: name, created, modified, or group (default: name)"`
}

type getCellsArgs struct {
	BoardID string `json:"board_id" jsonschema:"Board id (brd-xxxxxxxx)"`
}

type saveNoteArgs struct {
	BoardID string `json:"board_id" jsonschema:"Board id (brd-xxxxxxxx)"`
	Content string `json:"content" jsonschema:"Full replacement text for the board's notes"`
}

type getStatusArgs struct{}

type sendDMArgs struct {
	Peer string `json:"peer" jsonschema:"Peer id (peer-xxxxxxxx) or display name"`
	Body string `json:"body" jsonschema:"Message body (markdown)"`
}

type listPeersArgs struct{}

// RegisterTools registers the cyan tool set on an MCP server.
func RegisterTools(server *mcp.Server, ctx *ToolContext) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_boards",
		Description: "List boards with their group, workspace, and face. Supports glob patterns and sort orders.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, args listBoardsArgs) (*mcp.CallToolResult, any, error) {
		return handleListBoards(*ctx, args), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_cells",
		Description: "Get a board's notebook cells as a JSON array of {id, cell_type, content}.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, args getCellsArgs) (*mcp.CallToolResult, any, error) {
		return handleGetCells(*ctx, args), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "save_note",
		Description: "Replace a board's notes text. The notes face shows this content.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, args saveNoteArgs) (*mcp.CallToolResult, any, error) {
		return handleSaveNote(*ctx, args), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_status",
		Description: "Get node status: id, readiness, object and peer counts, unread DMs.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, _ getStatusArgs) (*mcp.CallToolResult, any, error) {
		return handleGetStatus(*ctx), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "send_dm",
		Description: "Send a direct message to a known peer, addressed by id or display name.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, args sendDMArgs) (*mcp.CallToolResult, any, error) {
		return handleSendDM(*ctx, args), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_peers",
		Description: "List known peers with online state and unread counts.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, _ listPeersArgs) (*mcp.CallToolResult, any, error) {
		return handleListPeers(*ctx), nil, nil
	})
}

func handleListBoards(ctx ToolContext, args listBoardsArgs) *mcp.CallToolResult {
	key, err := sortKeyArg(args.Sort)
	if err != nil {
		return toolError(err.Error())
	}

	cards, err := ctx.Node.Boards()
	if err != nil {
		return toolError(err.Error())
	}
	core.SortBoards(cards, key)
	if args.Pattern != "" {
		cards = core.FilterBoardsPattern(cards, args.Pattern)
	}

	if len(cards) == 0 {
		return toolResult("No boards", false)
	}
	lines := make([]string, 0, len(cards))
	for _, card := range cards {
		lines = append(lines, fmt.Sprintf("[%s] %s — %s/%s (%s)",
			card.ID, card.Name, card.GroupName, card.WorkspaceName, card.Face))
	}
	return toolResult(fmt.Sprintf("Boards (%d):\n%s", len(cards), strings.Join(lines, "\n")), false)
}

func handleGetCells(ctx ToolContext, args getCellsArgs) *mcp.CallToolResult {
	if args.BoardID == "" {
		return toolError("board_id is required")
	}
	cells, err := ctx.Node.Cells(args.BoardID)
	if err != nil {
		return toolError(err.Error())
	}
	data, err := json.MarshalIndent(cells, "", "  ")
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(string(data), false)
}

func handleSaveNote(ctx ToolContext, args saveNoteArgs) *mcp.CallToolResult {
	if args.BoardID == "" {
		return toolError("board_id is required")
	}
	note, err := ctx.Node.SaveNote(args.BoardID, args.Content)
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(fmt.Sprintf("Saved notes for %s (%d chars)", args.BoardID, len(note.Content)), false)
}

func handleGetStatus(ctx ToolContext) *mcp.CallToolResult {
	status, err := ctx.Node.Counters()
	if err != nil {
		return toolError(err.Error())
	}
	unread, err := ctx.Node.UnreadTotal()
	if err != nil {
		return toolError(err.Error())
	}
	state := "not ready"
	if status.Ready {
		state = "ready"
	}
	return toolResult(fmt.Sprintf("node %s — %s\nobjects: %d\npeers: %d\nunread DMs: %d",
		status.NodeID, state, status.Objects, status.Peers, unread), false)
}

func handleSendDM(ctx ToolContext, args sendDMArgs) *mcp.CallToolResult {
	if strings.TrimSpace(args.Body) == "" {
		return toolError("message body cannot be empty")
	}
	peer, err := resolvePeer(ctx.Node, args.Peer)
	if err != nil {
		return toolError(err.Error())
	}
	msg, err := ctx.Node.SendDM(peer.ID, strings.TrimSpace(args.Body))
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(fmt.Sprintf("Sent %s to %s", msg.ID, peer.DisplayName), false)
}

func handleListPeers(ctx ToolContext) *mcp.CallToolResult {
	peers, err := ctx.Node.Peers()
	if err != nil {
		return toolError(err.Error())
	}
	if len(peers) == 0 {
		return toolResult("No peers", false)
	}
	lines := make([]string, 0, len(peers))
	for _, peer := range peers {
		state := "offline"
		if peer.Online {
			state = "online"
		}
		lines = append(lines, fmt.Sprintf("[%s] %s — %s, %d unread", peer.ID, peer.DisplayName, state, peer.Unread))
	}
	return toolResult(fmt.Sprintf("Peers (%d):\n%s", len(peers), strings.Join(lines, "\n")), false)
}

func resolvePeer(n *node.Node, ref string) (types.Peer, error) {
	peers, err := n.Peers()
	if err != nil {
		return types.Peer{}, err
	}
	for _, peer := range peers {
		if peer.ID == ref || strings.EqualFold(peer.DisplayName, ref) {
			return peer, nil
		}
	}
	return types.Peer{}, fmt.Errorf("unknown peer: %s", ref)
}

func sortKeyArg(value string) (core.SortKey, error) {
	switch core.SortKey(value) {
	case "", core.SortByName:
		return core.SortByName, nil
	case core.SortByCreated, core.SortByModified, core.SortByGroup:
		return core.SortKey(value), nil
	default:
		return "", fmt.Errorf("unknown sort key: %s", value)
	}
}

func toolResult(text string, isError bool) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: isError,
	}
}

func toolError(text string) *mcp.CallToolResult {
	return toolResult(text, true)
}
