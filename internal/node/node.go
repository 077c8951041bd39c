package node

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/block-xaero/cyan/internal/core"
	"github.com/block-xaero/cyan/internal/store"
	"github.com/block-xaero/cyan/internal/types"
)

// Node is the native boundary the UI, CLI, MCP tools, and C exports share.
// Callers treat it as a synchronous request/response API; it owns the
// store, the log file, and the data-dir watcher.
type Node struct {
	dir     string
	db      *sql.DB
	config  core.Config
	log     zerolog.Logger
	logFile closerFunc

	watcher *dirWatcher

	mu     sync.Mutex
	dirty  bool
	opened time.Time
}

type closerFunc func() error

// Open opens the node at dataDir: store, identity, logging, seed data,
// and the external-change watcher.
func Open(dataDir string) (*Node, error) {
	config, err := core.LoadIdentity()
	if err != nil {
		return nil, fmt.Errorf("load identity: %w", err)
	}

	db, err := store.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	logger, closeLog, err := openLogger(dataDir)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	n := &Node{
		dir:     dataDir,
		db:      db,
		config:  config,
		log:     logger,
		logFile: closeLog,
		opened:  time.Now(),
	}

	if err := n.ensureSeed(); err != nil {
		_ = n.Close()
		return nil, err
	}

	watcher, err := watchDataDir(dataDir, n.markDirty, logger)
	if err != nil {
		n.log.Warn().Err(err).Msg("data dir watcher unavailable")
	} else {
		n.watcher = watcher
	}

	n.log.Info().Str("dir", dataDir).Str("node", core.ShortID(config.NodeID, 8)).Msg("node open")
	return n, nil
}

// Close releases the watcher, database, and log file.
func (n *Node) Close() error {
	if n.watcher != nil {
		n.watcher.stop()
		n.watcher = nil
	}
	var firstErr error
	if n.db != nil {
		if err := n.db.Close(); err != nil {
			firstErr = err
		}
		n.db = nil
	}
	if n.logFile != nil {
		if err := n.logFile(); err != nil && firstErr == nil {
			firstErr = err
		}
		n.logFile = nil
	}
	return firstErr
}

// NodeID returns this node's identity.
func (n *Node) NodeID() string {
	return n.config.NodeID
}

// DisplayName returns the configured display name.
func (n *Node) DisplayName() string {
	return n.config.DisplayName
}

// Dir returns the data directory.
func (n *Node) Dir() string {
	return n.dir
}

func (n *Node) markDirty() {
	n.mu.Lock()
	n.dirty = true
	n.mu.Unlock()
}

// Dirty reports and clears the external-change flag. The UI's poll tick
// drains it to refresh after another process wrote the store.
func (n *Node) Dirty() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	dirty := n.dirty
	n.dirty = false
	return dirty
}

// ensureSeed creates the default group, workspace, and board on first run.
func (n *Node) ensureSeed() error {
	groups, err := store.ListGroups(n.db)
	if err != nil {
		return err
	}
	if len(groups) > 0 {
		return nil
	}

	group, err := store.CreateGroup(n.db, "personal", "✦", "#00a0a0", n.config.NodeID)
	if err != nil {
		return err
	}
	workspace, err := store.CreateWorkspace(n.db, group.ID, "general", n.config.NodeID)
	if err != nil {
		return err
	}
	if _, err := store.CreateBoard(n.db, workspace.ID, "welcome", n.config.NodeID); err != nil {
		return err
	}

	n.log.Info().Str("group", group.ID).Msg("seeded default group")
	return nil
}

// Boards returns all boards joined with group and workspace names.
func (n *Node) Boards() ([]types.BoardCard, error) {
	return store.ListBoardCards(n.db)
}

// Board returns one board, or nil when absent.
func (n *Node) Board(id string) (*types.Board, error) {
	return store.GetBoard(n.db, id)
}

// CreateBoard makes a new board in a workspace.
func (n *Node) CreateBoard(workspaceID, name string) (types.Board, error) {
	board, err := store.CreateBoard(n.db, workspaceID, name, n.config.NodeID)
	if err != nil {
		return types.Board{}, err
	}
	n.log.Info().Str("board", board.ID).Str("name", name).Msg("board created")
	return board, nil
}

// RenameBoard renames a board.
func (n *Node) RenameBoard(id, name string) error {
	return store.RenameBoard(n.db, id, name)
}

// DeleteBoard removes a board with its cells and notes.
func (n *Node) DeleteBoard(id string) error {
	if err := store.DeleteBoard(n.db, id); err != nil {
		return err
	}
	n.log.Info().Str("board", id).Msg("board deleted")
	return nil
}

// Face returns a board's active face.
func (n *Node) Face(boardID string) (types.Face, error) {
	return store.GetFace(n.db, boardID)
}

// SetFace persists a board's active face.
func (n *Node) SetFace(boardID string, face types.Face) error {
	if err := store.SetFace(n.db, boardID, face); err != nil {
		return err
	}
	n.log.Info().Str("board", boardID).Str("face", string(face)).Msg("face set")
	return nil
}

// Groups returns all groups.
func (n *Node) Groups() ([]types.Group, error) {
	return store.ListGroups(n.db)
}

// Workspaces returns workspaces, optionally scoped to a group.
func (n *Node) Workspaces(groupID string) ([]types.Workspace, error) {
	return store.ListWorkspaces(n.db, groupID)
}

// CreateGroup makes a new group.
func (n *Node) CreateGroup(name, icon, color string) (types.Group, error) {
	return store.CreateGroup(n.db, name, icon, color, n.config.NodeID)
}

// CreateWorkspace makes a new workspace in a group.
func (n *Node) CreateWorkspace(groupID, name string) (types.Workspace, error) {
	return store.CreateWorkspace(n.db, groupID, name, n.config.NodeID)
}

// Counters returns the live status counters.
func (n *Node) Counters() (types.Status, error) {
	status := types.Status{NodeID: n.config.NodeID}

	ready, err := store.SchemaExists(n.db)
	if err != nil {
		return status, err
	}
	status.Ready = ready
	if !ready {
		return status, nil
	}

	objects, err := store.CountBoards(n.db)
	if err != nil {
		return status, err
	}
	peers, err := store.CountPeers(n.db)
	if err != nil {
		return status, err
	}

	status.Objects = objects
	status.Peers = peers
	return status, nil
}
