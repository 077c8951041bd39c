package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/block-xaero/cyan/internal/core"
	"github.com/block-xaero/cyan/internal/node"
	"github.com/block-xaero/cyan/internal/types"
)

// Options configure the board UI.
type Options struct {
	Node  *node.Node
	Theme string
}

// Run starts the board UI and closes the node when the program exits.
func Run(opts Options) error {
	applyTheme(opts.Theme)
	model, err := NewModel(opts)
	if err != nil {
		return err
	}
	// Set window title (ANSI OSC sequence)
	fmt.Printf("\033]0;cyan\007")

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	model.Close()
	return err
}

type viewKind int

const (
	viewBoards viewKind = iota
	viewBoard
	viewDMs
)

// Model implements the board UI.
type Model struct {
	node *node.Node

	width  int
	height int
	view   viewKind
	status string // transient notice shown in the bottom bar

	// Board grid state
	cards        []types.BoardCard // all cards, sorted
	visible      []types.BoardCard // cards after filter
	filter       textinput.Model
	filterActive bool
	sortKey      core.SortKey
	gridIndex    int            // selection within visible
	gridView     viewport.Model // scrollable masonry area
	cardOffsets  []int          // first rendered line of each card within its column
	cardHeights  []int

	// Board detail state
	boardID     string
	board       *types.Board
	face        types.Face
	cells       []types.Cell
	cellIndex   int
	cellOffsets []int // first rendered line of each cell, for scroll-into-view
	cellHeights []int
	editing     bool           // notebook cell editor open
	editor      textarea.Model // notebook cell editor
	notes       textarea.Model // notes face buffer
	notesDirty  bool
	detailView  viewport.Model // canvas overview / notebook list
	preview     viewport.Model // notes face right pane

	// DM state
	peers     []types.Peer
	peerIndex int
	peerID    string // open conversation ("" = peer list only)
	peerName  string
	messages  []types.DMMessage
	convo     viewport.Model
	composer  textarea.Model
	convoGen  int    // invalidates in-flight conversation ticks
	scrollGen int    // invalidates stale scroll-to-bottom ticks
	lastMsgID string // newest message seen, for arrival detection

	counters    types.Status
	lastRefresh time.Time
	hoverID     string // bubblezone id under the mouse cursor

	zoneManager *zone.Manager
}

// NewModel creates the UI model with board and peer state loaded.
func NewModel(opts Options) (*Model, error) {
	cards, err := opts.Node.Boards()
	if err != nil {
		return nil, err
	}
	peers, err := opts.Node.Peers()
	if err != nil {
		return nil, err
	}
	counters, err := opts.Node.Counters()
	if err != nil {
		return nil, err
	}

	model := &Model{
		node:        opts.Node,
		cards:       cards,
		peers:       peers,
		counters:    counters,
		lastRefresh: time.Now(),
		sortKey:     core.SortByName,
		filter:      newFilterModel(),
		editor:      newEditorModel(),
		notes:       newEditorModel(),
		composer:    newComposerModel(),
		gridView:    viewport.New(0, 0),
		detailView:  viewport.New(0, 0),
		preview:     viewport.New(0, 0),
		convo:       viewport.New(0, 0),
		zoneManager: zone.New(),
	}
	model.applyBoardOrder()
	return model, nil
}

// applyBoardOrder re-derives the visible card list from the sort key and
// filter, clamping the selection.
func (m *Model) applyBoardOrder() {
	core.SortBoards(m.cards, m.sortKey)
	m.visible = core.FilterBoards(m.cards, m.filter.Value())
	if m.gridIndex >= len(m.visible) {
		m.gridIndex = len(m.visible) - 1
	}
	if m.gridIndex < 0 {
		m.gridIndex = 0
	}
	m.refreshGrid()
}

func (m *Model) selectedCard() *types.BoardCard {
	if m.gridIndex < 0 || m.gridIndex >= len(m.visible) {
		return nil
	}
	return &m.visible[m.gridIndex]
}

func (m *Model) selectedPeer() *types.Peer {
	if m.peerIndex < 0 || m.peerIndex >= len(m.peers) {
		return nil
	}
	return &m.peers[m.peerIndex]
}

func (m *Model) totalUnread() int {
	total := 0
	for _, peer := range m.peers {
		total += peer.Unread
	}
	return total
}
