package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/block-xaero/cyan/internal/types"
)

const pollInterval = 2 * time.Second
const convoPollInterval = 250 * time.Millisecond
const scrollDebounce = 80 * time.Millisecond

type pollMsg struct {
	cards    []types.BoardCard
	peers    []types.Peer
	counters types.Status
	dirty    bool
}

// convoPollMsg carries a conversation refresh. gen pins it to the
// conversation that armed it; stale ticks are dropped.
type convoPollMsg struct {
	gen      int
	peerID   string
	messages []types.DMMessage
	ok       bool
}

type scrollBottomMsg struct{ gen int }

type errMsg struct{ err error }

func (m *Model) pollCmd() tea.Cmd {
	n := m.node
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		cards, err := n.Boards()
		if err != nil {
			return errMsg{err: err}
		}
		peers, err := n.Peers()
		if err != nil {
			return errMsg{err: err}
		}
		counters, err := n.Counters()
		if err != nil {
			return errMsg{err: err}
		}
		return pollMsg{cards: cards, peers: peers, counters: counters, dirty: n.Dirty()}
	})
}

// convoPollCmd runs at 250ms while a conversation is open to keep message
// arrival latency low. Errors are swallowed so the chain survives; the
// slow poll surfaces persistent failures.
func (m *Model) convoPollCmd() tea.Cmd {
	n := m.node
	gen := m.convoGen
	peerID := m.peerID
	return tea.Tick(convoPollInterval, func(time.Time) tea.Msg {
		messages, err := n.Messages(peerID)
		if err != nil {
			return convoPollMsg{gen: gen, peerID: peerID}
		}
		return convoPollMsg{gen: gen, peerID: peerID, messages: messages, ok: true}
	})
}

func (m *Model) scrollBottomCmd() tea.Cmd {
	gen := m.scrollGen
	return tea.Tick(scrollDebounce, func(time.Time) tea.Msg {
		return scrollBottomMsg{gen: gen}
	})
}
