package node

import (
	"fmt"

	"github.com/block-xaero/cyan/internal/store"
	"github.com/block-xaero/cyan/internal/types"
)

// Peers returns all known peers with unread counts.
func (n *Node) Peers() ([]types.Peer, error) {
	return store.ListPeers(n.db)
}

// Peer returns one peer, or nil when unknown.
func (n *Node) Peer(id string) (*types.Peer, error) {
	return store.GetPeer(n.db, id)
}

// AddPeer registers a peer by display name.
func (n *Node) AddPeer(displayName string) (types.Peer, error) {
	peer, err := store.UpsertPeer(n.db, "", displayName, false)
	if err != nil {
		return types.Peer{}, err
	}
	n.log.Info().Str("peer", peer.ID).Str("name", displayName).Msg("peer added")
	return peer, nil
}

// Messages returns a conversation oldest first.
func (n *Node) Messages(peerID string) ([]types.DMMessage, error) {
	return store.ListMessages(n.db, peerID)
}

// SendDM appends an outbound message to a conversation. The peer must be
// known; delivery is the transport layer's concern, not ours.
func (n *Node) SendDM(peerID, body string) (types.DMMessage, error) {
	peer, err := store.GetPeer(n.db, peerID)
	if err != nil {
		return types.DMMessage{}, err
	}
	if peer == nil {
		return types.DMMessage{}, fmt.Errorf("unknown peer %s", peerID)
	}

	msg, err := store.InsertMessage(n.db, peerID, types.DMOut, body)
	if err != nil {
		return types.DMMessage{}, err
	}
	n.log.Info().Str("peer", peerID).Str("dm", msg.ID).Msg("dm sent")
	return msg, nil
}

// ReceiveDM records an inbound message, registering the peer if needed.
func (n *Node) ReceiveDM(peerID, displayName, body string) (types.DMMessage, error) {
	if _, err := store.UpsertPeer(n.db, peerID, displayName, true); err != nil {
		return types.DMMessage{}, err
	}
	return store.InsertMessage(n.db, peerID, types.DMIn, body)
}

// MarkRead clears a conversation's unread count.
func (n *Node) MarkRead(peerID string) error {
	return store.MarkRead(n.db, peerID)
}

// UnreadTotal returns the unread count across all conversations.
func (n *Node) UnreadTotal() (int, error) {
	return store.UnreadTotal(n.db)
}
