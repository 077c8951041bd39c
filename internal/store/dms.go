package store

import (
	"database/sql"
	"fmt"

	"github.com/block-xaero/cyan/internal/core"
	"github.com/block-xaero/cyan/internal/types"
)

// UpsertPeer inserts or refreshes a peer.
func UpsertPeer(db DBTX, id, displayName string, online bool) (types.Peer, error) {
	if id == "" {
		guid, err := core.GenerateGUID("peer")
		if err != nil {
			return types.Peer{}, err
		}
		id = guid
	}

	peer := types.Peer{
		ID:          id,
		DisplayName: displayName,
		Online:      online,
		LastSeen:    nowMillis(),
	}

	onlineInt := 0
	if online {
		onlineInt = 1
	}
	_, err := db.Exec(
		`INSERT INTO peers (id, display_name, online, last_seen) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET display_name = excluded.display_name,
		   online = excluded.online, last_seen = excluded.last_seen`,
		peer.ID, peer.DisplayName, onlineInt, peer.LastSeen,
	)
	if err != nil {
		return types.Peer{}, fmt.Errorf("upsert peer: %w", err)
	}
	return peer, nil
}

// ListPeers returns all peers with unread counts, most recently seen first.
func ListPeers(db DBTX) ([]types.Peer, error) {
	rows, err := db.Query(`
		SELECT p.id, p.display_name, p.online, p.last_seen,
		       (SELECT COUNT(*) FROM dm_messages m
		        WHERE m.peer_id = p.id AND m.direction = 'in' AND m.read = 0)
		FROM peers p
		ORDER BY p.last_seen DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var peers []types.Peer
	for rows.Next() {
		var p types.Peer
		var online int
		if err := rows.Scan(&p.ID, &p.DisplayName, &online, &p.LastSeen, &p.Unread); err != nil {
			return nil, err
		}
		p.Online = online != 0
		peers = append(peers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return peers, nil
}

// GetPeer returns one peer by id, or nil if absent.
func GetPeer(db DBTX, id string) (*types.Peer, error) {
	row := db.QueryRow(`SELECT id, display_name, online, last_seen FROM peers WHERE id = ?`, id)
	var p types.Peer
	var online int
	if err := row.Scan(&p.ID, &p.DisplayName, &online, &p.LastSeen); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	p.Online = online != 0
	return &p, nil
}

// InsertMessage appends a direct message. Outbound messages are born read.
func InsertMessage(db DBTX, peerID string, direction types.DMDirection, body string) (types.DMMessage, error) {
	guid, err := core.GenerateGUID("dm")
	if err != nil {
		return types.DMMessage{}, err
	}

	msg := types.DMMessage{
		ID:        guid,
		PeerID:    peerID,
		Direction: direction,
		Body:      body,
		CreatedAt: nowMillis(),
		Read:      direction == types.DMOut,
	}

	readInt := 0
	if msg.Read {
		readInt = 1
	}
	_, err = db.Exec(
		`INSERT INTO dm_messages (id, peer_id, direction, body, created_at, read)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		msg.ID, msg.PeerID, string(msg.Direction), msg.Body, msg.CreatedAt, readInt,
	)
	if err != nil {
		return types.DMMessage{}, fmt.Errorf("insert message: %w", err)
	}
	return msg, nil
}

// ListMessages returns a conversation oldest first.
func ListMessages(db DBTX, peerID string) ([]types.DMMessage, error) {
	rows, err := db.Query(
		`SELECT id, peer_id, direction, body, created_at, read
		 FROM dm_messages WHERE peer_id = ? ORDER BY created_at, id`, peerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []types.DMMessage
	for rows.Next() {
		var m types.DMMessage
		var direction string
		var read int
		if err := rows.Scan(&m.ID, &m.PeerID, &direction, &m.Body, &m.CreatedAt, &read); err != nil {
			return nil, err
		}
		m.Direction = types.DMDirection(direction)
		m.Read = read != 0
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkRead marks all of a peer's incoming messages read.
func MarkRead(db DBTX, peerID string) error {
	_, err := db.Exec(
		`UPDATE dm_messages SET read = 1 WHERE peer_id = ? AND direction = 'in' AND read = 0`,
		peerID,
	)
	return err
}

// UnreadTotal returns the unread count across all peers.
func UnreadTotal(db DBTX) (int, error) {
	row := db.QueryRow(`SELECT COUNT(*) FROM dm_messages WHERE direction = 'in' AND read = 0`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
