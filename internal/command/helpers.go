package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/block-xaero/cyan/internal/node"
	"github.com/block-xaero/cyan/internal/types"
)

func formatRelative(tsMillis int64) string {
	secondsAgo := time.Now().Unix() - tsMillis/1000
	if secondsAgo < 0 {
		return "just now"
	}
	if secondsAgo < 60 {
		return fmt.Sprintf("%ds ago", secondsAgo)
	}
	minutesAgo := secondsAgo / 60
	if minutesAgo < 60 {
		return fmt.Sprintf("%dm ago", minutesAgo)
	}
	hoursAgo := minutesAgo / 60
	if hoursAgo < 24 {
		return fmt.Sprintf("%dh ago", hoursAgo)
	}
	daysAgo := hoursAgo / 24
	if daysAgo < 7 {
		return fmt.Sprintf("%dd ago", daysAgo)
	}
	return fmt.Sprintf("%dw ago", daysAgo/7)
}

// resolveWorkspaceRef matches a workspace by id or by name, optionally
// qualified as group/workspace.
func resolveWorkspaceRef(n *node.Node, ref string) (types.Workspace, error) {
	groupFilter := ""
	nameRef := ref
	if idx := strings.IndexByte(ref, '/'); idx >= 0 {
		groupFilter = ref[:idx]
		nameRef = ref[idx+1:]
	}

	groups, err := n.Groups()
	if err != nil {
		return types.Workspace{}, err
	}

	var matches []types.Workspace
	for _, group := range groups {
		if groupFilter != "" && !strings.EqualFold(group.Name, groupFilter) {
			continue
		}
		workspaces, err := n.Workspaces(group.ID)
		if err != nil {
			return types.Workspace{}, err
		}
		for _, workspace := range workspaces {
			if workspace.ID == ref || strings.EqualFold(workspace.Name, nameRef) {
				matches = append(matches, workspace)
			}
		}
	}

	switch len(matches) {
	case 0:
		return types.Workspace{}, fmt.Errorf("workspace not found: %s", ref)
	case 1:
		return matches[0], nil
	default:
		return types.Workspace{}, fmt.Errorf("workspace %s is ambiguous; qualify as group/workspace", ref)
	}
}

// resolvePeerRef matches a peer by id or display name.
func resolvePeerRef(n *node.Node, ref string) (types.Peer, error) {
	peers, err := n.Peers()
	if err != nil {
		return types.Peer{}, err
	}
	for _, peer := range peers {
		if peer.ID == ref || strings.EqualFold(peer.DisplayName, ref) {
			return peer, nil
		}
	}
	return types.Peer{}, fmt.Errorf("unknown peer: %s (see 'cyan peers')", ref)
}
