package core

import (
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/block-xaero/cyan/internal/types"
)

// SortKey names a board list ordering.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByCreated  SortKey = "created"
	SortByModified SortKey = "modified"
	SortByGroup    SortKey = "group"
)

// NextSortKey cycles through the sort keys in display order.
func NextSortKey(key SortKey) SortKey {
	switch key {
	case SortByName:
		return SortByCreated
	case SortByCreated:
		return SortByModified
	case SortByModified:
		return SortByGroup
	default:
		return SortByName
	}
}

// SortKeyLabel returns the footer label for a sort key.
func SortKeyLabel(key SortKey) string {
	switch key {
	case SortByCreated:
		return "newest first"
	case SortByModified:
		return "recently edited"
	case SortByGroup:
		return "group/workspace"
	default:
		return "name"
	}
}

// FilterBoards keeps cards whose name, group name, or workspace name
// contains query, case-insensitively. An empty query keeps everything.
func FilterBoards(cards []types.BoardCard, query string) []types.BoardCard {
	query = strings.TrimSpace(query)
	if query == "" {
		return cards
	}
	needle := strings.ToLower(query)

	filtered := make([]types.BoardCard, 0, len(cards))
	for _, card := range cards {
		if strings.Contains(strings.ToLower(card.Name), needle) ||
			strings.Contains(strings.ToLower(card.GroupName), needle) ||
			strings.Contains(strings.ToLower(card.WorkspaceName), needle) {
			filtered = append(filtered, card)
		}
	}
	return filtered
}

// FilterBoardsPattern filters with a glob pattern when the pattern carries
// glob metacharacters, falling back to substring filtering otherwise.
func FilterBoardsPattern(cards []types.BoardCard, pattern string) []types.BoardCard {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return cards
	}
	if !strings.ContainsAny(pattern, "*?[") {
		return FilterBoards(cards, pattern)
	}

	matcher, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return FilterBoards(cards, pattern)
	}

	filtered := make([]types.BoardCard, 0, len(cards))
	for _, card := range cards {
		if matcher.Match(strings.ToLower(card.Name)) ||
			matcher.Match(strings.ToLower(card.GroupName)) ||
			matcher.Match(strings.ToLower(card.WorkspaceName)) {
			filtered = append(filtered, card)
		}
	}
	return filtered
}

// SortBoards stable-sorts cards in place by the given key. Name and
// group/workspace order ascending; created and modified order newest
// first, as the board grid always has.
func SortBoards(cards []types.BoardCard, key SortKey) {
	switch key {
	case SortByCreated:
		sort.SliceStable(cards, func(i, j int) bool {
			return cards[i].CreatedAt > cards[j].CreatedAt
		})
	case SortByModified:
		sort.SliceStable(cards, func(i, j int) bool {
			return cards[i].UpdatedAt > cards[j].UpdatedAt
		})
	case SortByGroup:
		sort.SliceStable(cards, func(i, j int) bool {
			if cards[i].GroupName != cards[j].GroupName {
				return cards[i].GroupName < cards[j].GroupName
			}
			if cards[i].WorkspaceName != cards[j].WorkspaceName {
				return cards[i].WorkspaceName < cards[j].WorkspaceName
			}
			return cards[i].Name < cards[j].Name
		})
	default:
		sort.SliceStable(cards, func(i, j int) bool {
			return cards[i].Name < cards[j].Name
		})
	}
}
