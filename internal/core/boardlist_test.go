package core

import (
	"testing"

	"github.com/block-xaero/cyan/internal/types"
)

func card(name, group, workspace string, created, updated int64) types.BoardCard {
	return types.BoardCard{
		Board: types.Board{
			Name:      name,
			CreatedAt: created,
			UpdatedAt: updated,
		},
		GroupName:     group,
		WorkspaceName: workspace,
	}
}

// TestSortBoardsByName verifies name order is ascending, case-sensitive
// lexicographic, and stable for ties.
func TestSortBoardsByName(t *testing.T) {
	cards := []types.BoardCard{
		card("beta", "g", "w", 1, 1),
		card("alpha", "g", "w", 2, 2),
		card("Zed", "g", "w", 3, 3),
		card("alpha", "other", "w", 4, 4),
	}

	SortBoards(cards, SortByName)

	// Uppercase sorts before lowercase in byte order.
	names := []string{"Zed", "alpha", "alpha", "beta"}
	for i, want := range names {
		if cards[i].Name != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, cards[i].Name)
		}
	}

	// The two alphas keep input order (stability).
	if cards[1].GroupName != "g" || cards[2].GroupName != "other" {
		t.Errorf("tie order not stable: %q then %q", cards[1].GroupName, cards[2].GroupName)
	}
}

func TestSortBoardsCreatedDescending(t *testing.T) {
	cards := []types.BoardCard{
		card("a", "g", "w", 10, 0),
		card("b", "g", "w", 30, 0),
		card("c", "g", "w", 20, 0),
	}

	SortBoards(cards, SortByCreated)

	if cards[0].Name != "b" || cards[1].Name != "c" || cards[2].Name != "a" {
		t.Fatalf("expected b,c,a got %s,%s,%s", cards[0].Name, cards[1].Name, cards[2].Name)
	}
}

func TestSortBoardsModifiedDescending(t *testing.T) {
	cards := []types.BoardCard{
		card("stale", "g", "w", 5, 100),
		card("fresh", "g", "w", 1, 300),
		card("mid", "g", "w", 9, 200),
	}

	SortBoards(cards, SortByModified)

	if cards[0].Name != "fresh" || cards[1].Name != "mid" || cards[2].Name != "stale" {
		t.Fatalf("expected fresh,mid,stale got %s,%s,%s", cards[0].Name, cards[1].Name, cards[2].Name)
	}
}

func TestSortBoardsGroupKey(t *testing.T) {
	cards := []types.BoardCard{
		card("z", "beta", "w1", 0, 0),
		card("a", "alpha", "w2", 0, 0),
		card("m", "alpha", "w1", 0, 0),
		card("b", "alpha", "w1", 0, 0),
	}

	SortBoards(cards, SortByGroup)

	order := []string{"b", "m", "a", "z"}
	for i, want := range order {
		if cards[i].Name != want {
			t.Fatalf("position %d: expected %q, got %q (group=%s ws=%s)", i, want, cards[i].Name, cards[i].GroupName, cards[i].WorkspaceName)
		}
	}
}

// TestFilterBoardsORSemantics verifies one query term matches across name,
// group, and workspace simultaneously, case-insensitively.
func TestFilterBoardsORSemantics(t *testing.T) {
	cards := []types.BoardCard{
		card("Roadmap", "Xaero", "core", 0, 0),
		card("sketches", "personal", "XAERO-lab", 0, 0),
		card("xaero-notes", "misc", "desk", 0, 0),
		card("groceries", "home", "kitchen", 0, 0),
	}

	filtered := FilterBoards(cards, "xaero")
	if len(filtered) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(filtered))
	}
	for _, c := range filtered {
		if c.Name == "groceries" {
			t.Errorf("groceries should not match")
		}
	}
}

func TestFilterBoardsEmptyQuery(t *testing.T) {
	cards := []types.BoardCard{card("a", "g", "w", 0, 0)}
	filtered := FilterBoards(cards, "   ")
	if len(filtered) != 1 {
		t.Fatalf("expected passthrough, got %d cards", len(filtered))
	}
}

func TestFilterBoardsPattern(t *testing.T) {
	cards := []types.BoardCard{
		card("xaero-one", "g", "w", 0, 0),
		card("two-xaero", "g", "w", 0, 0),
		card("other", "g", "w", 0, 0),
	}

	// Glob patterns anchor to the whole field.
	byGlob := FilterBoardsPattern(cards, "xaero*")
	if len(byGlob) != 1 || byGlob[0].Name != "xaero-one" {
		t.Fatalf("glob: expected only xaero-one, got %+v", byGlob)
	}

	// Plain terms fall back to substring matching.
	bySub := FilterBoardsPattern(cards, "xaero")
	if len(bySub) != 2 {
		t.Fatalf("substring: expected 2, got %d", len(bySub))
	}
}
