package ui

import (
	"testing"
)

func TestMasonryLayoutPlacesEveryCardOnce(t *testing.T) {
	heights := []int{4, 7, 3, 5, 6, 2, 4, 4}
	layout := masonryLayout(heights, 3)

	seen := make(map[int]int)
	for _, column := range layout {
		for _, idx := range column {
			seen[idx]++
		}
	}
	if len(seen) != len(heights) {
		t.Fatalf("placed %d cards, want %d", len(seen), len(heights))
	}
	for idx, count := range seen {
		if count != 1 {
			t.Errorf("card %d placed %d times", idx, count)
		}
	}
}

func TestMasonryLayoutShortestColumn(t *testing.T) {
	// A tall first card pushes everything else into the second column.
	layout := masonryLayout([]int{10, 1, 1, 1}, 2)

	if got := len(layout[0]); got != 1 || layout[0][0] != 0 {
		t.Fatalf("column 0 = %v, want [0]", layout[0])
	}
	if got := layout[1]; len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("column 1 = %v, want [1 2 3]", got)
	}
}

func TestMasonryLayoutTiesGoLeft(t *testing.T) {
	// Equal heights alternate columns, ties resolving leftmost.
	layout := masonryLayout([]int{3, 3, 3, 3, 3}, 2)

	want0 := []int{0, 2, 4}
	want1 := []int{1, 3}
	for i, idx := range want0 {
		if layout[0][i] != idx {
			t.Fatalf("column 0 = %v, want %v", layout[0], want0)
		}
	}
	for i, idx := range want1 {
		if layout[1][i] != idx {
			t.Fatalf("column 1 = %v, want %v", layout[1], want1)
		}
	}
}

func TestMasonryLayoutDeterministic(t *testing.T) {
	heights := []int{5, 2, 8, 3, 3, 6, 1}
	first := masonryLayout(heights, 3)
	for run := 0; run < 5; run++ {
		again := masonryLayout(heights, 3)
		for c := range first {
			if len(first[c]) != len(again[c]) {
				t.Fatalf("run %d: column %d length changed", run, c)
			}
			for i := range first[c] {
				if first[c][i] != again[c][i] {
					t.Fatalf("run %d: column %d = %v, want %v", run, c, again[c], first[c])
				}
			}
		}
	}
}

func TestMasonryLayoutSingleColumn(t *testing.T) {
	heights := []int{2, 5, 1}
	layout := masonryLayout(heights, 1)

	if len(layout) != 1 {
		t.Fatalf("got %d columns, want 1", len(layout))
	}
	for i, idx := range layout[0] {
		if idx != i {
			t.Fatalf("column 0 = %v, want input order", layout[0])
		}
	}
}

func TestGridColumnsClamps(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 1},
		{20, 1},
		{cardWidth + 2, 1},
		{(cardWidth + 2) * 2, 2},
		{(cardWidth + 2) * 3, 3},
		{(cardWidth + 2) * 10, maxGridColumns},
	}
	for _, tt := range tests {
		if got := gridColumns(tt.width); got != tt.want {
			t.Errorf("gridColumns(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestTruncateLine(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"much too long for this", 10, "much too …"},
		{"héllo wörld", 5, "héll…"},
		{"anything", 0, ""},
		{"ab", 1, "…"},
	}
	for _, tt := range tests {
		if got := truncateLine(tt.in, tt.width); got != tt.want {
			t.Errorf("truncateLine(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
