package echo

import (
	"testing"

	"echolint/internal/token"
)

func tokens(texts ...string) []token.Token {
	out := make([]token.Token, len(texts))
	for i, s := range texts {
		out[i] = token.Token{Index: i, Text: s, Normalized: s}
	}
	return out
}

func TestWindowBounds(t *testing.T) {
	ts := tokens("a", "b", "c", "d", "e", "f", "g")
	got := Window(ts, 3, 2)

	wantIdx := []int{1, 2, 4, 5}
	if len(got) != len(wantIdx) {
		t.Fatalf("window size = %d, want %d", len(got), len(wantIdx))
	}
	for i, w := range got {
		if w.Index != wantIdx[i] {
			t.Fatalf("window[%d].Index = %d, want %d (order must follow the container)", i, w.Index, wantIdx[i])
		}
		d := w.Index - 3
		if d < 0 {
			d = -d
		}
		if d == 0 || d > 2 {
			t.Fatalf("candidate at distance %d violates 0 < |d| <= radius", d)
		}
	}
}

func TestWindowExcludesCenter(t *testing.T) {
	ts := tokens("a", "b", "c")
	for center := range ts {
		for _, w := range Window(ts, center, 100) {
			if w.Index == center {
				t.Fatalf("center token %d appeared in its own window", center)
			}
		}
	}
}

func TestWindowAtEdges(t *testing.T) {
	ts := tokens("a", "b", "c")
	if got := Window(ts, 0, 1); len(got) != 1 || got[0].Index != 1 {
		t.Fatalf("left edge window = %+v", got)
	}
	if got := Window(ts, 2, 1); len(got) != 1 || got[0].Index != 1 {
		t.Fatalf("right edge window = %+v", got)
	}
	if got := Window(tokens("only"), 0, 5); len(got) != 0 {
		t.Fatalf("single-token container should yield an empty window, got %+v", got)
	}
}
