package domain

import "testing"

func testBoard() Board {
	return Board{
		Name: "Work",
		Lists: []List{
			{Name: "Todo", Cards: []Card{
				{Name: "Write report", Labels: []Label{{Name: "urgent", Color: "red"}}},
				{Name: "Call bob"},
			}},
			{Name: "Done", Cards: []Card{
				{Name: "Ship it", Labels: []Label{{Color: "green"}}},
			}},
		},
	}
}

func TestRenderBoard(t *testing.T) {
	want := "Work\n====\n" +
		"\nTodo\n----\n* Write report [urgent]\n* Call bob\n" +
		"\nDone\n----\n* Ship it [green]\n"
	if got := RenderBoard(testBoard()); got != want {
		t.Errorf("RenderBoard() =\n%s\nwant\n%s", got, want)
	}
}

func TestBoardFilter(t *testing.T) {
	b := testBoard()
	filtered := b.Filter("URG")

	if len(filtered.Lists) != 2 {
		t.Fatalf("expected lists to be kept, got %d", len(filtered.Lists))
	}
	if n := len(filtered.Lists[0].Cards); n != 1 {
		t.Errorf("Todo cards = %d, want 1", n)
	}
	if n := len(filtered.Lists[1].Cards); n != 0 {
		t.Errorf("Done cards = %d, want 0", n)
	}
	if len(b.Lists[0].Cards) != 2 {
		t.Error("Filter must not modify the original board")
	}
}

func TestCardHasLabel(t *testing.T) {
	c := Card{Labels: []Label{{ID: "l1"}, {ID: "l2"}}}
	if !c.HasLabel("l2") {
		t.Error("expected label l2")
	}
	if c.HasLabel("l3") {
		t.Error("unexpected label l3")
	}
}
