package kanban

import (
	"errors"
	"testing"
)

func testBoard() *Board {
	return NewBoard([]*Card{
		{TaskID: 1, Title: "a", Column: "waiting"},
		{TaskID: 2, Title: "b", Column: "waiting"},
		{TaskID: 3, Title: "c", Column: "in_progress"},
	}, []string{"waiting", "in_progress", "done", "stopped"})
}

func TestStartRejectsSecondPickup(t *testing.T) {
	sess := NewDragSession(testBoard())
	if err := sess.Start(1); err != nil {
		t.Fatalf("first start: %v", err)
	}
	if err := sess.Start(2); !errors.Is(err, ErrDragInProgress) {
		t.Fatalf("got %v, want ErrDragInProgress", err)
	}
}

func TestStartUnknownCard(t *testing.T) {
	sess := NewDragSession(testBoard())
	if err := sess.Start(99); !errors.Is(err, ErrUnknownCard) {
		t.Fatalf("got %v, want ErrUnknownCard", err)
	}
}

func TestOverCrossColumnCardAdoptsColumn(t *testing.T) {
	sess := NewDragSession(testBoard())
	if err := sess.Start(1); err != nil {
		t.Fatal(err)
	}
	if err := sess.Over("3"); err != nil {
		t.Fatal(err)
	}
	card := sess.Board().Find(1)
	if card.Column != "in_progress" {
		t.Fatalf("column = %q, want in_progress", card.Column)
	}
	// spliced in just above the target: order is 2, 1, 3
	got := make([]uint64, 0, 3)
	for _, c := range sess.Board().Cards() {
		got = append(got, c.TaskID)
	}
	want := []uint64{2, 1, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestOverSameColumnSwapsPositions(t *testing.T) {
	sess := NewDragSession(testBoard())
	if err := sess.Start(1); err != nil {
		t.Fatal(err)
	}
	if err := sess.Over("2"); err != nil {
		t.Fatal(err)
	}
	cards := sess.Board().Cards()
	if cards[0].TaskID != 2 || cards[1].TaskID != 1 {
		t.Fatalf("order = [%d %d], want [2 1]", cards[0].TaskID, cards[1].TaskID)
	}
}

func TestOverEmptyColumnSetsColumnInPlace(t *testing.T) {
	sess := NewDragSession(testBoard())
	if err := sess.Start(1); err != nil {
		t.Fatal(err)
	}
	if err := sess.Over("done"); err != nil {
		t.Fatal(err)
	}
	if col := sess.Board().Find(1).Column; col != "done" {
		t.Fatalf("column = %q, want done", col)
	}
}

func TestOverSelfIsNoop(t *testing.T) {
	sess := NewDragSession(testBoard())
	if err := sess.Start(1); err != nil {
		t.Fatal(err)
	}
	if err := sess.Over("1"); err != nil {
		t.Fatal(err)
	}
	if sess.Board().Cards()[0].TaskID != 1 {
		t.Fatal("board order changed on self-over")
	}
}

func TestDropReportsFinalColumnOnly(t *testing.T) {
	sess := NewDragSession(testBoard())
	if err := sess.Start(1); err != nil {
		t.Fatal(err)
	}
	// wander through several columns before settling
	for _, over := range []string{"in_progress", "done", "stopped", "done"} {
		if err := sess.Over(over); err != nil {
			t.Fatal(err)
		}
	}
	card, err := sess.Drop()
	if err != nil {
		t.Fatal(err)
	}
	if card.Column != "done" {
		t.Fatalf("final column = %q, want done", card.Column)
	}
	if sess.ActiveID() != 0 {
		t.Fatal("drop did not clear the active card")
	}
}

func TestDropWithoutDrag(t *testing.T) {
	sess := NewDragSession(testBoard())
	if _, err := sess.Drop(); !errors.Is(err, ErrNoActiveDrag) {
		t.Fatalf("got %v, want ErrNoActiveDrag", err)
	}
}

func TestCancelAllowsNewDrag(t *testing.T) {
	sess := NewDragSession(testBoard())
	if err := sess.Start(1); err != nil {
		t.Fatal(err)
	}
	sess.Cancel()
	if err := sess.Start(2); err != nil {
		t.Fatalf("start after cancel: %v", err)
	}
}

func TestMoveClampsTargetIndex(t *testing.T) {
	b := testBoard()
	b.move(2, -5)
	if b.Cards()[0].TaskID != 3 {
		t.Fatalf("head = %d, want 3", b.Cards()[0].TaskID)
	}
	b.move(0, 99)
	if b.Cards()[2].TaskID != 3 {
		t.Fatalf("tail = %d, want 3", b.Cards()[2].TaskID)
	}
}
