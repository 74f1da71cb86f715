package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"venndrop/audio"
	"venndrop/board"
	"venndrop/game"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	// Zero-value player: never initialized, so tones are no-ops.
	a := New(screen, 42, board.Spacing{}, &audio.Player{}, zap.NewNop())
	return a, screen
}

func press(a *App, x, y int) {
	a.handleMouse(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
}

func release(a *App, x, y int) {
	a.handleMouse(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func TestDragEvaluatesOnDrop(t *testing.T) {
	a, _ := newTestApp(t)

	// Force a known card so the verdict is predictable.
	c := a.round.Choices[0]
	c.Card = a.round.Left

	press(a, c.X+1, c.Y)
	if a.dragIndex != 0 || !c.Dragged {
		t.Fatalf("badge not grabbed: dragIndex=%d dragged=%v", a.dragIndex, c.Dragged)
	}

	// Drop in the left crescent: the exact hidden card matches there.
	x := a.board.Left.X - a.board.Left.Radius + 1
	y := a.board.Left.Y
	press(a, x, y)
	release(a, x, y)

	if c.Dragged || a.dragIndex != -1 {
		t.Error("drag state not released after drop")
	}
	if c.Region != game.RegionLeftOnly {
		t.Errorf("region = %v, want left", c.Region)
	}
	if c.Feedback != game.FeedbackMatch {
		t.Errorf("feedback = %v, want match", c.Feedback)
	}
}

func TestDropOutsideReturnsHome(t *testing.T) {
	a, _ := newTestApp(t)
	c := a.round.Choices[3]

	press(a, c.X+1, c.Y)
	if !c.Dragged {
		t.Fatal("badge not grabbed")
	}

	// The status row is outside every recognized target.
	press(a, 0, 0)
	release(a, 0, 0)

	if c.X != c.HomeX || c.Y != c.HomeY {
		t.Errorf("choice at (%d, %d), want tray slot (%d, %d)", c.X, c.Y, c.HomeX, c.HomeY)
	}
	if c.Region != game.RegionNone || c.Feedback != game.FeedbackNone {
		t.Errorf("feedback not cleared: region=%v feedback=%v", c.Region, c.Feedback)
	}
}

func TestPickupClearsFeedback(t *testing.T) {
	a, _ := newTestApp(t)
	c := a.round.Choices[1]

	// Place it somewhere evaluable first.
	press(a, c.X+1, c.Y)
	midX := (a.board.Left.X + a.board.Right.X) / 2
	press(a, midX, a.board.Left.Y)
	release(a, midX, a.board.Left.Y)
	if c.Feedback == game.FeedbackNone {
		t.Fatal("expected some verdict after placing in the lens")
	}

	press(a, c.X+1, c.Y)
	if c.Feedback != game.FeedbackNone || c.Region != game.RegionNone {
		t.Errorf("re-grab must clear feedback, got region=%v feedback=%v", c.Region, c.Feedback)
	}
}

func TestRestartKeyRerollsRound(t *testing.T) {
	a, _ := newTestApp(t)
	c := a.round.Choices[0]
	c.Evaluate(game.RegionIntersection, a.round.Left, a.round.Right)

	if !a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)) {
		t.Fatal("restart must not quit")
	}

	placed, _ := a.round.Placed()
	if placed != 0 {
		t.Errorf("placed = %d after restart, want 0", placed)
	}
	for i, c := range a.round.Choices {
		if c.X != c.HomeX || c.Y != c.HomeY {
			t.Errorf("choice %d not in its tray slot after restart", i)
		}
	}
	// Fixed seed: restart replays the same answers.
	if got := game.NewRound(42, zap.NewNop()); got.Left != a.round.Left || got.Right != a.round.Right {
		t.Error("fixed seed did not replay the same answers")
	}
}

func TestQuitKeys(t *testing.T) {
	a, _ := newTestApp(t)

	quits := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
	}
	for _, ev := range quits {
		if a.handleEvent(ev) {
			t.Errorf("event %v should quit", ev.Key())
		}
	}
	if !a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Error("unbound key must not quit")
	}
}

func TestResizeSendsChoicesHome(t *testing.T) {
	a, screen := newTestApp(t)
	c := a.round.Choices[2]
	c.Evaluate(game.RegionIntersection, a.round.Left, a.round.Right)
	c.X, c.Y = 40, 12

	screen.SetSize(100, 30)
	a.handleEvent(tcell.NewEventResize(100, 30))

	if a.board.Width != 100 || a.board.Height != 30 {
		t.Errorf("board = %dx%d, want 100x30", a.board.Width, a.board.Height)
	}
	if c.X != c.HomeX || c.Y != c.HomeY || c.Region != game.RegionNone {
		t.Error("resize must send placed choices back to the tray")
	}
}

func TestDrawTextColumns(t *testing.T) {
	a, screen := newTestApp(t)

	// Multi-byte separators must still occupy one column each.
	a.drawText(2, 0, "a·b", styleDefault)

	cells := []struct {
		x    int
		want rune
	}{
		{2, 'a'},
		{3, '·'},
		{4, 'b'},
	}
	for _, c := range cells {
		if got, _, _, _ := screen.GetContent(c.x, 0); got != c.want {
			t.Errorf("cell %d = %q, want %q", c.x, got, c.want)
		}
	}
}

func TestDrawSmoke(t *testing.T) {
	a, _ := newTestApp(t)

	// One badge of each verdict, one mid-drag.
	a.round.Choices[0].Evaluate(game.RegionIntersection, a.round.Left, a.round.Right)
	press(a, a.round.Choices[1].X+1, a.round.Choices[1].Y)

	a.draw()
}
