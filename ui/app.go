// Package ui drives the terminal interaction surface: a tcell screen,
// a mouse-driven drag loop, and the diagram rendering.
package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"venndrop/audio"
	"venndrop/board"
	"venndrop/game"
)

// App owns the screen and the current round, and runs the event loop.
type App struct {
	screen tcell.Screen
	board  *board.Board
	round  *game.Round
	sound  *audio.Player
	logger *zap.Logger

	seed      int64
	fixedSeed bool

	dragIndex        int // index into round.Choices, -1 when nothing is held
	cursorX, cursorY int
}

// New builds the app around an initialized screen and starts the first
// round. A zero seed rolls from the clock on every round; a nonzero
// seed replays the same round on restart.
func New(screen tcell.Screen, seed int64, sp board.Spacing, sound *audio.Player, logger *zap.Logger) *App {
	screen.EnableMouse()
	screen.SetStyle(styleDefault)

	a := &App{
		screen:    screen,
		sound:     sound,
		logger:    logger,
		seed:      seed,
		fixedSeed: seed != 0,
		dragIndex: -1,
	}
	w, h := screen.Size()
	a.board = board.New(w, h, sp)
	a.startRound()
	return a
}

// Finish restores the terminal. Safe to call from a panic handler.
func (a *App) Finish() {
	a.screen.Fini()
}

// Run blocks until the player quits.
func (a *App) Run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.draw()
		}
	}
}

func (a *App) startRound() {
	seed := a.seed
	if !a.fixedSeed {
		seed = time.Now().UnixNano()
	}
	a.round = game.NewRound(seed, a.logger)
	a.dragIndex = -1
	a.layoutChoices()
}

// layoutChoices assigns tray slots and sends every choice to its slot.
func (a *App) layoutChoices() {
	slots := a.board.TraySlots(len(a.round.Choices))
	for i, c := range a.round.Choices {
		c.HomeX, c.HomeY = slots[i].X, slots[i].Y
		c.ReturnHome()
	}
}

func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'r':
				a.startRound()
			case 's':
				on := a.sound.Toggle()
				a.logger.Debug("sound toggled", zap.Bool("on", on))
			}
		}
	case *tcell.EventResize:
		a.handleResize()
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
	return true
}

// handleResize recomputes the board. Circle geometry moves, so placed
// badges are sent home rather than silently landing in a different
// region.
func (a *App) handleResize() {
	w, h := a.screen.Size()
	a.board.Layout(w, h)
	a.dragIndex = -1
	for _, c := range a.round.Choices {
		c.Dragged = false
	}
	a.layoutChoices()
	a.screen.Sync()
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	a.cursorX, a.cursorY = x, y
	held := ev.Buttons()&tcell.Button1 != 0

	switch {
	case held && a.dragIndex < 0:
		a.grab(x, y)
	case held:
		a.moveDragged(x, y)
	case a.dragIndex >= 0:
		a.drop(x, y)
	}
}

// grab picks up the topmost badge under the pointer. Later choices draw
// over earlier ones, so scan back to front. Feedback clears on pickup.
func (a *App) grab(x, y int) {
	for i := len(a.round.Choices) - 1; i >= 0; i-- {
		c := a.round.Choices[i]
		if !board.BadgeRect(c).Contains(x, y) {
			continue
		}
		c.ClearFeedback()
		c.Dragged = true
		a.dragIndex = i
		a.moveDragged(x, y)
		a.sound.Pickup()
		return
	}
}

func (a *App) moveDragged(x, y int) {
	c := a.round.Choices[a.dragIndex]
	c.X = x - board.BadgeWidth(c.Card.Size)/2
	c.Y = y
}

// drop evaluates the release point. Outside every recognized target the
// choice goes back to its tray slot with feedback cleared.
func (a *App) drop(x, y int) {
	c := a.round.Choices[a.dragIndex]
	c.Dragged = false
	a.dragIndex = -1

	region := a.board.RegionAt(x, y)
	if region == game.RegionNone {
		c.ReturnHome()
		a.logger.Debug("drop outside targets", zap.Stringer("card", c.Card))
		return
	}

	c.Evaluate(region, a.round.Left, a.round.Right)
	if c.Feedback == game.FeedbackMatch {
		a.sound.Match()
	} else {
		a.sound.Mismatch()
	}
	a.logger.Debug("drop",
		zap.Stringer("card", c.Card),
		zap.Stringer("region", region),
		zap.Bool("match", c.Feedback == game.FeedbackMatch),
	)
}
