package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"venndrop/board"
	"venndrop/game"
)

func (a *App) draw() {
	a.screen.Fill(' ', styleDefault)

	hover := game.RegionNone
	if a.dragIndex >= 0 {
		hover = a.board.RegionAt(a.cursorX, a.cursorY)
	}

	a.drawDiagram(hover)
	a.drawAnswerBox(a.board.LeftBox, "LEFT ?", hover == game.RegionLeftOnly)
	a.drawAnswerBox(a.board.RightBox, "RIGHT ?", hover == game.RegionRightOnly)
	a.drawTray()
	a.drawChoices()
	a.drawStatus()

	a.screen.Show()
}

// drawDiagram fills the circle regions. Each cell is classified the same
// way hit testing classifies drops, so what lights up is exactly where a
// release would land.
func (a *App) drawDiagram(hover game.Region) {
	minX := a.board.Left.X - a.board.Left.Radius
	maxX := a.board.Right.X + a.board.Right.Radius
	minY := a.board.Left.Y - a.board.Left.Radius/2
	maxY := a.board.Left.Y + a.board.Left.Radius/2

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			inLeft := a.board.Left.Contains(x, y)
			inRight := a.board.Right.Contains(x, y)
			if !inLeft && !inRight {
				continue
			}
			var region game.Region
			switch {
			case inLeft && inRight:
				region = game.RegionIntersection
			case inLeft:
				region = game.RegionLeftOnly
			default:
				region = game.RegionRightOnly
			}
			fill := regionFill(region, hover != game.RegionNone && region == hover)
			a.screen.SetContent(x, y, ' ', nil, styleDefault.Background(fill))
		}
	}
}

func (a *App) drawAnswerBox(r board.Rect, label string, lit bool) {
	style := styleDefault
	if lit {
		style = style.Foreground(tcell.ColorYellow).Bold(true)
	}

	for x := r.X; x < r.X+r.W; x++ {
		a.screen.SetContent(x, r.Y, '─', nil, style)
		a.screen.SetContent(x, r.Y+r.H-1, '─', nil, style)
	}
	for y := r.Y; y < r.Y+r.H; y++ {
		a.screen.SetContent(r.X, y, '│', nil, style)
		a.screen.SetContent(r.X+r.W-1, y, '│', nil, style)
	}
	a.screen.SetContent(r.X, r.Y, '┌', nil, style)
	a.screen.SetContent(r.X+r.W-1, r.Y, '┐', nil, style)
	a.screen.SetContent(r.X, r.Y+r.H-1, '└', nil, style)
	a.screen.SetContent(r.X+r.W-1, r.Y+r.H-1, '┘', nil, style)

	a.drawText(r.X+(r.W-len(label))/2, r.Y+r.H/2, label, style)
}

func (a *App) drawTray() {
	for x := 0; x < a.board.Width; x++ {
		a.screen.SetContent(x, a.board.Tray.Y, '─', nil, styleDefault.Foreground(tcell.ColorGray))
	}
}

// drawChoices renders tray and placed badges first, the dragged badge
// last so it stays on top.
func (a *App) drawChoices() {
	var dragged *game.Choice
	for _, c := range a.round.Choices {
		if c.Dragged {
			dragged = c
			continue
		}
		a.drawBadge(c)
	}
	if dragged != nil {
		a.drawBadge(dragged)
	}
}

func (a *App) drawBadge(c *game.Choice) {
	style := styleDefault.
		Foreground(cardColor(c.Card.Color)).
		Background(feedbackBg(c.Feedback))
	if c.Dragged {
		style = style.Dim(true)
	}

	glyph := shapeGlyph(c.Card.Shape)
	w := board.BadgeWidth(c.Card.Size)
	a.screen.SetContent(c.X, c.Y, '[', nil, style)
	for i := 1; i < w-1; i++ {
		a.screen.SetContent(c.X+i, c.Y, glyph, nil, style)
	}
	a.screen.SetContent(c.X+w-1, c.Y, ']', nil, style)
}

func (a *App) drawStatus() {
	placed, matched := a.round.Placed()
	sound := "off"
	if a.sound.Enabled() {
		sound = "on"
	}
	status := fmt.Sprintf(" venndrop · seed %d · placed %d/%d · matched %d · sound %s · r restart · q quit",
		a.round.Seed, placed, len(a.round.Choices), matched, sound)
	a.drawText(0, 0, status, styleDefault.Foreground(tcell.ColorGray))
}

// drawText advances one column per rune; ranging by byte offset would
// leave gaps after multi-byte runes.
func (a *App) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		a.screen.SetContent(col, y, r, nil, style)
		col++
	}
}
