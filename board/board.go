package board

import "venndrop/game"

// Layout constants in cells.
const (
	statusRows = 1
	boxHeight  = 3
	boxWidth   = 13
	trayRows   = 3
	slotWidth  = 7
)

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Spacing is the configurable part of the layout: edge margins and an
// optional cap on the circle radius.
type Spacing struct {
	MaxRadius int // cap on the circle column radius, 0 = fit the screen
	MarginX   int // columns kept clear at the left and right edges
	MarginY   int // rows kept clear under the status row and below the tray
}

// Board lays the diagram out for a terminal of a given size: two
// overlapping circles with an answer box above each, a status row on
// top, and the choice tray along the bottom.
type Board struct {
	Width, Height int
	Spacing       Spacing

	Left, Right       Circle
	LeftBox, RightBox Rect
	Tray              Rect
}

// New builds a board laid out for the given screen size.
func New(width, height int, sp Spacing) *Board {
	b := &Board{Spacing: sp}
	b.Layout(width, height)
	return b
}

// Layout recomputes all geometry. Called on construction and on every
// terminal resize.
func (b *Board) Layout(width, height int) {
	b.Width, b.Height = width, height

	boxY := statusRows + b.Spacing.MarginY
	top := boxY + boxHeight + 1
	trayTop := height - trayRows - b.Spacing.MarginY
	avail := trayTop - 1 - top
	if avail < 3 {
		avail = 3
	}

	// Column radius is twice the row radius (cell aspect), capped so
	// both circles fit side by side with a healthy overlap inside the
	// horizontal margins.
	innerW := width - 2*b.Spacing.MarginX
	radius := (avail / 2) * 2
	if maxR := innerW * 3 / 10; radius > maxR {
		radius = maxR
	}
	if b.Spacing.MaxRadius > 0 && radius > b.Spacing.MaxRadius {
		radius = b.Spacing.MaxRadius
	}
	if radius < 4 {
		radius = 4
	}

	cy := top + avail/2
	offset := radius * 2 / 3 // center gap 4R/3 < 2R, so the circles overlap
	b.Left = Circle{X: width/2 - offset, Y: cy, Radius: radius}
	b.Right = Circle{X: width/2 + offset, Y: cy, Radius: radius}

	b.LeftBox = Rect{X: b.Left.X - boxWidth/2, Y: boxY, W: boxWidth, H: boxHeight}
	b.RightBox = Rect{X: b.Right.X - boxWidth/2, Y: boxY, W: boxWidth, H: boxHeight}
	b.Tray = Rect{X: b.Spacing.MarginX, Y: trayTop, W: innerW, H: trayRows}
}

// RegionAt maps a screen cell to the drop target it belongs to. Answer
// boxes take precedence, then circle membership; anything else is
// RegionNone.
func (b *Board) RegionAt(x, y int) game.Region {
	if b.LeftBox.Contains(x, y) {
		return game.RegionLeftOnly
	}
	if b.RightBox.Contains(x, y) {
		return game.RegionRightOnly
	}
	inLeft := b.Left.Contains(x, y)
	inRight := b.Right.Contains(x, y)
	switch {
	case inLeft && inRight:
		return game.RegionIntersection
	case inLeft:
		return game.RegionLeftOnly
	case inRight:
		return game.RegionRightOnly
	}
	return game.RegionNone
}

// TraySlots returns home positions for n badges centered in the tray.
func (b *Board) TraySlots(n int) []Point {
	if n == 0 {
		return nil
	}
	startX := (b.Width - n*slotWidth) / 2
	if startX < 0 {
		startX = 0
	}
	y := b.Tray.Y + 1
	slots := make([]Point, n)
	for i := range slots {
		slots[i] = Point{X: startX + i*slotWidth, Y: y}
	}
	return slots
}

// BadgeRect is the clickable footprint of a choice badge: one glyph per
// size step plus the surrounding brackets, one row tall.
func BadgeRect(c *game.Choice) Rect {
	return Rect{X: c.X, Y: c.Y, W: BadgeWidth(c.Card.Size), H: 1}
}

// BadgeWidth returns the badge width in cells for a card size.
func BadgeWidth(s game.Size) int {
	return int(s) + 3 // n glyphs + 2 brackets, n = size + 1
}
