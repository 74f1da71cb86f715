package board

// Circle is a Venn circle in cell coordinates. Radius is the horizontal
// (column) extent; the vertical extent is half that, because terminal
// cells are roughly twice as tall as they are wide. Containment doubles
// the row distance to normalize the 1:2 aspect.
type Circle struct {
	X, Y   int
	Radius int
}

// Contains reports whether the cell at (x, y) falls inside the circle.
func (c Circle) Contains(x, y int) bool {
	dx := x - c.X
	dy := (y - c.Y) * 2
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Rect is an axis-aligned cell box. Used for the answer boxes, the tray,
// and choice badges.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell at (x, y) falls inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
