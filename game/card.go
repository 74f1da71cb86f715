package game

import "fmt"

// Card is an immutable tuple of one value per attribute axis. Two hidden
// cards, rolled at round start, act as the secret answers governing the
// left and right circles.
type Card struct {
	Color Color
	Shape Shape
	Size  Size
}

// Equal reports whether c and o agree on every axis.
func (c Card) Equal(o Card) bool {
	return c == o
}

// SharesAttribute reports whether c and o agree on at least one axis.
func (c Card) SharesAttribute(o Card) bool {
	return c.Color == o.Color || c.Shape == o.Shape || c.Size == o.Size
}

func (c Card) String() string {
	return fmt.Sprintf("%s %s %s", c.Size, c.Color, c.Shape)
}
