package game

// Color is the color axis of a card.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return "unknown"
}

// Shape is the shape axis of a card.
type Shape int

const (
	Circle Shape = iota
	Square
	Triangle
)

func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	}
	return "unknown"
}

// Size is the size axis of a card.
type Size int

const (
	Small Size = iota
	Medium
	Large
)

func (s Size) String() string {
	switch s {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	}
	return "unknown"
}

// Value sets per axis, in display order. Catalog construction and
// answer rolls iterate these rather than casting raw ints.
var (
	Colors = []Color{Red, Green, Blue}
	Shapes = []Shape{Circle, Square, Triangle}
	Sizes  = []Size{Small, Medium, Large}
)
