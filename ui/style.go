package ui

import (
	"github.com/gdamore/tcell/v2"

	"venndrop/game"
)

var styleDefault = tcell.StyleDefault.
	Background(tcell.NewRGBColor(10, 10, 10)).
	Foreground(tcell.ColorWhite)

// Region fills. The lit variants are used while a dragged choice hovers
// over the region.
var (
	fillLeft     = tcell.NewRGBColor(0, 30, 90)
	fillLeftLit  = tcell.NewRGBColor(0, 60, 150)
	fillRight    = tcell.NewRGBColor(90, 75, 0)
	fillRightLit = tcell.NewRGBColor(150, 125, 0)
	fillBoth     = tcell.NewRGBColor(35, 70, 45)
	fillBothLit  = tcell.NewRGBColor(60, 120, 75)
)

// Feedback backgrounds for choice badges.
var (
	bgNeutral  = tcell.NewRGBColor(60, 40, 0) // unevaluated: dull orange
	bgMatch    = tcell.NewRGBColor(0, 90, 0)
	bgMismatch = tcell.NewRGBColor(110, 0, 0)
)

func regionFill(r game.Region, lit bool) tcell.Color {
	switch r {
	case game.RegionLeftOnly:
		if lit {
			return fillLeftLit
		}
		return fillLeft
	case game.RegionRightOnly:
		if lit {
			return fillRightLit
		}
		return fillRight
	case game.RegionIntersection:
		if lit {
			return fillBothLit
		}
		return fillBoth
	}
	return tcell.ColorDefault
}

func cardColor(c game.Color) tcell.Color {
	switch c {
	case game.Red:
		return tcell.NewRGBColor(255, 80, 80)
	case game.Green:
		return tcell.NewRGBColor(80, 255, 80)
	case game.Blue:
		return tcell.NewRGBColor(100, 140, 255)
	}
	return tcell.ColorWhite
}

func shapeGlyph(s game.Shape) rune {
	switch s {
	case game.Circle:
		return '●'
	case game.Square:
		return '■'
	case game.Triangle:
		return '▲'
	}
	return '?'
}

func feedbackBg(f game.Feedback) tcell.Color {
	switch f {
	case game.FeedbackMatch:
		return bgMatch
	case game.FeedbackMismatch:
		return bgMismatch
	}
	return bgNeutral
}
