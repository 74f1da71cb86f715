package game

import "testing"

func TestChoiceEvaluate(t *testing.T) {
	left := Card{Color: Red, Shape: Circle, Size: Small}
	right := Card{Color: Blue, Shape: Square, Size: Large}

	c := &Choice{Card: Card{Color: Red, Shape: Square, Size: Large}}

	c.Evaluate(RegionIntersection, left, right)
	if c.Region != RegionIntersection || c.Feedback != FeedbackMatch {
		t.Errorf("intersection drop: region=%v feedback=%v", c.Region, c.Feedback)
	}

	c.Evaluate(RegionLeftOnly, left, right)
	if c.Feedback != FeedbackMismatch {
		t.Errorf("partial match on exclusive region must mismatch, got %v", c.Feedback)
	}

	c.ClearFeedback()
	if c.Region != RegionNone || c.Feedback != FeedbackNone {
		t.Errorf("ClearFeedback left region=%v feedback=%v", c.Region, c.Feedback)
	}
}

func TestChoiceReturnHome(t *testing.T) {
	c := &Choice{
		Card:     Card{Color: Green, Shape: Triangle, Size: Medium},
		HomeX:    10,
		HomeY:    20,
		X:        42,
		Y:        7,
		Region:   RegionRightOnly,
		Feedback: FeedbackMismatch,
	}

	c.ReturnHome()
	if c.X != 10 || c.Y != 20 {
		t.Errorf("position = (%d, %d), want tray slot (10, 20)", c.X, c.Y)
	}
	if c.Region != RegionNone || c.Feedback != FeedbackNone {
		t.Errorf("feedback not cleared: region=%v feedback=%v", c.Region, c.Feedback)
	}
}
