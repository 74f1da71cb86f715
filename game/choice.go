package game

// Feedback is the evaluation state of a choice after a drop.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackMatch
	FeedbackMismatch
)

// Choice is a face-up draggable card from the catalog. The catalog owns
// every choice for the whole round; placement is transient state on the
// choice itself, not a transfer of ownership.
type Choice struct {
	Card Card

	// HomeX/HomeY is the tray slot assigned at layout time. X/Y is the
	// current badge position on screen.
	HomeX, HomeY int
	X, Y         int

	Region   Region
	Feedback Feedback
	Dragged  bool
}

// ClearFeedback resets the evaluation state. Picking a placed choice
// back up clears its color before re-evaluation.
func (c *Choice) ClearFeedback() {
	c.Region = RegionNone
	c.Feedback = FeedbackNone
}

// ReturnHome puts the choice back in its tray slot with no feedback.
// Used when a drop lands outside every recognized target.
func (c *Choice) ReturnHome() {
	c.X, c.Y = c.HomeX, c.HomeY
	c.ClearFeedback()
}

// Evaluate records the drop region and the matcher verdict against the
// round's hidden answers.
func (c *Choice) Evaluate(region Region, left, right Card) {
	c.Region = region
	if Matches(c.Card, region, left, right) {
		c.Feedback = FeedbackMatch
	} else {
		c.Feedback = FeedbackMismatch
	}
}
