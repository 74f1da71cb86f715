package game

import (
	"math/rand"

	"go.uber.org/zap"
)

// Round holds the hidden answers and the choice catalog for one game.
// Answers are rolled once at construction and never mutated; restarting
// means building a new round.
type Round struct {
	Left  Card // hidden answer for the left circle
	Right Card // hidden answer for the right circle

	Choices []*Choice
	Seed    int64
}

// NewRound rolls two hidden answers and builds the catalog from seed.
// The catalog carries one choice per (shape, size) pair with a rolled
// color, so every shape and size is always representable in the tray.
func NewRound(seed int64, logger *zap.Logger) *Round {
	rng := rand.New(rand.NewSource(seed))

	r := &Round{
		Left:  randomCard(rng),
		Right: randomCard(rng),
		Seed:  seed,
	}

	// Duplicate answers make the exclusive regions indistinguishable.
	// Allowed, but worth a trace when debugging a confusing round.
	if r.Left.Equal(r.Right) {
		logger.Debug("hidden answers coincide", zap.Stringer("card", r.Left))
	}
	logger.Debug("round start",
		zap.Int64("seed", seed),
		zap.Stringer("left", r.Left),
		zap.Stringer("right", r.Right),
	)

	for _, shape := range Shapes {
		for _, size := range Sizes {
			r.Choices = append(r.Choices, &Choice{
				Card: Card{
					Color: Colors[rng.Intn(len(Colors))],
					Shape: shape,
					Size:  size,
				},
			})
		}
	}
	return r
}

// Placed counts choices currently sitting in a recognized region, and
// how many of those were matches.
func (r *Round) Placed() (placed, matched int) {
	for _, c := range r.Choices {
		if c.Region == RegionNone {
			continue
		}
		placed++
		if c.Feedback == FeedbackMatch {
			matched++
		}
	}
	return placed, matched
}

func randomCard(rng *rand.Rand) Card {
	return Card{
		Color: Colors[rng.Intn(len(Colors))],
		Shape: Shapes[rng.Intn(len(Shapes))],
		Size:  Sizes[rng.Intn(len(Sizes))],
	}
}
