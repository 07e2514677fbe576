// Package elo implements the Elo rating system used to estimate ratings from a win/loss record.
package elo

import "math"

const (
	// DefaultKFactor controls how far ratings move after a single match.
	DefaultKFactor = 32.0
	// BaselineRating is the rating of a new player and of the replay opponent.
	BaselineRating = 1500.0
)

// Calculator performs rating updates with a fixed K factor.
type Calculator struct {
	kFactor float64
}

// New creates a calculator. Non-positive k factors fall back to DefaultKFactor.
func New(kFactor float64) Calculator {
	if kFactor <= 0 {
		kFactor = DefaultKFactor
	}

	return Calculator{kFactor: kFactor}
}

func (c Calculator) KFactor() float64 {
	return c.kFactor
}

// ExpectedScore is the probability of a player rated ratingA beating one rated ratingB.
func (c Calculator) ExpectedScore(ratingA float64, ratingB float64) float64 {
	return 1 / (1 + math.Pow(10, (ratingB-ratingA)/400))
}

// Update returns the new ratings of the winner and loser of a match, rounded to two
// decimal places.
func (c Calculator) Update(winner float64, loser float64) (float64, float64) {
	expectedWin := c.ExpectedScore(winner, loser)
	expectedLose := c.ExpectedScore(loser, winner)

	return round2(winner + c.kFactor*(1-expectedWin)), round2(loser + c.kFactor*(0-expectedLose))
}

// RatingFromRecord replays a record against an opponent fixed at BaselineRating, all
// wins first and then all losses. The opponent is reset for every match.
func (c Calculator) RatingFromRecord(wins int, losses int) float64 {
	// Rounding makes each replay converge, once a match leaves the rating unchanged
	// every further match does too.
	rating := BaselineRating
	for range max(0, wins) {
		next, _ := c.Update(rating, BaselineRating)
		if next == rating {
			break
		}
		rating = next
	}

	for range max(0, losses) {
		_, next := c.Update(BaselineRating, rating)
		if next == rating {
			break
		}
		rating = next
	}

	return rating
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
