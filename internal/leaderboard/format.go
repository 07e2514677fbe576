package leaderboard

import (
	"math"
	"strconv"
)

// FormatRating renders the rating rounded to the nearest integer. The record itself
// keeps the full precision value.
func FormatRating(rating float64) string {
	return strconv.FormatFloat(math.Round(rating), 'f', 0, 64)
}

// FormatWinRate renders a 0-1 win rate as a percentage with one decimal place. Ties
// round half up, so a 1-15 record is 6.3%.
func FormatWinRate(rate float64) string {
	return strconv.FormatFloat(math.Floor(rate*1000+0.5)/10, 'f', 1, 64) + "%"
}
