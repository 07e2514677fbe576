// Package leaderboard normalizes loosely structured player documents into canonical
// records and ranks them.
package leaderboard

const (
	// DefaultName is used when a record has neither a name nor playerName field.
	DefaultName = "unknown"
	// DefaultRating is used when a record has no usable rating.
	DefaultRating = 1500.0
)

// PlayerRecord is the canonical form of a single competitor. Every field is always
// populated, missing or unusable input values having been replaced by their defaults.
type PlayerRecord struct {
	Name       string
	WinRecord  int
	LossRecord int
	Rating     float64
}

// TotalGames is the number of decided games.
func (p PlayerRecord) TotalGames() int {
	return p.WinRecord + p.LossRecord
}

// WinRate returns wins / (wins + losses), or 0 when no games have been played.
func (p PlayerRecord) WinRate() float64 {
	total := p.TotalGames()
	if total == 0 {
		return 0
	}

	return float64(p.WinRecord) / float64(total)
}
