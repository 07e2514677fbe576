package leaderboard

import (
	"cmp"

	"golang.org/x/exp/slices"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is the collation locale used for name tie-breaks.
var DefaultLocale = language.English

// Ranker orders records by rating, win rate, wins, losses and finally name.
type Ranker struct {
	locale language.Tag
}

// NewRanker creates a ranker that compares names using the collation rules of locale.
func NewRanker(locale language.Tag) Ranker {
	return Ranker{locale: locale}
}

// Rank ranks records with the default locale.
func Rank(records []PlayerRecord) []PlayerRecord {
	return NewRanker(DefaultLocale).Rank(records)
}

// Rank returns a ranked copy of records. The input slice is not modified. Records that
// tie on every key keep their input order.
func (r Ranker) Rank(records []PlayerRecord) []PlayerRecord {
	ranked := slices.Clone(records)
	if ranked == nil {
		return []PlayerRecord{}
	}

	// A Collator holds internal buffers, so each call gets its own.
	collator := collate.New(r.locale)
	slices.SortStableFunc(ranked, func(a, b PlayerRecord) int { //nolint:varnamelen
		return compare(collator, a, b)
	})

	return ranked
}

// Top returns at most count of the highest ranked records.
func (r Ranker) Top(records []PlayerRecord, count int) []PlayerRecord {
	ranked := r.Rank(records)

	return ranked[:min(max(0, count), len(ranked))]
}

// Compare reports the ordering of a and b: negative when a ranks above b.
func (r Ranker) Compare(a PlayerRecord, b PlayerRecord) int { //nolint:varnamelen
	return compare(collate.New(r.locale), a, b)
}

func compare(collator *collate.Collator, a PlayerRecord, b PlayerRecord) int { //nolint:varnamelen
	if order := cmp.Compare(b.Rating, a.Rating); order != 0 {
		return order
	}

	if order := cmp.Compare(b.WinRate(), a.WinRate()); order != 0 {
		return order
	}

	if order := cmp.Compare(b.WinRecord, a.WinRecord); order != 0 {
		return order
	}

	if order := cmp.Compare(a.LossRecord, b.LossRecord); order != 0 {
		return order
	}

	return collator.CompareString(a.Name, b.Name)
}
