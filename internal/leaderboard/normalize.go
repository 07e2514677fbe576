package leaderboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/tidwall/gjson"
)

// Shape identifies which of the accepted top level document layouts was supplied.
type Shape int

const (
	ShapeUnsupported Shape = iota
	// ShapeArray is a bare array of player objects.
	ShapeArray
	// ShapePlayersObject is an object with a "players" array field.
	ShapePlayersObject
)

func (s Shape) String() string {
	switch s {
	case ShapeArray:
		return "array"
	case ShapePlayersObject:
		return "players object"
	case ShapeUnsupported:
		fallthrough
	default:
		return "unsupported"
	}
}

// RatingFallback computes a rating for records that do not carry one.
type RatingFallback func(wins int, losses int) float64

type normalizeOpts struct {
	ratingFallback RatingFallback
}

// NormalizeOption customizes Normalize.
type NormalizeOption func(*normalizeOpts)

// WithRatingFallback replaces the constant DefaultRating for records without a rating.
func WithRatingFallback(fallback RatingFallback) NormalizeOption {
	return func(opts *normalizeOpts) {
		opts.ratingFallback = fallback
	}
}

// Classify determines the document shape and returns the player array it holds.
func Classify(doc gjson.Result) (Shape, gjson.Result) {
	if doc.IsArray() {
		return ShapeArray, doc
	}

	if doc.IsObject() {
		if players := field(doc, "players"); players.IsArray() {
			return ShapePlayersObject, players
		}
	}

	return ShapeUnsupported, gjson.Result{}
}

// Parse validates the raw JSON text and normalizes it.
func Parse(data []byte, opts ...NormalizeOption) ([]PlayerRecord, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	return Normalize(gjson.ParseBytes(data), opts...)
}

// validate uses encoding/json so a parse failure carries a useful message; gjson is
// permissive and does not report where a document is broken.
func validate(data []byte) error {
	var raw json.RawMessage
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&raw); err != nil {
		return errors.Join(ErrParse, err)
	}

	if errTrailing := decoder.Decode(&raw); !errors.Is(errTrailing, io.EOF) {
		return errors.Join(ErrParse, errTrailingData)
	}

	return nil
}

var errTrailingData = errors.New("unexpected data after top-level value")

// Normalize maps every element of an accepted document into a PlayerRecord, preserving
// input order. Elements are never rejected, unusable fields fall back to their defaults.
func Normalize(doc gjson.Result, opts ...NormalizeOption) ([]PlayerRecord, error) {
	var options normalizeOpts
	for _, opt := range opts {
		opt(&options)
	}

	shape, players := Classify(doc)
	if shape == ShapeUnsupported {
		return nil, ErrMalformedInput
	}

	elements := players.Array()
	records := make([]PlayerRecord, 0, len(elements))
	for _, element := range elements {
		records = append(records, normalizeRecord(element, options))
	}

	return records, nil
}

func normalizeRecord(element gjson.Result, options normalizeOpts) PlayerRecord {
	record := PlayerRecord{
		Name:       coerceString(element, DefaultName, "name", "playerName"),
		WinRecord:  coerceInt(element, 0, "winRecord", "wins"),
		LossRecord: coerceInt(element, 0, "lossRecord", "losses"),
	}

	fallback := DefaultRating
	if options.ratingFallback != nil {
		if _, found := lookup(element, "rating"); !found {
			fallback = options.ratingFallback(record.WinRecord, record.LossRecord)
		}
	}
	record.Rating = coerceFloat(element, fallback, "rating")

	return record
}
