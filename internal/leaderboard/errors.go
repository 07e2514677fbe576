package leaderboard

import "errors"

var (
	// ErrParse is returned when the input text is not valid JSON.
	ErrParse = errors.New("failed to parse JSON")
	// ErrMalformedInput is returned when the JSON is valid but neither a bare array
	// nor an object holding a players array.
	ErrMalformedInput = errors.New("Unsupported JSON structure. Expected array or {players: [...]}.") //nolint:staticcheck
	errExport         = errors.New("failed to export records")
)
