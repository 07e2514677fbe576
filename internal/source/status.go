package source

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leighmacdonald/lb-tui/internal/leaderboard"
)

// Status is the single line of text shown to the user about the current load attempt.
type Status struct {
	Message string
	Err     bool
}

func StatusLoading() Status {
	return Status{Message: "Loading data..."}
}

func StatusLoaded(count int, label string) Status {
	return Status{Message: fmt.Sprintf("Loaded %d players (from %s)", count, label)}
}

// StatusFailed describes a failed load attempt. URL loads report every failure as a
// loading error, file loads distinguish read failures from parse failures.
func StatusFailed(origin Origin, err error) Status {
	if origin == OriginFile {
		if errors.Is(err, ErrFileRead) {
			return Status{Message: ErrFileRead.Error(), Err: true}
		}

		return Status{Message: "Error parsing file: " + Describe(err), Err: true}
	}

	return Status{Message: "Error loading data: " + Describe(err), Err: true}
}

// Describe returns the most useful human readable message for a load error.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, leaderboard.ErrMalformedInput):
		return leaderboard.ErrMalformedInput.Error()
	case errors.Is(err, ErrFetch) && StatusCode(err) != 0:
		return ErrFetch.Error() + ": " + detail(err, ErrFetch)
	case errors.Is(err, ErrFetch):
		return detail(err, ErrFetch)
	case errors.Is(err, leaderboard.ErrParse):
		return detail(err, leaderboard.ErrParse)
	case errors.Is(err, ErrFileRead):
		return detail(err, ErrFileRead)
	default:
		return err.Error()
	}
}

// detail strips the sentinel from a joined error, leaving the underlying cause.
func detail(err error, sentinel error) string {
	joined, ok := err.(interface{ Unwrap() []error }) //nolint:errorlint
	if !ok {
		return err.Error()
	}

	var parts []string
	for _, inner := range joined.Unwrap() {
		if inner == nil || errors.Is(inner, sentinel) {
			continue
		}
		parts = append(parts, detail(inner, sentinel))
	}

	if len(parts) == 0 {
		return sentinel.Error()
	}

	return strings.Join(parts, ": ")
}
