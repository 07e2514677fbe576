// Package source reads raw leaderboard documents from a URL or a local file and turns
// them into ranked records.
package source

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

var (
	// ErrFetch is returned when the document could not be downloaded.
	ErrFetch = errors.New("Failed to fetch data") //nolint:staticcheck
	// ErrFileRead is returned when a local file could not be read.
	ErrFileRead = errors.New("Failed to read file") //nolint:staticcheck
)

// maxDocumentSize bounds how much of a response or file is read.
const maxDocumentSize = 32 << 20

// HTTPDoer defines a common interface for HTTP clients.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// statusError carries the HTTP status text of a non-2xx response.
type statusError struct {
	code int
	text string
}

func (e statusError) Error() string {
	return e.text
}

// FetchURL downloads the document at url.
func FetchURL(ctx context.Context, httpClient HTTPDoer, url string) ([]byte, error) {
	req, errReq := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if errReq != nil {
		return nil, errors.Join(ErrFetch, errReq)
	}
	req.Header.Set("Accept", "application/json")

	resp, errResp := httpClient.Do(req) //nolint:bodyclose
	if errResp != nil {
		return nil, errors.Join(ErrFetch, errResp)
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			slog.Error("Failed to close response body", slog.String("error", err.Error()))
		}
	}(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Join(ErrFetch, statusError{code: resp.StatusCode, text: statusText(resp)})
	}

	body, errRead := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if errRead != nil {
		return nil, errors.Join(ErrFetch, errRead)
	}

	return body, nil
}

// statusText returns the reason phrase of the response, eg "Not Found".
func statusText(resp *http.Response) string {
	if _, reason, found := strings.Cut(resp.Status, " "); found && reason != "" {
		return reason
	}

	return http.StatusText(resp.StatusCode)
}

// StatusCode extracts the HTTP status code from a fetch error, or 0 when the failure
// was not caused by a non-2xx response.
func StatusCode(err error) int {
	var status statusError
	if errors.As(err, &status) {
		return status.code
	}

	return 0
}
