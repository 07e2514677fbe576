package source

import (
	"errors"
	"io"
	"log/slog"
	"os"
)

// ReadFile reads the full contents of a local document.
func ReadFile(path string) ([]byte, error) {
	file, errOpen := os.Open(path)
	if errOpen != nil {
		return nil, errors.Join(ErrFileRead, errOpen)
	}

	defer func(file io.Closer) {
		if err := file.Close(); err != nil {
			slog.Error("Failed to close file", slog.String("path", path), slog.String("error", err.Error()))
		}
	}(file)

	body, errRead := io.ReadAll(io.LimitReader(file, maxDocumentSize))
	if errRead != nil {
		return nil, errors.Join(ErrFileRead, errRead)
	}

	return body, nil
}
