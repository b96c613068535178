package common

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	ErrNotFound   = fmt.Errorf("not found")
	ErrBadRequest = fmt.Errorf("bad request")
)

// NotFoundError wraps ErrNotFound with the path that was looked up.
func NotFoundError(path string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, path)
}

func BadRequestError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, fmt.Sprintf(format, args...))
}

// LogLevel returns the level a failure is logged with. Client mistakes are warnings.
func LogLevel(err error) slog.Level {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrBadRequest) {
		return slog.LevelWarn
	}

	return slog.LevelError
}
