package common

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	err := fmt.Errorf("cannot list cities: %w", NotFoundError("/data/단기예보"))
	require.True(t, errors.Is(err, ErrNotFound))
	require.False(t, errors.Is(err, ErrBadRequest))
	require.Contains(t, err.Error(), "/data/단기예보")

	err = BadRequestError("not a file: %s", "a.csv")
	require.True(t, errors.Is(err, ErrBadRequest))
	require.Equal(t, "bad request: not a file: a.csv", err.Error())
}

func TestLogLevel(t *testing.T) {
	require.Equal(t, slog.LevelWarn, LogLevel(NotFoundError("/x")))
	require.Equal(t, slog.LevelWarn, LogLevel(fmt.Errorf("cannot: %w", BadRequestError("y"))))
	require.Equal(t, slog.LevelError, LogLevel(errors.New("disk on fire")))
}
