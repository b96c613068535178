package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppSummary(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{
		"단기예보/서울특별시/강남구/역삼동",
		"단기예보/서울특별시/강남구/삼성동",
		"중기예보/부산광역시/해운대구/우동",
		".snapshot",
	} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}

	t.Setenv("WEATHER_DATA_PATH", root)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LISTEN_ADDR", "127.0.0.1:0")

	a := New(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, a.Init())

	summary, err := a.Summary(context.Background())
	require.NoError(t, err)
	require.Equal(t, root, summary.NASPath)
	require.True(t, summary.NASAvailable)
	require.Len(t, summary.ForecastTypes, 2)
	require.Equal(t, "단기예보", summary.ForecastTypes[0].Name)
	require.Equal(t, 2, summary.ForecastTypes[0].TownCount)
	require.Equal(t, 1, summary.ForecastTypes[1].TownCount)

	require.NoError(t, a.Stop())
}
