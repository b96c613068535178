package fsadapter

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jgivc/weatherdata/internal/entity"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const testRoot = "/nas"

// makeFS creates dirs and files (path -> content) relative to testRoot.
func makeFS(t *testing.T, dirs []string, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(testRoot, 0o755))

	for _, dir := range dirs {
		require.NoError(t, fs.MkdirAll(filepath.Join(testRoot, dir), 0o755))
	}

	for path, content := range files {
		fullPath := filepath.Join(testRoot, path)
		require.NoError(t, fs.MkdirAll(filepath.Dir(fullPath), 0o755))
		require.NoError(t, afero.WriteFile(fs, fullPath, []byte(content), 0o644))
	}

	return fs
}

func newTestAdapter(t *testing.T, fs afero.Fs) *fsAdapter {
	t.Helper()

	logW := io.Discard
	if testing.Verbose() {
		logW = os.Stderr
	}
	log := slog.New(slog.NewTextHandler(logW, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewFSAdapterWithFS(fs, testRoot, log)
}

func nodeNames(nodes []*entity.Node) []string {
	names := make([]string, 0, len(nodes))
	for _, node := range nodes {
		names = append(names, node.Name)
	}

	return names
}
