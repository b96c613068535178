package fsadapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/jgivc/weatherdata/internal/adapter/textadapter"
	"github.com/jgivc/weatherdata/internal/common"
	"github.com/jgivc/weatherdata/internal/entity"
	"github.com/spf13/afero"
)

// fsAdapter reads the weather data hierarchy. It holds no mutable state and
// every call walks the filesystem again.
type fsAdapter struct {
	fs       afero.Fs
	root     string
	decoders textadapter.Chain

	log *slog.Logger
}

func NewFSAdapter(root string, log *slog.Logger) *fsAdapter {
	return NewFSAdapterWithFS(afero.NewOsFs(), root, log)
}

func NewFSAdapterWithFS(fs afero.Fs, root string, log *slog.Logger) *fsAdapter {
	return &fsAdapter{
		fs:       fs,
		root:     root,
		decoders: textadapter.DefaultChain(),
		log:      log.With(slog.String("item", "FSAdapter")),
	}
}

func (a *fsAdapter) ForecastTypes() ([]*entity.Node, error) {
	return a.listChildren()
}

func (a *fsAdapter) Cities(forecastType string) ([]*entity.Node, error) {
	return a.listChildren(forecastType)
}

func (a *fsAdapter) Districts(forecastType, city string) ([]*entity.Node, error) {
	return a.listChildren(forecastType, city)
}

func (a *fsAdapter) Towns(forecastType, city, district string) ([]*entity.Node, error) {
	return a.listChildren(forecastType, city, district)
}

func (a *fsAdapter) listChildren(segments ...string) ([]*entity.Node, error) {
	dirPath, err := a.resolveDir(segments...)
	if err != nil {
		return nil, err
	}

	return a.listDirs(dirPath)
}

// resolveDir joins segments to the root and checks that the result is a directory.
func (a *fsAdapter) resolveDir(segments ...string) (string, error) {
	dirPath, err := joinSegments(a.root, segments...)
	if err != nil {
		return "", err
	}

	info, err := a.fs.Stat(dirPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", common.NotFoundError(dirPath)
		}

		return "", fmt.Errorf("cannot stat %s: %w", dirPath, err)
	}

	if !info.IsDir() {
		return "", common.BadRequestError("not a directory: %s", dirPath)
	}

	return dirPath, nil
}

// listDirs returns visible subdirectories of dirPath sorted by normalized name.
func (a *fsAdapter) listDirs(dirPath string) ([]*entity.Node, error) {
	entries, err := afero.ReadDir(a.fs, dirPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dirPath, err)
	}

	nodes := make([]*entity.Node, 0, len(entries))
	for _, entry := range entries {
		if IsHidden(entry.Name()) {
			continue
		}

		entryPath := filepath.Join(dirPath, entry.Name())
		if !a.follow(entryPath, entry).IsDir() {
			continue
		}

		nodes = append(nodes, &entity.Node{
			Name: NormalizeName(entry.Name()),
			Path: entryPath,
		})
	}

	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Name < nodes[j].Name
	})

	return nodes, nil
}

// follow resolves symlinks so that linked directories and files count as what they point to.
func (a *fsAdapter) follow(path string, info os.FileInfo) os.FileInfo {
	if info.Mode()&os.ModeSymlink == 0 {
		return info
	}

	target, err := a.fs.Stat(path)
	if err != nil {
		a.log.Debug("Skip broken link", slog.String("path", path), slog.Any("error", err))

		return info
	}

	return target
}

func (a *fsAdapter) fileExists(path string) bool {
	_, err := a.fs.Stat(path)
	if err == nil {
		return true
	}

	// Other errors (e.g., permission issues) count as absence too.
	return false
}
