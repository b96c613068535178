package fsadapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/jgivc/weatherdata/internal/entity"
	"github.com/spf13/afero"
)

// Files walks the town directory recursively and groups its CSV files by variable.
func (a *fsAdapter) Files(forecastType, city, district, town string) (*entity.FileGroups, error) {
	townPath, err := a.resolveDir(forecastType, city, district, town)
	if err != nil {
		return nil, err
	}

	groups := entity.NewFileGroups()

	err = afero.Walk(a.fs, townPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if path == townPath {
			return nil
		}

		if IsHidden(info.Name()) {
			if info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if info.IsDir() || !isCSV(info.Name()) {
			return nil
		}

		info = a.follow(path, info)
		if !info.Mode().IsRegular() {
			return nil
		}

		relPath, err := filepath.Rel(townPath, path)
		if err != nil {
			return err
		}

		groups.Add(InferVariable(relPath), a.newFile(path, info))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot walk %s: %w", townPath, err)
	}

	for _, variable := range groups.Keys() {
		sortByStartDate(groups.Get(variable))
	}

	a.log.Debug("Files found", slog.String("path", townPath), slog.Int("variables", groups.Len()), slog.Int("files", groups.FileCount()))

	return groups, nil
}

// Variables lists the variable directories of a town that directly contain CSV files.
func (a *fsAdapter) Variables(forecastType, city, district, town string) ([]*entity.Variable, error) {
	nodes, err := a.listChildren(forecastType, city, district, town)
	if err != nil {
		return nil, err
	}

	variables := make([]*entity.Variable, 0, len(nodes))
	for _, node := range nodes {
		files, err := a.readCSVFiles(node.Path)
		if err != nil {
			return nil, err
		}

		if len(files) < 1 {
			continue
		}

		variables = append(variables, &entity.Variable{
			Name:      node.Name,
			FileCount: len(files),
			Path:      node.Path,
		})
	}

	return variables, nil
}

// VariableFiles lists CSV files directly inside one variable directory.
func (a *fsAdapter) VariableFiles(forecastType, city, district, town, variable string) ([]*entity.File, error) {
	varPath, err := a.resolveDir(forecastType, city, district, town, variable)
	if err != nil {
		return nil, err
	}

	files, err := a.readCSVFiles(varPath)
	if err != nil {
		return nil, err
	}

	sortByStartDate(files)

	return files, nil
}

func (a *fsAdapter) readCSVFiles(dirPath string) ([]*entity.File, error) {
	entries, err := afero.ReadDir(a.fs, dirPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dirPath, err)
	}

	files := make([]*entity.File, 0, len(entries))
	for _, entry := range entries {
		if IsHidden(entry.Name()) || !isCSV(entry.Name()) {
			continue
		}

		filePath := filepath.Join(dirPath, entry.Name())
		info := a.follow(filePath, entry)
		if !info.Mode().IsRegular() {
			continue
		}

		files = append(files, a.newFile(filePath, info))
	}

	return files, nil
}

func (a *fsAdapter) newFile(path string, info os.FileInfo) *entity.File {
	meta := ParseFileName(info.Name())

	return &entity.File{
		Filename:  info.Name(),
		Path:      path,
		Size:      info.Size(),
		SizeMB:    entity.SizeMB(info.Size()),
		StartDate: meta.StartDate,
		EndDate:   meta.EndDate,
		Modified:  float64(info.ModTime().UnixNano()) / 1e9,
	}
}

func sortByStartDate(files []*entity.File) {
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].StartDate < files[j].StartDate
	})
}
