package files

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jgivc/weatherdata/internal/common"
	"github.com/jgivc/weatherdata/internal/entity"
)

const (
	serviceName = "files"
)

type FilesRepository interface {
	Files(forecastType, city, district, town string) (*entity.FileGroups, error)
	Variables(forecastType, city, district, town string) ([]*entity.Variable, error)
	VariableFiles(forecastType, city, district, town, variable string) ([]*entity.File, error)
}

type filesService struct {
	repo FilesRepository
	log  *slog.Logger
}

func NewFilesService(repo FilesRepository, log *slog.Logger) *filesService {
	return &filesService{
		repo: repo,
		log:  log.With(slog.String("service", serviceName)),
	}
}

func (f *filesService) Files(ctx context.Context, loc entity.Location) (*entity.FileGroups, error) {
	groups, err := f.repo.Files(loc.ForecastType, loc.City, loc.District, loc.Town)
	if err != nil {
		f.log.Log(ctx, common.LogLevel(err), "Cannot list files", locationAttrs(loc, slog.Any("error", err))...)

		return nil, fmt.Errorf("cannot list files: %w", err)
	}

	f.log.Debug("Files listed", locationAttrs(loc, slog.Int("files", groups.FileCount()), slog.Int("variables", groups.Len()))...)

	return groups, nil
}

func (f *filesService) Variables(ctx context.Context, loc entity.Location) ([]*entity.Variable, error) {
	variables, err := f.repo.Variables(loc.ForecastType, loc.City, loc.District, loc.Town)
	if err != nil {
		f.log.Log(ctx, common.LogLevel(err), "Cannot list variables", locationAttrs(loc, slog.Any("error", err))...)

		return nil, fmt.Errorf("cannot list variables: %w", err)
	}

	return variables, nil
}

func (f *filesService) VariableFiles(ctx context.Context, loc entity.Location) ([]*entity.File, error) {
	files, err := f.repo.VariableFiles(loc.ForecastType, loc.City, loc.District, loc.Town, loc.Variable)
	if err != nil {
		f.log.Log(ctx, common.LogLevel(err), "Cannot list variable files", locationAttrs(loc, slog.Any("error", err))...)

		return nil, fmt.Errorf("cannot list variable files: %w", err)
	}

	return files, nil
}

func locationAttrs(loc entity.Location, extra ...any) []any {
	attrs := []any{
		slog.String("forecast_type", loc.ForecastType),
		slog.String("city", loc.City),
		slog.String("district", loc.District),
		slog.String("town", loc.Town),
	}

	if loc.Variable != "" {
		attrs = append(attrs, slog.String("variable", loc.Variable))
	}

	return append(attrs, extra...)
}
