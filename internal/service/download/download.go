package download

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jgivc/weatherdata/internal/common"
	"github.com/jgivc/weatherdata/internal/entity"
	"github.com/jgivc/weatherdata/internal/observability"
	"github.com/spf13/afero"
)

const (
	serviceName = "download"
)

type FileRepository interface {
	FileInfo(loc entity.Location, fileName string) (string, os.FileInfo, error)
	Preview(filePath string, maxLines int) (*entity.Preview, error)
	Open(filePath string) (afero.File, error)
}

type downloadService struct {
	repo    FileRepository
	metrics *observability.Metrics
	log     *slog.Logger
}

func NewDownloadService(repo FileRepository, metrics *observability.Metrics, log *slog.Logger) *downloadService {
	return &downloadService{
		repo:    repo,
		metrics: metrics,
		log:     log.With(slog.String("service", serviceName)),
	}
}

// Preview returns the first lines of a data file. The caller bounds lines.
func (d *downloadService) Preview(ctx context.Context, loc entity.Location, fileName string, lines int) (*entity.Preview, error) {
	log := d.log.With(slog.String("filename", fileName), slog.Int("lines", lines))

	filePath, info, err := d.repo.FileInfo(loc, fileName)
	if err != nil {
		log.Log(ctx, common.LogLevel(err), "Cannot find file", slog.Any("error", err))

		return nil, fmt.Errorf("cannot find file %s: %w", fileName, err)
	}

	preview, err := d.repo.Preview(filePath, lines)
	if err != nil {
		log.Log(ctx, common.LogLevel(err), "Cannot read preview", slog.String("path", filePath), slog.Any("error", err))

		return nil, fmt.Errorf("cannot read preview of %s: %w", fileName, err)
	}

	preview.Size = info.Size()
	preview.SizeMB = entity.SizeMB(info.Size())

	d.metrics.PreviewEncodings.WithLabelValues(preview.Encoding).Inc()
	log.Debug("Preview read", slog.String("path", filePath), slog.String("encoding", preview.Encoding), slog.Int("line_count", len(preview.Lines)))

	return preview, nil
}

// Download opens a data file for streaming. The caller must close Content.
func (d *downloadService) Download(ctx context.Context, loc entity.Location, fileName string) (*entity.Download, error) {
	filePath, info, err := d.repo.FileInfo(loc, fileName)
	if err != nil {
		d.log.Log(ctx, common.LogLevel(err), "Cannot find file", slog.String("filename", fileName), slog.Any("error", err))

		return nil, fmt.Errorf("cannot find file %s: %w", fileName, err)
	}

	f, err := d.repo.Open(filePath)
	if err != nil {
		d.log.Log(ctx, common.LogLevel(err), "Cannot open file", slog.String("path", filePath), slog.Any("error", err))

		return nil, fmt.Errorf("cannot open file %s: %w", fileName, err)
	}

	d.metrics.DownloadBytes.Add(float64(info.Size()))
	d.log.Info("Download file", slog.String("path", filePath), slog.Int64("size", info.Size()))

	return &entity.Download{
		Name:    fileName,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Content: f,
	}, nil
}
