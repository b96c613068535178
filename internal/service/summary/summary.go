package summary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jgivc/weatherdata/internal/common"
	"github.com/jgivc/weatherdata/internal/entity"
)

const (
	serviceName = "summary"
)

type SummaryRepository interface {
	Summary() (*entity.Summary, error)
}

type SummaryService struct {
	repo SummaryRepository
	log  *slog.Logger
}

func NewSummaryService(repo SummaryRepository, log *slog.Logger) *SummaryService {
	return &SummaryService{
		repo: repo,
		log:  log.With(slog.String("service", serviceName)),
	}
}

// Summary walks the whole hierarchy. Its cost grows with the number of directories.
func (s *SummaryService) Summary(ctx context.Context) (*entity.Summary, error) {
	summary, err := s.repo.Summary()
	if err != nil {
		s.log.Log(ctx, common.LogLevel(err), "Cannot summarize", slog.Any("error", err))

		return nil, fmt.Errorf("cannot summarize data: %w", err)
	}

	s.log.Info("Data summarized", slog.String("path", summary.NASPath), slog.Int("forecast_types", len(summary.ForecastTypes)))

	return summary, nil
}
