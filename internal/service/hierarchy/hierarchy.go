package hierarchy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jgivc/weatherdata/internal/common"
	"github.com/jgivc/weatherdata/internal/entity"
)

const (
	serviceName = "hierarchy"
)

type HierarchyRepository interface {
	ForecastTypes() ([]*entity.Node, error)
	Cities(forecastType string) ([]*entity.Node, error)
	Districts(forecastType, city string) ([]*entity.Node, error)
	Towns(forecastType, city, district string) ([]*entity.Node, error)
}

type hierarchyService struct {
	repo HierarchyRepository
	log  *slog.Logger
}

func NewHierarchyService(repo HierarchyRepository, log *slog.Logger) *hierarchyService {
	return &hierarchyService{
		repo: repo,
		log:  log.With(slog.String("service", serviceName)),
	}
}

func (h *hierarchyService) ForecastTypes(ctx context.Context) ([]*entity.Node, error) {
	nodes, err := h.repo.ForecastTypes()
	if err != nil {
		h.log.Log(ctx, common.LogLevel(err), "Cannot list forecast types", slog.Any("error", err))

		return nil, fmt.Errorf("cannot list forecast types: %w", err)
	}

	return nodes, nil
}

func (h *hierarchyService) Cities(ctx context.Context, forecastType string) ([]*entity.Node, error) {
	nodes, err := h.repo.Cities(forecastType)
	if err != nil {
		h.log.Log(ctx, common.LogLevel(err), "Cannot list cities", slog.String("forecast_type", forecastType), slog.Any("error", err))

		return nil, fmt.Errorf("cannot list cities: %w", err)
	}

	return nodes, nil
}

func (h *hierarchyService) Districts(ctx context.Context, forecastType, city string) ([]*entity.Node, error) {
	nodes, err := h.repo.Districts(forecastType, city)
	if err != nil {
		h.log.Log(ctx, common.LogLevel(err), "Cannot list districts", slog.String("forecast_type", forecastType),
			slog.String("city", city), slog.Any("error", err))

		return nil, fmt.Errorf("cannot list districts: %w", err)
	}

	return nodes, nil
}

func (h *hierarchyService) Towns(ctx context.Context, forecastType, city, district string) ([]*entity.Node, error) {
	nodes, err := h.repo.Towns(forecastType, city, district)
	if err != nil {
		h.log.Log(ctx, common.LogLevel(err), "Cannot list towns", slog.String("forecast_type", forecastType),
			slog.String("city", city), slog.String("district", district), slog.Any("error", err))

		return nil, fmt.Errorf("cannot list towns: %w", err)
	}

	return nodes, nil
}
