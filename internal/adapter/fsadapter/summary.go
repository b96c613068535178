package fsadapter

import (
	"log/slog"

	"github.com/jgivc/weatherdata/internal/common"
	"github.com/jgivc/weatherdata/internal/entity"
)

// Summary counts cities, districts and towns for every forecast type.
// The whole tree is walked on each call.
func (a *fsAdapter) Summary() (*entity.Summary, error) {
	if !a.fileExists(a.root) {
		return nil, common.NotFoundError(a.root)
	}

	forecastTypes, err := a.listDirs(a.root)
	if err != nil {
		return nil, err
	}

	summary := &entity.Summary{
		NASPath:       a.root,
		NASAvailable:  true,
		ForecastTypes: make([]*entity.ForecastTypeSummary, 0, len(forecastTypes)),
	}

	for _, forecastType := range forecastTypes {
		ftSummary, err := a.summarize(forecastType)
		if err != nil {
			return nil, err
		}

		summary.ForecastTypes = append(summary.ForecastTypes, ftSummary)
	}

	return summary, nil
}

func (a *fsAdapter) summarize(forecastType *entity.Node) (*entity.ForecastTypeSummary, error) {
	s := &entity.ForecastTypeSummary{
		Name:   forecastType.Name,
		Cities: []string{},
	}

	cities, err := a.listDirs(forecastType.Path)
	if err != nil {
		return nil, err
	}
	s.CityCount = len(cities)

	for _, city := range cities {
		districts, err := a.listDirs(city.Path)
		if err != nil {
			return nil, err
		}
		s.DistrictCount += len(districts)

		for _, district := range districts {
			towns, err := a.listDirs(district.Path)
			if err != nil {
				return nil, err
			}
			s.TownCount += len(towns)
		}
	}

	a.log.Debug("Forecast type summarized", slog.String("name", s.Name), slog.Int("cities", s.CityCount),
		slog.Int("districts", s.DistrictCount), slog.Int("towns", s.TownCount))

	return s, nil
}
