package entity

type Summary struct {
	NASPath       string                 `json:"nas_path"`
	NASAvailable  bool                   `json:"nas_available"`
	ForecastTypes []*ForecastTypeSummary `json:"forecast_types"`
}

type ForecastTypeSummary struct {
	Name          string   `json:"name"`
	Cities        []string `json:"cities"` // Always empty, clients expect the key
	CityCount     int      `json:"city_count"`
	DistrictCount int      `json:"district_count"`
	TownCount     int      `json:"town_count"`
}
