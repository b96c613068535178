package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jgivc/weatherdata/internal/common"
	"github.com/jgivc/weatherdata/internal/entity"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

type forecastTypesResponse struct {
	ForecastTypes []*entity.Node `json:"forecast_types"`
	Total         int            `json:"total"`
}

type citiesResponse struct {
	ForecastType string         `json:"forecast_type"`
	Cities       []*entity.Node `json:"cities"`
	Total        int            `json:"total"`
}

type districtsResponse struct {
	ForecastType string         `json:"forecast_type"`
	City         string         `json:"city"`
	Districts    []*entity.Node `json:"districts"`
	Total        int            `json:"total"`
}

type townsResponse struct {
	ForecastType string         `json:"forecast_type"`
	City         string         `json:"city"`
	District     string         `json:"district"`
	Towns        []*entity.Node `json:"towns"`
	Total        int            `json:"total"`
}

type townFields struct {
	ForecastType string `json:"forecast_type"`
	City         string `json:"city"`
	District     string `json:"district"`
	Town         string `json:"town"`
}

func newTownFields(loc entity.Location) townFields {
	return townFields{
		ForecastType: loc.ForecastType,
		City:         loc.City,
		District:     loc.District,
		Town:         loc.Town,
	}
}

type variablesResponse struct {
	townFields
	Variables []*entity.Variable `json:"variables"`
	Total     int                `json:"total"`
}

type filesResponse struct {
	townFields
	Variables      *entity.FileGroups `json:"variables"`
	TotalFiles     int                `json:"total_files"`
	TotalVariables int                `json:"total_variables"`
}

type variableFilesResponse struct {
	townFields
	Variable string         `json:"variable"`
	Files    []*entity.File `json:"files"`
	Total    int            `json:"total"`
}

type filePreviewResponse struct {
	townFields
	Variable       string   `json:"variable"`
	Filename       string   `json:"filename"`
	Encoding       string   `json:"encoding"`
	Lines          []string `json:"lines"`
	LineCount      int      `json:"line_count"`
	RequestedLines int      `json:"requested_lines"`
	Size           int64    `json:"size"`
	SizeMB         float64  `json:"size_mb"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // the client went away
}

// writeError maps an error to its status code. The error text goes to the client as is.
func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	status := statusCode(err)
	if status == http.StatusInternalServerError {
		log.Error("Request failed", slog.Any("error", err))
	}

	writeJSON(w, status, &errorResponse{Detail: err.Error()})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
