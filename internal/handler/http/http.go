package httphandler

import (
	"context"
	"log/slog"
	"mime"
	"net/http"

	"github.com/jgivc/weatherdata/internal/entity"
)

const (
	contentTypeCSV = "text/csv"
)

type HierarchyService interface {
	ForecastTypes(ctx context.Context) ([]*entity.Node, error)
	Cities(ctx context.Context, forecastType string) ([]*entity.Node, error)
	Districts(ctx context.Context, forecastType, city string) ([]*entity.Node, error)
	Towns(ctx context.Context, forecastType, city, district string) ([]*entity.Node, error)
}

type FilesService interface {
	Files(ctx context.Context, loc entity.Location) (*entity.FileGroups, error)
	Variables(ctx context.Context, loc entity.Location) ([]*entity.Variable, error)
	VariableFiles(ctx context.Context, loc entity.Location) ([]*entity.File, error)
}

type DownloadService interface {
	Preview(ctx context.Context, loc entity.Location, fileName string, lines int) (*entity.Preview, error)
	Download(ctx context.Context, loc entity.Location, fileName string) (*entity.Download, error)
}

type SummaryService interface {
	Summary(ctx context.Context) (*entity.Summary, error)
}

func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}
}

func NewForecastTypesHandler(srv HierarchyService, log *slog.Logger) http.HandlerFunc {
	log = log.With(slog.String("handler", "ForecastTypesHandler"))

	return func(w http.ResponseWriter, r *http.Request) {
		nodes, err := srv.ForecastTypes(r.Context())
		if err != nil {
			writeError(w, log, err)

			return
		}

		writeJSON(w, http.StatusOK, &forecastTypesResponse{ForecastTypes: nodes, Total: len(nodes)})
	}
}

func NewCitiesHandler(srv HierarchyService, log *slog.Logger) http.HandlerFunc {
	log = log.With(slog.String("handler", "CitiesHandler"))

	return func(w http.ResponseWriter, r *http.Request) {
		q := newQuery(r)
		forecastType := q.required(paramForecastType)
		if err := q.err(); err != nil {
			writeError(w, log, err)

			return
		}

		nodes, err := srv.Cities(r.Context(), forecastType)
		if err != nil {
			writeError(w, log, err)

			return
		}

		writeJSON(w, http.StatusOK, &citiesResponse{ForecastType: forecastType, Cities: nodes, Total: len(nodes)})
	}
}

func NewDistrictsHandler(srv HierarchyService, log *slog.Logger) http.HandlerFunc {
	log = log.With(slog.String("handler", "DistrictsHandler"))

	return func(w http.ResponseWriter, r *http.Request) {
		q := newQuery(r)
		forecastType := q.required(paramForecastType)
		city := q.required(paramCity)
		if err := q.err(); err != nil {
			writeError(w, log, err)

			return
		}

		nodes, err := srv.Districts(r.Context(), forecastType, city)
		if err != nil {
			writeError(w, log, err)

			return
		}

		writeJSON(w, http.StatusOK, &districtsResponse{
			ForecastType: forecastType,
			City:         city,
			Districts:    nodes,
			Total:        len(nodes),
		})
	}
}

func NewTownsHandler(srv HierarchyService, log *slog.Logger) http.HandlerFunc {
	log = log.With(slog.String("handler", "TownsHandler"))

	return func(w http.ResponseWriter, r *http.Request) {
		q := newQuery(r)
		forecastType := q.required(paramForecastType)
		city := q.required(paramCity)
		district := q.required(paramDistrict)
		if err := q.err(); err != nil {
			writeError(w, log, err)

			return
		}

		nodes, err := srv.Towns(r.Context(), forecastType, city, district)
		if err != nil {
			writeError(w, log, err)

			return
		}

		writeJSON(w, http.StatusOK, &townsResponse{
			ForecastType: forecastType,
			City:         city,
			District:     district,
			Towns:        nodes,
			Total:        len(nodes),
		})
	}
}

func NewVariablesHandler(srv FilesService, log *slog.Logger) http.HandlerFunc {
	log = log.With(slog.String("handler", "VariablesHandler"))

	return func(w http.ResponseWriter, r *http.Request) {
		q := newQuery(r)
		loc := q.town()
		if err := q.err(); err != nil {
			writeError(w, log, err)

			return
		}

		variables, err := srv.Variables(r.Context(), loc)
		if err != nil {
			writeError(w, log, err)

			return
		}

		writeJSON(w, http.StatusOK, &variablesResponse{
			townFields: newTownFields(loc),
			Variables:  variables,
			Total:      len(variables),
		})
	}
}

func NewFilesHandler(srv FilesService, log *slog.Logger) http.HandlerFunc {
	log = log.With(slog.String("handler", "FilesHandler"))

	return func(w http.ResponseWriter, r *http.Request) {
		q := newQuery(r)
		loc := q.town()
		if err := q.err(); err != nil {
			writeError(w, log, err)

			return
		}

		groups, err := srv.Files(r.Context(), loc)
		if err != nil {
			writeError(w, log, err)

			return
		}

		writeJSON(w, http.StatusOK, &filesResponse{
			townFields:     newTownFields(loc),
			Variables:      groups,
			TotalFiles:     groups.FileCount(),
			TotalVariables: groups.Len(),
		})
	}
}

func NewVariableFilesHandler(srv FilesService, log *slog.Logger) http.HandlerFunc {
	log = log.With(slog.String("handler", "VariableFilesHandler"))

	return func(w http.ResponseWriter, r *http.Request) {
		q := newQuery(r)
		loc := q.variable()
		if err := q.err(); err != nil {
			writeError(w, log, err)

			return
		}

		files, err := srv.VariableFiles(r.Context(), loc)
		if err != nil {
			writeError(w, log, err)

			return
		}

		writeJSON(w, http.StatusOK, &variableFilesResponse{
			townFields: newTownFields(loc),
			Variable:   loc.Variable,
			Files:      files,
			Total:      len(files),
		})
	}
}

func NewFilePreviewHandler(srv DownloadService, log *slog.Logger) http.HandlerFunc {
	log = log.With(slog.String("handler", "FilePreviewHandler"))

	return func(w http.ResponseWriter, r *http.Request) {
		q := newQuery(r)
		loc := q.variable()
		fileName := q.required(paramFilename)
		lines := q.lines()
		if err := q.err(); err != nil {
			writeError(w, log, err)

			return
		}

		preview, err := srv.Preview(r.Context(), loc, fileName, lines)
		if err != nil {
			writeError(w, log, err)

			return
		}

		writeJSON(w, http.StatusOK, &filePreviewResponse{
			townFields:     newTownFields(loc),
			Variable:       loc.Variable,
			Filename:       fileName,
			Encoding:       preview.Encoding,
			Lines:          preview.Lines,
			LineCount:      len(preview.Lines),
			RequestedLines: lines,
			Size:           preview.Size,
			SizeMB:         preview.SizeMB,
		})
	}
}

func NewDownloadHandler(srv DownloadService, log *slog.Logger) http.HandlerFunc {
	log = log.With(slog.String("handler", "DownloadHandler"))

	return func(w http.ResponseWriter, r *http.Request) {
		q := newQuery(r)
		loc := q.variable()
		fileName := q.required(paramFilename)
		if err := q.err(); err != nil {
			writeError(w, log, err)

			return
		}

		download, err := srv.Download(r.Context(), loc, fileName)
		if err != nil {
			writeError(w, log, err)

			return
		}
		defer download.Content.Close()

		w.Header().Set("Content-Type", contentTypeCSV)
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": download.Name}))

		http.ServeContent(w, r, download.Name, download.ModTime, download.Content)
	}
}

func NewDataSummaryHandler(srv SummaryService, log *slog.Logger) http.HandlerFunc {
	log = log.With(slog.String("handler", "DataSummaryHandler"))

	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := srv.Summary(r.Context())
		if err != nil {
			writeError(w, log, err)

			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}
