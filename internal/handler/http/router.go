package httphandler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/jgivc/weatherdata/internal/common"
	"github.com/jgivc/weatherdata/internal/config"
	"github.com/jgivc/weatherdata/internal/observability"
)

const (
	headerRequestID = "X-Request-ID"
	unmatchedRoute  = "unmatched"
	corsMaxAge      = 300
)

type requestIDKey struct{}

// Services groups everything the router dispatches to.
type Services struct {
	Hierarchy HierarchyService
	Files     FilesService
	Download  DownloadService
	Summary   SummaryService
}

func NewRouter(cfg *config.HTTPConfig, srv *Services, metrics *observability.Metrics,
	clock clockwork.Clock, metricsHandler http.Handler, log *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(instrument(metrics, clock, log.With(slog.String("component", "router"))))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Content-Disposition", headerRequestID},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, log, common.NotFoundError(r.URL.Path))
	})

	r.Get("/health", NewHealthHandler())
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Route(cfg.APIPrefix, func(r chi.Router) {
		r.Get("/forecast-types", NewForecastTypesHandler(srv.Hierarchy, log))
		r.Get("/cities", NewCitiesHandler(srv.Hierarchy, log))
		r.Get("/districts", NewDistrictsHandler(srv.Hierarchy, log))
		r.Get("/towns", NewTownsHandler(srv.Hierarchy, log))
		r.Get("/variables", NewVariablesHandler(srv.Files, log))
		r.Get("/files", NewFilesHandler(srv.Files, log))
		r.Get("/variable-files", NewVariableFilesHandler(srv.Files, log))
		r.Get("/file-preview", NewFilePreviewHandler(srv.Download, log))
		r.Get("/download", NewDownloadHandler(srv.Download, log))
		r.Get("/data-summary", NewDataSummaryHandler(srv.Summary, log))
	})

	return r
}

// RequestID returns the id assigned to the request, or an empty string.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(headerRequestID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func instrument(metrics *observability.Metrics, clock clockwork.Clock, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := clock.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			elapsed := clock.Since(start)
			metrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
			metrics.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())

			log.Debug("Request served",
				slog.String("request_id", RequestID(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", elapsed),
			)
		})
	}
}
