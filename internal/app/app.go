package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/afero"

	"github.com/jgivc/weatherdata/internal/adapter/fsadapter"
	"github.com/jgivc/weatherdata/internal/config"
	"github.com/jgivc/weatherdata/internal/entity"
	httphandler "github.com/jgivc/weatherdata/internal/handler/http"
	"github.com/jgivc/weatherdata/internal/observability"
	srvdownload "github.com/jgivc/weatherdata/internal/service/download"
	"github.com/jgivc/weatherdata/internal/service/files"
	"github.com/jgivc/weatherdata/internal/service/hierarchy"
	"github.com/jgivc/weatherdata/internal/service/summary"
)

type App struct {
	cfgPath string
	cfg     *config.Config
	srv     *http.Server
	summary *summary.SummaryService
	log     *slog.Logger
}

func New(cfgPath string) *App {
	return &App{
		cfgPath: cfgPath,
	}
}

// Init loads the configuration and wires the services. It must be called before Start or Summary.
func (a *App) Init() error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}

	a.cfg = cfg
	log := observability.NewLogger(os.Stderr, cfg.SlogLevel())
	a.log = log

	root := fsadapter.ResolveRoot(afero.NewOsFs(), fsadapter.RootCandidates(cfg.DataPath, deployDir()))
	log.Info("Data root resolved", slog.String("path", root))

	fsa := fsadapter.NewFSAdapter(root, log)
	metrics := observability.NewMetrics()

	a.summary = summary.NewSummaryService(fsa, log)
	services := &httphandler.Services{
		Hierarchy: hierarchy.NewHierarchyService(fsa, log),
		Files:     files.NewFilesService(fsa, log),
		Download:  srvdownload.NewDownloadService(fsa, metrics, log),
		Summary:   a.summary,
	}

	router := httphandler.NewRouter(&cfg.HTTPConfig, services, metrics, clockwork.NewRealClock(), promhttp.Handler(), log)

	a.srv = &http.Server{
		Addr:    cfg.HTTPConfig.Listen,
		Handler: router,
	}

	return nil
}

// Start serves HTTP until Stop is called. The returned channel receives the serve error, if any.
func (a *App) Start() <-chan error {
	errc := make(chan error, 1)

	go func() {
		defer close(errc)

		a.log.Info("Start listen", slog.String("addr", a.cfg.HTTPConfig.Listen))

		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("Could not serve", slog.String("listen_addr", a.cfg.HTTPConfig.Listen), slog.Any("error", err))
			errc <- err
		}
	}()

	return errc
}

func (a *App) Summary(ctx context.Context) (*entity.Summary, error) {
	return a.summary.Summary(ctx)
}

func (a *App) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTPConfig.ShutdownTimeout)
	defer cancel()

	if err := a.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("cannot shutdown server: %w", err)
	}

	return nil
}

func deployDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}

	return filepath.Dir(exe)
}
