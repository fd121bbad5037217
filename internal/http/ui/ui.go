package ui

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	gohttpmetrics "github.com/slok/go-http-metrics/middleware"

	"github.com/campfire/webgate/internal/log"
	"github.com/campfire/webgate/internal/metrics"
)

type UIConfig struct {
	Logger log.Logger
	// MetricsRecorder measures the HTTP requests.
	MetricsRecorder MetricsRecorder
	// RouteMetricsRecorder measures the route loads and their results.
	RouteMetricsRecorder metrics.Recorder
}

func (c *UIConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"component": "ui"})

	if c.MetricsRecorder == nil {
		c.MetricsRecorder = noopMetricsRecorder
		c.Logger.Warningf("Metrics recorder disabled")
	}

	if c.RouteMetricsRecorder == nil {
		c.RouteMetricsRecorder = metrics.NoopRecorder
		c.Logger.Warningf("Route metrics recorder disabled")
	}

	return nil
}

type ui struct {
	router               chi.Router
	metricsMiddleware    gohttpmetrics.Middleware
	routeMetricsRecorder metrics.Recorder
	tplRenderer          *tplRenderer
	logger               log.Logger
}

// NewUI returns the UI HTTP handler.
func NewUI(cfg UIConfig) (http.Handler, error) {
	err := cfg.defaults()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	tplRenderer, err := newTplRenderer(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("could not create template renderer: %w", err)
	}

	ui := ui{
		router: chi.NewRouter(),
		metricsMiddleware: gohttpmetrics.New(gohttpmetrics.Config{
			Recorder: cfg.MetricsRecorder,
			Service:  "webgate-ui",
		}),
		routeMetricsRecorder: cfg.RouteMetricsRecorder,
		tplRenderer:          tplRenderer,
		logger:               cfg.Logger,
	}

	ui.registerGlobalMiddlewares()
	err = ui.registerRoutes()
	if err != nil {
		return nil, fmt.Errorf("could not register routes: %w", err)
	}

	return ui, nil
}

func (u ui) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u.router.ServeHTTP(w, r)
}
