package route

import (
	"fmt"
	"net/http"
	"time"

	"github.com/campfire/webgate/internal/log"
	"github.com/campfire/webgate/internal/metrics"
)

// Loader is the entry hook of a route. It's called once per request routed to it
// and decides how the request is answered.
type Loader func(r *http.Request) (Result, error)

// HandlerConfig is the configuration of a route handler.
type HandlerConfig struct {
	// Name identifies the route on logs and metrics.
	Name            string
	Loader          Loader
	Logger          log.Logger
	MetricsRecorder metrics.Recorder
}

func (c *HandlerConfig) defaults() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}

	if c.Loader == nil {
		return fmt.Errorf("loader is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"route": c.Name})

	if c.MetricsRecorder == nil {
		c.MetricsRecorder = metrics.NoopRecorder
	}

	return nil
}

type handler struct {
	name            string
	loader          Loader
	logger          log.Logger
	metricsRecorder metrics.Recorder
}

// NewHandler returns an HTTP handler that dispatches the results of a route loader.
func NewHandler(cfg HandlerConfig) (http.Handler, error) {
	err := cfg.defaults()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return handler{
		name:            cfg.Name,
		loader:          cfg.Loader,
		logger:          cfg.Logger,
		metricsRecorder: cfg.MetricsRecorder,
	}, nil
}

func (h handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	kind := KindError
	defer func() {
		h.metricsRecorder.MeasureRouteLoad(r.Context(), h.name, kind, time.Since(start))
	}()

	res, err := h.loader(r)
	if err != nil {
		h.fail(w, r, fmt.Errorf("could not load route: %w", err))
		return
	}

	switch res := res.(type) {
	case Redirect:
		if err := res.validate(); err != nil {
			h.fail(w, r, err)
			return
		}
		kind = KindRedirect
		http.Redirect(w, r, res.Location, res.Status)

	case Render:
		kind = KindRender
		if res.ContentType != "" {
			w.Header().Set("Content-Type", res.ContentType)
		}
		status := res.Status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		_, err := w.Write(res.Body)
		if err != nil {
			h.logger.WithCtxValues(r.Context()).Warningf("could not write response body: %s", err)
		}

	default:
		h.fail(w, r, fmt.Errorf("%w: %T", ErrUnknownResult, res))
	}
}

func (h handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.WithCtxValues(r.Context()).WithValues(log.Kv{
		"url":    r.URL.String(),
		"method": r.Method,
	}).Errorf("route failed: %s", err)

	http.Error(w, "internal server error", http.StatusInternalServerError)
}
