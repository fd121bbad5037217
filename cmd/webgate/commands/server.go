package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-playground/validator/v10"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	gohttpmetricsprometheus "github.com/slok/go-http-metrics/metrics/prometheus"

	"github.com/campfire/webgate/internal/http/ui"
	"github.com/campfire/webgate/internal/log"
	metricsprometheus "github.com/campfire/webgate/internal/metrics/prometheus"
)

type serverConfig struct {
	AppAddress      string        `validate:"required,listen_address"`
	StatusAddress   string        `validate:"required,listen_address"`
	HealthCheckPath string        `validate:"required,startswith=/"`
	MetricsPath     string        `validate:"required,startswith=/,nefield=HealthCheckPath"`
	PprofPath       string        `validate:"required,startswith=/,nefield=HealthCheckPath,nefield=MetricsPath"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

var serverConfigValidator = newServerConfigValidator()

func newServerConfigValidator() *validator.Validate {
	v := validator.New()
	// Only fails on an empty tag or a nil func.
	_ = v.RegisterValidation("listen_address", func(fl validator.FieldLevel) bool {
		_, _, err := splitListenAddress(fl.Field().String())
		return err == nil
	})
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		c := sl.Current().Interface().(serverConfig)
		if listenAddressesOverlap(c.AppAddress, c.StatusAddress) {
			sl.ReportError(c.AppAddress, "AppAddress", "AppAddress", "listen_conflict", "StatusAddress")
		}
	}, serverConfig{})

	return v
}

func (c serverConfig) validate() error {
	err := serverConfigValidator.Struct(c)
	if err != nil {
		return fmt.Errorf("invalid server configuration: %w", err)
	}

	return nil
}

// splitListenAddress returns the host and port of a `host:port` address. IPv6
// hosts go between brackets and an empty host means all interfaces.
func splitListenAddress(addr string) (host string, port int, err error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, err
	}

	port, err = strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid port %q: %w", portStr, err)
	}
	if port < 1 || port > 65535 {
		return "", 0, fmt.Errorf("port %d out of range", port)
	}

	if ip := net.ParseIP(host); ip != nil {
		if ip.IsUnspecified() {
			return "", port, nil
		}
		return ip.String(), port, nil
	}

	return strings.ToLower(host), port, nil
}

// listenAddressesOverlap reports if both addresses would bind the same port on
// the same interface, a wildcard host overlaps with any other host.
func listenAddressesOverlap(a, b string) bool {
	hostA, portA, err := splitListenAddress(a)
	if err != nil {
		return false
	}
	hostB, portB, err := splitListenAddress(b)
	if err != nil {
		return false
	}

	if portA != portB {
		return false
	}

	return hostA == "" || hostB == "" || hostA == hostB
}

type serverCommand struct {
	cfg serverConfig
}

// NewServerCommand returns the server command.
func NewServerCommand(app *kingpin.Application) Command {
	c := &serverCommand{}
	cmd := app.Command("server", "Starts the webgate web server.")
	cmd.Flag("app-listen-address", "Application listen address (`host:port`, IPv6 hosts between brackets). Must not share port and interface with the status address.").Default(":8080").StringVar(&c.cfg.AppAddress)
	cmd.Flag("status-listen-address", "Status (health check, metrics, pprof...) listen address (`host:port`, IPv6 hosts between brackets).").Default(":8081").StringVar(&c.cfg.StatusAddress)
	cmd.Flag("health-check-path", "Health check path.").Default("/status").StringVar(&c.cfg.HealthCheckPath)
	cmd.Flag("metrics-path", "Prometheus metrics path where metrics will be served.").Default("/metrics").StringVar(&c.cfg.MetricsPath)
	cmd.Flag("pprof-path", "PProf path where debug tool is available.").Default("/debug/pprof").StringVar(&c.cfg.PprofPath)
	cmd.Flag("shutdown-timeout", "Time given to the servers to drain connections on shutdown.").Default("5s").DurationVar(&c.cfg.ShutdownTimeout)

	return c
}

func (c serverCommand) Name() string { return "server" }
func (c serverCommand) Run(ctx context.Context, config RootConfig) error {
	err := c.cfg.validate()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := config.Logger.WithValues(log.Kv{"command": c.Name()})
	promReg := prometheus.DefaultRegisterer

	var g run.Group

	// Handle cancellation.
	{
		// Listen for shutdown signals, when signal received, stop main context to start the graceful shutdown.
		ctx, signalCancel := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
		defer signalCancel()

		exitC := make(chan struct{})

		g.Add(
			func() error {
				select {
				case <-ctx.Done():
					logger.Infof("Shutdown signal received")
					return nil
				case <-exitC:
				}

				return nil
			},
			func(_ error) {
				close(exitC)
			},
		)
	}

	// Status and metadata server (health checks, metrics...).
	{
		logger := logger.WithValues(log.Kv{
			"addr":         c.cfg.StatusAddress,
			"metrics":      c.cfg.MetricsPath,
			"health-check": c.cfg.HealthCheckPath,
			"pprof":        c.cfg.PprofPath,
		})

		server := &http.Server{
			Addr:    c.cfg.StatusAddress,
			Handler: newStatusHandler(c.cfg, promhttp.Handler()),
		}
		c.addHTTPServer(&g, server, logger)
	}

	// Application server.
	{
		logger := logger.WithValues(log.Kv{"addr": c.cfg.AppAddress})

		handler, err := newAppHandler(logger, promReg)
		if err != nil {
			return err
		}

		server := &http.Server{
			Addr:    c.cfg.AppAddress,
			Handler: handler,
		}
		c.addHTTPServer(&g, server, logger)
	}

	return g.Run()
}

func (c serverCommand) addHTTPServer(g *run.Group, server *http.Server, logger log.Logger) {
	g.Add(
		func() error {
			logger.Infof("HTTP server listening...")
			err := server.ListenAndServe()
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		},
		func(_ error) {
			logger.Infof("Start draining connections")
			ctx, cancel := context.WithTimeout(context.Background(), c.cfg.ShutdownTimeout)
			defer cancel()

			err := server.Shutdown(ctx)
			if err != nil {
				logger.Errorf("error while shutting down the server: %s", err)
			} else {
				logger.Infof("Server stopped")
			}
		},
	)
}

func newStatusHandler(cfg serverConfig, metricsHandler http.Handler) http.Handler {
	mux := http.NewServeMux()

	// Pprof.
	mux.HandleFunc(cfg.PprofPath+"/", pprof.Index)
	mux.HandleFunc(cfg.PprofPath+"/cmdline", pprof.Cmdline)
	mux.HandleFunc(cfg.PprofPath+"/profile", pprof.Profile)
	mux.HandleFunc(cfg.PprofPath+"/symbol", pprof.Symbol)
	mux.HandleFunc(cfg.PprofPath+"/trace", pprof.Trace)

	// Metrics.
	mux.Handle(cfg.MetricsPath, metricsHandler)

	// Health checks.
	mux.HandleFunc(cfg.HealthCheckPath, func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })

	return mux
}

func newAppHandler(logger log.Logger, reg prometheus.Registerer) (http.Handler, error) {
	uiHandler, err := ui.NewUI(ui.UIConfig{
		Logger: logger,
		MetricsRecorder: gohttpmetricsprometheus.NewRecorder(gohttpmetricsprometheus.Config{
			Prefix:   metricsprometheus.Prefix,
			Registry: reg,
		}),
		RouteMetricsRecorder: metricsprometheus.NewRecorder(reg),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create ui handler: %w", err)
	}

	return uiHandler, nil
}
