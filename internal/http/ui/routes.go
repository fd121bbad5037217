package ui

import (
	"fmt"
	"net/http"

	"github.com/slok/go-http-metrics/middleware/std"

	"github.com/campfire/webgate/internal/http/route"
)

const (
	URLPathHome     = "/home"
	URLPathCatchall = "/*"
)

func (u ui) registerRoutes() error {
	catchallLoader, err := newCatchallLoader()
	if err != nil {
		return fmt.Errorf("invalid catchall redirect: %w", err)
	}

	routes := []struct {
		name    string
		pattern string
		loader  route.Loader
	}{
		{name: "home", pattern: URLPathHome, loader: u.loadHome},
		// Any path not claimed by a more specific route.
		{name: "catchall", pattern: URLPathCatchall, loader: catchallLoader},
	}

	handlers := map[string]http.Handler{}
	for _, rt := range routes {
		h, err := route.NewHandler(route.HandlerConfig{
			Name:            rt.name,
			Loader:          rt.loader,
			Logger:          u.logger,
			MetricsRecorder: u.routeMetricsRecorder,
		})
		if err != nil {
			return fmt.Errorf("could not create %q route handler: %w", rt.name, err)
		}

		h = u.wrapMetrics(rt.pattern, h)
		u.router.Handle(rt.pattern, h)
		handlers[rt.pattern] = h
	}

	// chi answers methods outside its known set (e.g WebDAV PROPFIND) with a 405
	// before looking at the routes, send them where the path would have gone.
	u.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == URLPathHome {
			handlers[URLPathHome].ServeHTTP(w, r)
			return
		}

		handlers[URLPathCatchall].ServeHTTP(w, r)
	})

	return nil
}

// wrapMetrics adds the endpoint middlewares. Routes are registered for all the
// HTTP methods, a 307 redirect keeps the method so the destination must accept
// any of them.
func (u ui) wrapMetrics(pattern string, h http.Handler) http.Handler {
	return std.HandlerProvider(pattern, u.metricsMiddleware)(h)
}
