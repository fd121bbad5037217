package prometheus

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	Prefix = "webgate"
)

type Recorder struct {
	reg prometheus.Registerer

	routeLoadLatency *prometheus.HistogramVec
}

func NewRecorder(reg prometheus.Registerer) Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &Recorder{
		reg: reg,

		routeLoadLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Prefix,
				Subsystem: "route",
				Name:      "load_duration_seconds",
				Help:      "Duration histogram of route loads by result kind.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "result"},
		),
	}

	r.init()

	return *r
}

func (r Recorder) init() {
	r.reg.MustRegister(
		r.routeLoadLatency,
	)
}

func (r Recorder) MeasureRouteLoad(ctx context.Context, route, result string, t time.Duration) {
	r.routeLoadLatency.WithLabelValues(route, result).Observe(t.Seconds())
}
