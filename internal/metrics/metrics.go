package metrics

import (
	"context"
	"time"
)

// Recorder knows how to measure route loads.
//
//go:generate mockery --case underscore --output metricsmock --outpkg metricsmock --name Recorder
type Recorder interface {
	MeasureRouteLoad(ctx context.Context, route, result string, t time.Duration)
}

type noopRecorder bool

// NoopRecorder doesn't measure anything.
var NoopRecorder Recorder = noopRecorder(false)

func (noopRecorder) MeasureRouteLoad(ctx context.Context, route, result string, t time.Duration) {}
