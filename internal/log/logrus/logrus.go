// Package logrus adapts a logrus entry to the webgate log.Logger.
package logrus

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/campfire/webgate/internal/log"
)

type logger struct {
	*logrus.Entry
}

// NewLogrus wraps a logrus entry. Infof, Warningf, Errorf and Debugf come
// straight from the embedded entry.
func NewLogrus(l *logrus.Entry) log.Logger {
	return logger{Entry: l}
}

// WithValues returns a logger whose entries carry the values as logrus fields.
func (l logger) WithValues(kv log.Kv) log.Logger {
	return NewLogrus(l.Entry.WithFields(kv))
}

// WithCtxValues adds the values stored on the context, e.g the request ID set
// by the UI middleware.
func (l logger) WithCtxValues(ctx context.Context) log.Logger {
	return l.WithValues(log.ValuesFromCtx(ctx))
}

func (l logger) SetValuesOnCtx(parent context.Context, values log.Kv) context.Context {
	return log.CtxWithValues(parent, values)
}
