// Package log is the logging abstraction webgate components depend on, the
// concrete logger is chosen by main (see internal/log/logrus).
package log

import "context"

// Kv are structured log fields, e.g route, request-id or addr.
type Kv = map[string]interface{}

// Logger is the logger used across webgate components.
type Logger interface {
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	WithValues(values map[string]interface{}) Logger
	WithCtxValues(ctx context.Context) Logger
	SetValuesOnCtx(parent context.Context, values map[string]interface{}) context.Context
}

// Noop discards everything, used by --no-log and as the default of component configs.
const Noop = noop(0)

type noop int

func (n noop) Infof(format string, args ...interface{})                         {}
func (n noop) Warningf(format string, args ...interface{})                      {}
func (n noop) Errorf(format string, args ...interface{})                        {}
func (n noop) Debugf(format string, args ...interface{})                        {}
func (n noop) WithValues(map[string]interface{}) Logger                         { return n }
func (n noop) WithCtxValues(context.Context) Logger                             { return n }
func (n noop) SetValuesOnCtx(parent context.Context, values Kv) context.Context { return parent }

type contextKey string

const contextLogValuesKey = contextKey("webgate-log")

// CtxWithValues returns a copy of parent with the key values merged on top of
// the ones it already carried.
func CtxWithValues(parent context.Context, kv Kv) context.Context {
	oldValues, ok := parent.Value(contextLogValuesKey).(Kv)
	if !ok {
		oldValues = Kv{}
	}

	newValues := make(Kv, len(oldValues)+len(kv))
	for k, v := range oldValues {
		newValues[k] = v
	}
	for k, v := range kv {
		newValues[k] = v
	}

	return context.WithValue(parent, contextLogValuesKey, newValues)
}

// ValuesFromCtx gets the log key values from a context.
func ValuesFromCtx(ctx context.Context) Kv {
	values, ok := ctx.Value(contextLogValuesKey).(Kv)
	if !ok {
		return Kv{}
	}

	return values
}
