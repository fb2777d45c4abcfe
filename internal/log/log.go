// Package log provides the logging interface used across toastkit.
//
// Implementations are injected; use [Noop] to disable logging. The logrus
// backed implementation lives in the logrus subpackage.
package log

import "context"

// Kv is a helper type for structured logging fields usage.
type Kv = map[string]any

// Logger is the interface that the loggers used by the application must implement.
type Logger interface {
	Infof(format string, args ...any)
	Warningf(format string, args ...any)
	Errorf(format string, args ...any)
	Debugf(format string, args ...any)
	WithValues(values Kv) Logger
	WithCtxValues(ctx context.Context) Logger
	SetValuesOnCtx(parent context.Context, values Kv) context.Context
}

// Noop logger doesn't log anything.
const Noop = noop(0)

type noop int

func (n noop) Infof(format string, args ...any)    {}
func (n noop) Warningf(format string, args ...any) {}
func (n noop) Errorf(format string, args ...any)   {}
func (n noop) Debugf(format string, args ...any)   {}
func (n noop) WithValues(_ Kv) Logger              { return n }
func (n noop) WithCtxValues(_ context.Context) Logger {
	return n
}
func (n noop) SetValuesOnCtx(parent context.Context, _ Kv) context.Context {
	return parent
}

type contextKey int

const contextKeyValues contextKey = iota

// CtxWithValues returns a copy of parent carrying the merged logger values.
func CtxWithValues(parent context.Context, kv Kv) context.Context {
	if parent == nil {
		parent = context.Background()
	}

	// Merge with the values already present on the context.
	merged := Kv{}
	for k, v := range ValuesFromCtx(parent) {
		merged[k] = v
	}
	for k, v := range kv {
		merged[k] = v
	}

	return context.WithValue(parent, contextKeyValues, merged)
}

// ValuesFromCtx gets the logger values stored on the context.
func ValuesFromCtx(ctx context.Context) Kv {
	if ctx == nil {
		return Kv{}
	}
	v, ok := ctx.Value(contextKeyValues).(Kv)
	if !ok {
		return Kv{}
	}

	return v
}
