package logging

import (
	"context"

	"go.uber.org/zap"

	"github.com/getpup/deploy-bootstrap"
)

// zapLogger adapts a zap.SugaredLogger to the bootstrap.Logger interface.
// The context is accepted for interface symmetry; zap does not consume it.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Compile-time check that zapLogger implements Logger.
var _ bootstrap.Logger = (*zapLogger)(nil)

// New creates a production or development bootstrap.Logger.
func New(development bool) (bootstrap.Logger, error) {
	var (
		base *zap.Logger
		err  error
	)
	if development {
		base, err = zap.NewDevelopment()
	} else {
		base, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return FromZap(base), nil
}

// FromZap wraps an existing zap.Logger, preserving any fields already
// attached to it.
func FromZap(base *zap.Logger) bootstrap.Logger {
	return &zapLogger{sugar: base.Sugar()}
}

// Nop returns a Logger that discards everything. Useful in tests.
func Nop() bootstrap.Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *zapLogger) Debug(_ context.Context, msg string, keysAndValues ...any) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l *zapLogger) Info(_ context.Context, msg string, keysAndValues ...any) {
	l.sugar.Infow(msg, keysAndValues...)
}

func (l *zapLogger) Warn(_ context.Context, msg string, keysAndValues ...any) {
	l.sugar.Warnw(msg, keysAndValues...)
}

func (l *zapLogger) Error(_ context.Context, msg string, keysAndValues ...any) {
	l.sugar.Errorw(msg, keysAndValues...)
}
