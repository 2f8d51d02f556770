package logging

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Philanthropists/fpkit/pkg/result"
)

const EnvironmentEnvName = "FPKIT_ENVIRONMENT"

type Field = zapcore.Field

type loggerCtxKey struct{}

type Logger struct {
	log *zap.Logger
}

var (
	logOnce      sync.Once
	cachedLogger *Logger
)

func production() bool {
	return os.Getenv(EnvironmentEnvName) == "production"
}

func defaultLogger() *zap.Logger {
	var logCfg zap.Config
	if production() {
		logCfg = zap.NewProductionConfig()
	} else {
		logCfg = zap.NewDevelopmentConfig()
		logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	logger, err := logCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		log.Panicf("could not create logger: %v", err)
	}

	return logger
}

// New returns the process wide logger, building it on first use.
func New() *Logger {
	logOnce.Do(func() {
		if cachedLogger == nil {
			cachedLogger = Wrap(defaultLogger())
		}
	})

	return cachedLogger
}

// SetGlobal replaces the logger returned by New. It has no effect once New
// has been called.
func SetGlobal(logger *zap.Logger) {
	if logger == nil {
		return
	}

	logOnce.Do(func() {
		cachedLogger = Wrap(logger)
	})
}

func Wrap(logger *zap.Logger) *Logger {
	return &Logger{log: logger}
}

func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return New()
	}

	if l, ok := ctx.Value(loggerCtxKey{}).(*Logger); ok {
		return l
	}

	return New()
}

func (l *Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}

func (l Logger) Debug(msg string, fields ...Field) {
	l.log.Debug(msg, fields...)
}

func (l Logger) Info(msg string, fields ...Field) {
	l.log.Info(msg, fields...)
}

func (l Logger) Warn(msg string, fields ...Field) {
	l.log.Warn(msg, fields...)
}

func (l Logger) Error(msg string, fields ...Field) {
	l.log.Error(msg, fields...)
}

func (l Logger) Sync() error {
	return l.log.Sync()
}

func (l Logger) With(fields ...Field) *Logger {
	return Wrap(l.log.With(fields...))
}

func (l Logger) WithOptions(opts ...zap.Option) *Logger {
	return Wrap(l.log.WithOptions(opts...))
}

// LogFailure returns a callback for Result.OnFailure that logs the failure,
// cause included, at warn level.
func LogFailure(l *Logger, msg string) func(result.Failure) {
	return func(f result.Failure) {
		fields := []Field{Failure("failure", f)}
		if f.Cause() != nil {
			fields = append(fields, Error(f.Cause()))
		}

		l.Warn(msg, fields...)
	}
}

// Report logs r at debug level on success and at warn level on failure, and
// returns r unchanged.
func Report[T any](l *Logger, msg string, r result.Result[T]) result.Result[T] {
	return r.
		OnSuccess(func(T) { l.Debug(msg, Result("result", r)) }).
		OnFailure(LogFailure(l, msg))
}
