package internal

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

type ZapLogger struct {
	s *zap.SugaredLogger
}

// NewZapLogger builds a production zap logger at the given level.
func NewZapLogger(level string) (*ZapLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{s: l.Sugar()}, nil
}

// NewNopLogger discards everything. Used in tests.
func NewNopLogger() *ZapLogger {
	return &ZapLogger{s: zap.NewNop().Sugar()}
}

func (l *ZapLogger) Debug(args ...interface{})                  { l.s.Debug(args...) }
func (l *ZapLogger) Debugf(format string, args ...interface{})  { l.s.Debugf(format, args...) }
func (l *ZapLogger) Info(args ...interface{})                   { l.s.Info(args...) }
func (l *ZapLogger) Infof(format string, args ...interface{})   { l.s.Infof(format, args...) }
func (l *ZapLogger) Warn(args ...interface{})                   { l.s.Warn(args...) }
func (l *ZapLogger) Warnf(format string, args ...interface{})   { l.s.Warnf(format, args...) }
func (l *ZapLogger) Error(args ...interface{})                  { l.s.Error(args...) }
func (l *ZapLogger) Errorf(format string, args ...interface{})  { l.s.Errorf(format, args...) }
func (l *ZapLogger) Fatalf(format string, args ...interface{})  { l.s.Fatalf(format, args...) }
