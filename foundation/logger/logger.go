package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.SugaredLogger
}

// preset описывает базовую конфигурацию для окружения.
type preset struct {
	production bool
	level      zapcore.Level
	stacktrace bool
	caller     bool
}

var presets = map[string]preset{
	"development": {level: zap.DebugLevel},
	"debug":       {level: zap.DebugLevel, stacktrace: true, caller: true},
	"production":  {production: true, level: zap.InfoLevel},
}

var fallbackPreset = preset{level: zap.InfoLevel}

type Option func(*zap.Config)

// WithLevel overrides the environment's level. Empty keeps it.
func WithLevel(level string) Option {
	return func(cfg *zap.Config) {
		if lvl, err := zapcore.ParseLevel(level); err == nil && level != "" {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}
}

// New builds a named logger writing to stderr; stdout is left to the program's output.
func New(serviceName, env string, opts ...Option) (*Logger, error) {
	cfg, withCaller := buildConfig(env)
	for _, opt := range opts {
		opt(&cfg)
	}

	z, err := cfg.Build(
		zap.WithCaller(withCaller),
		zap.AddCallerSkip(1),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot init zap logger: %w", err)
	}

	return &Logger{SugaredLogger: z.Named(serviceName).Sugar()}, nil
}

// Nop discards everything; the default for library components.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// ValidLevel reports whether s is empty or a level zap understands.
func ValidLevel(s string) bool {
	if s == "" {
		return true
	}
	_, err := zapcore.ParseLevel(s)
	return err == nil
}

func buildConfig(env string) (zap.Config, bool) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(env))]
	if !ok {
		p = fallbackPreset
	}

	cfg := zap.NewDevelopmentConfig()
	if p.production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(p.level)
	cfg.DisableStacktrace = !p.stacktrace

	enc := &cfg.EncoderConfig
	enc.TimeKey = "timestamp"
	enc.LevelKey = "level"
	enc.MessageKey = "msg"
	enc.NameKey = "logger"
	enc.CallerKey = zapcore.OmitKey
	if p.caller {
		enc.CallerKey = "caller"
	}
	enc.EncodeTime = zapcore.ISO8601TimeEncoder

	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg, p.caller
}

func (l *Logger) With(kv ...any) LoggerInterface {
	return &Logger{SugaredLogger: l.SugaredLogger.With(kv...)}
}

// SafeSync flushes buffered entries. Sync errors from terminals and pipes are not reported.
func (l *Logger) SafeSync() {
	if l == nil {
		return
	}
	if err := l.Desugar().Sync(); err != nil && !isIgnorableSyncError(err) {
		l.Errorw("log sync failed", "error", err)
	}
}

func isIgnorableSyncError(err error) bool {
	if err == nil {
		return false
	}

	s := strings.ToLower(err.Error())
	for _, ignorable := range []string{"invalid argument", "inappropriate ioctl for device", "bad file descriptor"} {
		if strings.Contains(s, ignorable) {
			return true
		}
	}
	return false
}
