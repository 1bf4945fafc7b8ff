package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

type Logger interface {
	Init()
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	DPanic(args ...interface{})
	DPanicf(template string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(template string, args ...interface{})
	With(args ...interface{}) Logger
}

type ZapLoggerConfig struct {
	Level      string
	Encoding   string
	TimeFormat string
	// Service is attached to every entry when set.
	Service string
	// Output defaults to stderr.
	Output io.Writer
}

// zapLogger gets its leveled methods from the embedded SugaredLogger; only
// With needs wrapping to keep returning a Logger.
type zapLogger struct {
	*zap.SugaredLogger
	cfg ZapLoggerConfig
}

func NewZapLogger(cfg ZapLoggerConfig) (Logger, error) {
	switch cfg.Encoding {
	case "", EncodingJSON, EncodingConsole:
	default:
		return nil, fmt.Errorf("unsupported log encoding %q", cfg.Encoding)
	}
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	l := &zapLogger{cfg: cfg}
	l.Init()
	return l, nil
}

// Init (re)builds the zap core from the config. Fields added through With
// before the call are dropped.
func (l *zapLogger) Init() {
	level, err := zapcore.ParseLevel(strings.ToLower(l.cfg.Level))
	if err != nil {
		level = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if l.cfg.TimeFormat != "" {
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(l.cfg.TimeFormat)
	}

	enc := zapcore.NewJSONEncoder(encCfg)
	if l.cfg.Encoding == EncodingConsole {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	base := zap.New(
		zapcore.NewCore(enc, zapcore.AddSync(l.cfg.Output), level),
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if l.cfg.Service != "" {
		base = base.With(zap.String("service", l.cfg.Service))
	}
	l.SugaredLogger = base.Sugar()
}

func (l *zapLogger) With(args ...interface{}) Logger {
	return &zapLogger{SugaredLogger: l.SugaredLogger.With(args...), cfg: l.cfg}
}

// Sync flushes buffered entries of a zap-backed logger. Other loggers are
// left alone.
func Sync(l Logger) error {
	if zl, ok := l.(*zapLogger); ok {
		return zl.SugaredLogger.Sync()
	}
	return nil
}
