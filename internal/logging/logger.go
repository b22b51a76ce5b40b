package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/annel0/vecmath/internal/config"
)

// LogLevel определяет уровни логирования
type LogLevel int32

const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// String возвращает строковое представление уровня логирования
func (l LogLevel) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel разбирает уровень логирования без учета регистра
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TRACE, nil
	case "DEBUG":
		return DEBUG, nil
	case "INFO", "":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

// Logger - логгер компонента поверх zap.
// TRACE пишется как debug с полем trace=true.
type Logger struct {
	component string
	sugar     *zap.SugaredLogger
	level     atomic.Int32
	closer    io.Closer
}

// NewLogger создает логгер компонента: консоль плюс, если задан cfg.File,
// JSON файл с ротацией
func NewLogger(component string, cfg config.LogConfig, console zapcore.WriteSyncer) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), console, zap.DebugLevel),
	}

	var closer io.Closer
	if cfg.File != "" {
		rotator, release := acquireFile(cfg)
		closer = release
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(rotator),
			zap.DebugLevel,
		))
	}

	l := newLogger(component, zapcore.NewTee(cores...), level)
	l.closer = closer
	return l, nil
}

// fileSink - общий ротатор для всех логгеров, пишущих в один файл.
// lumberjack допускает только одного писателя на файл.
type fileSink struct {
	rotator *lumberjack.Logger
	refs    int
}

var (
	sinksMu sync.Mutex
	sinks   = make(map[string]*fileSink)
)

// fileRelease освобождает ссылку на fileSink; последний Close закрывает файл
type fileRelease struct {
	key  string
	once sync.Once
}

func (r *fileRelease) Close() error {
	var err error
	r.once.Do(func() {
		sinksMu.Lock()
		defer sinksMu.Unlock()

		sink, ok := sinks[r.key]
		if !ok {
			return
		}
		sink.refs--
		if sink.refs <= 0 {
			delete(sinks, r.key)
			err = sink.rotator.Close()
		}
	})
	return err
}

// acquireFile возвращает ротатор для cfg.File, создавая его при первом обращении.
// Параметры ротации берутся у первого логгера.
func acquireFile(cfg config.LogConfig) (*lumberjack.Logger, io.Closer) {
	key := filepath.Clean(cfg.File)
	if abs, err := filepath.Abs(key); err == nil {
		key = abs
	}

	sinksMu.Lock()
	defer sinksMu.Unlock()

	sink, ok := sinks[key]
	if !ok {
		sink = &fileSink{rotator: &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}}
		sinks[key] = sink
	}
	sink.refs++
	return sink.rotator, &fileRelease{key: key}
}

func newLogger(component string, core zapcore.Core, level LogLevel) *Logger {
	l := &Logger{
		component: component,
		sugar:     zap.New(core).Named(component).Sugar(),
	}
	l.SetLevel(level)
	return l
}

// SetLevel устанавливает минимальный уровень сообщений
func (l *Logger) SetLevel(level LogLevel) {
	l.level.Store(int32(level))
}

// Level возвращает текущий минимальный уровень
func (l *Logger) Level() LogLevel {
	return LogLevel(l.level.Load())
}

// Component возвращает имя компонента
func (l *Logger) Component() string {
	return l.component
}

func (l *Logger) Trace(format string, args ...interface{}) { l.log(TRACE, format, args...) }
func (l *Logger) Debug(format string, args ...interface{}) { l.log(DEBUG, format, args...) }
func (l *Logger) Info(format string, args ...interface{}) { l.log(INFO, format, args...) }
func (l *Logger) Warn(format string, args ...interface{}) { l.log(WARN, format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.log(ERROR, format, args...) }

// Vector логирует именованный вектор на уровне TRACE
func (l *Logger) Vector(name string, v fmt.Stringer) {
	if TRACE < l.Level() {
		return
	}
	l.sugar.Debugw("vector", "trace", true, "name", name, zap.Stringer("value", v))
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	if level < l.Level() {
		return
	}

	msg := fmt.Sprintf(format, args...)
	switch level {
	case TRACE:
		l.sugar.Debugw(msg, "trace", true)
	case DEBUG:
		l.sugar.Debug(msg)
	case INFO:
		l.sugar.Info(msg)
	case WARN:
		l.sugar.Warn(msg)
	default:
		l.sugar.Error(msg)
	}
}

// Close сбрасывает буферы и закрывает файл логов
func (l *Logger) Close() error {
	_ = l.sugar.Sync()
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

// Глобальный экземпляр логгера
var (
	globalMu     sync.RWMutex
	globalLogger *Logger
)

// InitLogger инициализирует глобальный логгер
func InitLogger(cfg config.LogConfig) error {
	logger, err := NewLogger("vecmath", cfg, zapcore.Lock(os.Stdout))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	globalMu.Lock()
	prev := globalLogger
	globalLogger = logger
	globalMu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}
	return nil
}

// CloseLogger закрывает глобальный логгер
func CloseLogger() {
	globalMu.Lock()
	logger := globalLogger
	globalLogger = nil
	globalMu.Unlock()

	if logger != nil {
		_ = logger.Close()
	}
}

func global() *Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// LogTrace логирует сообщение уровня TRACE
func LogTrace(format string, args ...interface{}) {
	logMessage(TRACE, format, args...)
}

// LogDebug логирует сообщение уровня DEBUG
func LogDebug(format string, args ...interface{}) {
	logMessage(DEBUG, format, args...)
}

// LogInfo логирует сообщение уровня INFO
func LogInfo(format string, args ...interface{}) {
	logMessage(INFO, format, args...)
}

// LogWarn логирует сообщение уровня WARN
func LogWarn(format string, args ...interface{}) {
	logMessage(WARN, format, args...)
}

// LogError логирует сообщение уровня ERROR
func LogError(format string, args ...interface{}) {
	logMessage(ERROR, format, args...)
}

// LogVector логирует вектор через глобальный логгер
func LogVector(name string, v fmt.Stringer) {
	if logger := global(); logger != nil {
		logger.Vector(name, v)
	}
}

// logMessage внутренняя функция для логирования
func logMessage(level LogLevel, format string, args ...interface{}) {
	if logger := global(); logger != nil {
		logger.log(level, format, args...)
	}
}
