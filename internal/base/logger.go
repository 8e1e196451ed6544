// Package base
package base

import (
	"context"
	"fmt"
	"github.com/fatih/color"
	"github.com/half-nothing/simple-hrm/internal/interfaces/global"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

type Logger struct {
	logger    *slog.Logger
	level     *slog.LevelVar
	file      *os.File
	mu        sync.Mutex
	console   io.Writer
	writeFile bool
}

func NewLogger() *Logger {
	return NewLoggerWithWriter(os.Stdout, true)
}

// NewLoggerWithWriter logs to console only when writeFile is false
func NewLoggerWithWriter(console io.Writer, writeFile bool) *Logger {
	return &Logger{
		level:     &slog.LevelVar{},
		console:   console,
		writeFile: writeFile,
	}
}

// Init builds the console and file handlers; the file handler is skipped when the log directory is not writable
func (l *Logger) Init(debug bool) {
	if debug {
		l.level.Set(slog.LevelDebug)
	} else {
		l.level.Set(slog.LevelInfo)
	}

	handlers := []slog.Handler{newConsoleHandler(l.console, l.level)}

	if !l.writeFile {
		l.logger = slog.New(handlers[0])
		slog.SetDefault(l.logger)
		return
	}

	if err := os.MkdirAll(global.LogDirectory, global.DefaultDirectoryPermission); err == nil {
		name := filepath.Join(global.LogDirectory, time.Now().Format("2006-01-02")+".log")
		if file, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, global.DefaultFilePermissions); err == nil {
			l.file = file
			handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: l.level}))
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "fail to open log file %s: %v\n", name, err)
		}
	}

	l.logger = slog.New(&fanoutHandler{handlers: handlers})
	slog.SetDefault(l.logger)
}

func (l *Logger) log(level slog.Level, msg string, v ...interface{}) {
	if l.logger == nil {
		l.Init(false)
	}
	l.logger.Log(context.Background(), level, msg, v...)
}

func (l *Logger) logF(level slog.Level, msg string, v ...interface{}) {
	if l.logger == nil {
		l.Init(false)
	}
	if !l.logger.Enabled(context.Background(), level) {
		return
	}
	l.logger.Log(context.Background(), level, fmt.Sprintf(msg, v...))
}

func (l *Logger) Debug(msg string, v ...interface{})  { l.log(slog.LevelDebug, msg, v...) }
func (l *Logger) DebugF(msg string, v ...interface{}) { l.logF(slog.LevelDebug, msg, v...) }
func (l *Logger) Info(msg string, v ...interface{})   { l.log(slog.LevelInfo, msg, v...) }
func (l *Logger) InfoF(msg string, v ...interface{})  { l.logF(slog.LevelInfo, msg, v...) }
func (l *Logger) Warn(msg string, v ...interface{})   { l.log(slog.LevelWarn, msg, v...) }
func (l *Logger) WarnF(msg string, v ...interface{})  { l.logF(slog.LevelWarn, msg, v...) }
func (l *Logger) Error(msg string, v ...interface{})  { l.log(slog.LevelError, msg, v...) }
func (l *Logger) ErrorF(msg string, v ...interface{}) { l.logF(slog.LevelError, msg, v...) }

func (l *Logger) Fatal(msg string, v ...interface{}) {
	l.log(levelFatal, msg, v...)
}

func (l *Logger) FatalF(msg string, v ...interface{}) {
	l.logF(levelFatal, msg, v...)
}

func (l *Logger) ShutdownCallback() global.Callable {
	return &LoggerShutdownCallback{logger: l}
}

type LoggerShutdownCallback struct {
	logger *Logger
}

func (lc *LoggerShutdownCallback) Invoke(_ context.Context) error {
	lc.logger.mu.Lock()
	defer lc.logger.mu.Unlock()
	if lc.logger.file == nil {
		return nil
	}
	if err := lc.logger.file.Sync(); err != nil {
		return err
	}
	err := lc.logger.file.Close()
	lc.logger.file = nil
	return err
}

const levelFatal = slog.Level(12)

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgCyan),
	slog.LevelInfo:  color.New(color.FgGreen),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed),
	levelFatal:      color.New(color.FgHiRed, color.Bold),
}

func levelName(level slog.Level) string {
	if level >= levelFatal {
		return "FATAL"
	}
	return level.String()
}

// consoleHandler prints "time LEVEL message key=value" with a coloured level
type consoleHandler struct {
	out   io.Writer
	level slog.Leveler
	attrs []slog.Attr
	group string
	mu    *sync.Mutex
}

func newConsoleHandler(out io.Writer, level slog.Leveler) *consoleHandler {
	return &consoleHandler{out: out, level: level, mu: &sync.Mutex{}}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	var sb strings.Builder
	sb.WriteString(record.Time.Format("2006-01-02 15:04:05"))
	sb.WriteByte(' ')
	name := fmt.Sprintf("%-5s", levelName(record.Level))
	if c, ok := levelColors[record.Level]; ok {
		name = c.Sprint(name)
	}
	sb.WriteString(name)
	sb.WriteByte(' ')
	sb.WriteString(record.Message)
	writeAttr := func(attr slog.Attr) bool {
		if attr.Equal(slog.Attr{}) {
			return true
		}
		key := attr.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		sb.WriteString(fmt.Sprintf(" %s=%v", key, attr.Value.Resolve()))
		return true
	}
	for _, attr := range h.attrs {
		writeAttr(attr)
	}
	record.Attrs(writeAttr)
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	clone := *h
	if clone.group != "" {
		clone.group = clone.group + "." + name
	} else {
		clone.group = name
	}
	return &clone
}

type fanoutHandler struct {
	handlers []slog.Handler
}

func (f *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f *fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	for _, h := range f.handlers {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, 0, len(f.handlers))
	for _, h := range f.handlers {
		handlers = append(handlers, h.WithAttrs(attrs))
	}
	return &fanoutHandler{handlers: handlers}
}

func (f *fanoutHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, 0, len(f.handlers))
	for _, h := range f.handlers {
		handlers = append(handlers, h.WithGroup(name))
	}
	return &fanoutHandler{handlers: handlers}
}
