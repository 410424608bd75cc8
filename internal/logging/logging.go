package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Log is the process log handle: a slog.Logger bound to an append-mode
// file, with an explicit Close released by the driver on exit.
type Log struct {
	*slog.Logger
	file *os.File
}

// Open builds the process log. An empty path keeps output on stderr.
// If the file cannot be opened the logger falls back to stderr rather
// than failing, so startup problems are still reported somewhere.
func Open(path, level string) *Log {
	var w io.Writer = os.Stderr
	var file *os.File
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			w = f
			file = f
		}
	}

	var lvl slog.Level
	switch strings.ToUpper(level) {
	case "DEBUG":
		lvl = slog.LevelDebug
	case "INFO":
		lvl = slog.LevelInfo
	case "WARN":
		lvl = slog.LevelWarn
	case "ERROR":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return &Log{
		Logger: slog.New(&lineHandler{w: w, level: lvl, mu: &sync.Mutex{}}),
		file:   file,
	}
}

// Close flushes and releases the underlying file, if any.
func (l *Log) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// lineHandler writes "<timestamp> - <LEVEL> - <message>" lines, with
// record attributes folded onto the message tail as key=value pairs.
type lineHandler struct {
	w     io.Writer
	level slog.Level
	attrs []slog.Attr
	mu    *sync.Mutex
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Time.Format("2006-01-02 15:04:05,000"))
	sb.WriteString(" - ")
	sb.WriteString(r.Level.String())
	sb.WriteString(" - ")
	sb.WriteString(r.Message)
	for _, a := range h.attrs {
		fmt.Fprintf(&sb, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&sb, " %s=%v", a.Key, a.Value)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &lineHandler{w: h.w, level: h.level, attrs: merged, mu: h.mu}
}

func (h *lineHandler) WithGroup(string) slog.Handler {
	return h
}
