package logger

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// LineHandler implements slog.Handler and writes one JSON object per record:
//
//	{"severity":"INFO","message":"...","time":"...","data":{...}}
type LineHandler struct {
	level  slog.Level
	out    io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr
	groups []string
}

// NewLineHandler writes to stdout.
func NewLineHandler(level slog.Level) slog.Handler {
	return NewLineHandlerTo(os.Stdout, level)
}

// NewLineHandlerTo writes to w. CLI commands point this at stderr so that
// log lines never mix with rendered output.
func NewLineHandlerTo(w io.Writer, level slog.Level) *LineHandler {
	return &LineHandler{level: level, out: w, mu: new(sync.Mutex)}
}

func (h *LineHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level
}

func (h *LineHandler) Handle(_ context.Context, r slog.Record) error {
	event := map[string]any{
		"severity": mapSeverity(r.Level),
		"message":  r.Message,
		"time":     r.Time.Format(time.RFC3339Nano),
	}

	if len(h.attrs) > 0 || r.NumAttrs() > 0 {
		data := make(map[string]any)
		for _, a := range h.attrs {
			data[a.Key] = attrValue(a.Value)
		}

		target := data
		for _, g := range h.groups {
			next := make(map[string]any)
			target[g] = next
			target = next
		}
		r.Attrs(func(a slog.Attr) bool {
			target[a.Key] = attrValue(a.Value)
			return true
		})

		event["data"] = data
	}

	b, err := json.Marshal(event)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.out.Write(append(b, '\n'))
	return err
}

func (h *LineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

func (h *LineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.groups = append(append([]string{}, h.groups...), name)
	return &next
}

// ---- Helpers ----

func mapSeverity(level slog.Level) string {
	switch {
	case level < slog.LevelInfo:
		return "DEBUG"
	case level < slog.LevelWarn:
		return "INFO"
	case level < slog.LevelError:
		return "WARNING"
	default:
		return "ERROR"
	}
}

func attrValue(v slog.Value) any {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindGroup:
		group := make(map[string]any)
		for _, a := range v.Group() {
			group[a.Key] = attrValue(a.Value)
		}
		return group
	case slog.KindAny:
		// errors marshal to {} otherwise
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}
		return v.Any()
	default:
		return v.Any()
	}
}
