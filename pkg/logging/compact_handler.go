package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// CompactHandler renders slog records as single console lines:
//
//	[LEVEL] HH:MM:SS message | key=value key=value
//
// Conversion progress shares the terminal with the colorized graph
// summary, so lines stay short: request IDs are cut to eight characters
// and scene paths to their base name.
type CompactHandler struct {
	level  slog.Leveler
	out    io.Writer
	mu     *sync.Mutex
	prefix string // attrs accumulated by WithAttrs, pre-rendered
}

var levelTags = map[slog.Level]string{
	slog.LevelDebug: "[DEBUG] ",
	slog.LevelInfo:  "[INFO]  ",
	slog.LevelWarn:  "[WARN]  ",
	slog.LevelError: "[ERROR] ",
}

// NewCompactHandler creates a compact console handler. A nil opts means
// INFO and above.
func NewCompactHandler(w io.Writer, opts *slog.HandlerOptions) *CompactHandler {
	h := &CompactHandler{out: w, mu: new(sync.Mutex)}
	if opts != nil {
		h.level = opts.Level
	}
	return h
}

func (h *CompactHandler) Enabled(_ context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if h.level != nil {
		min = h.level.Level()
	}
	return level >= min
}

func (h *CompactHandler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, 256)

	if tag, ok := levelTags[r.Level]; ok {
		buf = append(buf, tag...)
	} else {
		buf = append(buf, fmt.Sprintf("[%-5s] ", r.Level)...)
	}
	buf = r.Time.AppendFormat(buf, "15:04:05")
	buf = append(buf, ' ')
	buf = append(buf, r.Message...)

	first := true
	sep := func() {
		if first {
			buf = append(buf, " |"...)
			first = false
		}
		buf = append(buf, ' ')
	}
	if h.prefix != "" {
		sep()
		buf = append(buf, h.prefix...)
	}
	r.Attrs(func(a slog.Attr) bool {
		if a.Equal(slog.Attr{}) {
			return true
		}
		sep()
		buf = appendAttr(buf, a)
		return true
	})
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf)
	return err
}

// appendAttr renders one key=value pair, shortening the keys this tool
// logs on every conversion.
func appendAttr(buf []byte, a slog.Attr) []byte {
	v := a.Value.Resolve()

	switch a.Key {
	case "requestID":
		if s := v.String(); len(s) > 8 {
			buf = append(buf, "req="...)
			return append(buf, s[:8]...)
		}
	case "scene", "path":
		if s := v.String(); s != "" {
			buf = append(buf, a.Key...)
			buf = append(buf, '=')
			return append(buf, filepath.Base(s)...)
		}
	case "durationMs":
		buf = append(buf, "duration="...)
		buf = append(buf, v.String()...)
		return append(buf, "ms"...)
	}

	buf = append(buf, a.Key...)
	buf = append(buf, '=')
	return appendValue(buf, v)
}

func appendValue(buf []byte, v slog.Value) []byte {
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if strings.ContainsAny(s, " \t\n\"=") {
			return strconv.AppendQuote(buf, s)
		}
		return append(buf, s...)
	case slog.KindInt64:
		return strconv.AppendInt(buf, v.Int64(), 10)
	case slog.KindUint64:
		return strconv.AppendUint(buf, v.Uint64(), 10)
	case slog.KindFloat64:
		return strconv.AppendFloat(buf, v.Float64(), 'g', -1, 64)
	case slog.KindBool:
		return strconv.AppendBool(buf, v.Bool())
	case slog.KindDuration:
		return append(buf, v.Duration().String()...)
	case slog.KindTime:
		return v.Time().AppendFormat(buf, time.RFC3339)
	default:
		return fmt.Appendf(buf, "%v", v.Any())
	}
}

// WithAttrs folds attrs into a pre-rendered prefix shared by every
// record the derived handler emits. The output writer and its lock stay
// shared with the parent.
func (h *CompactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	buf := []byte(h.prefix)
	for _, a := range attrs {
		if a.Equal(slog.Attr{}) {
			continue
		}
		if len(buf) > 0 {
			buf = append(buf, ' ')
		}
		buf = appendAttr(buf, a)
	}
	h2 := *h
	h2.prefix = string(buf)
	return &h2
}

// WithGroup is accepted but flattened; the converter's log calls never
// open groups.
func (h *CompactHandler) WithGroup(string) slog.Handler { return h }
