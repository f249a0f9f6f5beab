package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles used for colorized pretty printing.
//
//nolint:gochecknoglobals
var (
	styleKey      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleString   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleNumber   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleTrue     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleFalse    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleTime     = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	styleDuration = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	styleNull     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	styleLevelError = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleLevelWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleLevelInfo  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleLevelTrace = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

func levelStyle(level slog.Level) lipgloss.Style {
	switch {
	case level >= slog.LevelError:
		return styleLevelError
	case level >= slog.LevelWarn:
		return styleLevelWarn
	case level >= slog.LevelInfo:
		return styleLevelInfo
	default:
		return styleLevelTrace
	}
}

// prettyTextHandler implements a colorized text handler for log messages.
type prettyTextHandler struct {
	opts  slog.HandlerOptions
	mu    *sync.Mutex
	w     io.Writer
	attrs []slog.Attr
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

// replace applies the configured ReplaceAttr function, if any.
func (h *prettyTextHandler) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(nil, a)
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	// Write time if configured
	if !r.Time.IsZero() {
		if a := h.replace(slog.Time(slog.TimeKey, r.Time)); !a.Equal(
			slog.Attr{},
		) {
			h.writeAttr(buf, a)
		}
	}

	// Write level with its own color, bypassing ReplaceAttr so the style
	// can be chosen from the numeric level
	h.writeKey(buf, slog.LevelKey)
	buf.WriteString(
		levelStyle(r.Level).Render(h.levelLabel(r.Level)),
	)

	// Write source if configured
	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			sourceStr := fmt.Sprintf("%s:%d", src.File, src.Line)
			h.writeAttr(buf, slog.String(slog.SourceKey, sourceStr))
		}
	}

	// Write message
	h.writeAttr(buf, slog.String(slog.MessageKey, r.Message))

	// Write handler attributes followed by record attributes
	for _, a := range h.attrs {
		h.writeAttr(buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, a)

		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())
	if err != nil {
		return err
	}

	_, err = h.w.Write([]byte("\n"))

	return err
}

// levelLabel returns the display string for a level, consulting ReplaceAttr
// so the custom "TRACE" label applies.
func (h *prettyTextHandler) levelLabel(level slog.Level) string {
	a := h.replace(slog.Any(slog.LevelKey, level))
	if a.Equal(slog.Attr{}) {
		return level.String()
	}

	return a.Value.String()
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyTextHandler{
		opts:  h.opts,
		mu:    h.mu,
		w:     h.w,
		attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
	}
}

func (h *prettyTextHandler) WithGroup(string) slog.Handler {
	// Groups are not rendered distinctly in pretty output
	return h
}

func (h *prettyTextHandler) writeKey(buf *bytes.Buffer, key string) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(styleKey.Render(key))
	buf.WriteByte('=')
}

func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	h.writeKey(buf, a.Key)
	writeValue(buf, a.Value)
}

func writeValue(buf *bytes.Buffer, v slog.Value) {
	switch v.Kind() {
	case slog.KindString:
		// String values without quotes
		buf.WriteString(styleString.Render(v.String()))

	case slog.KindInt64:
		buf.WriteString(styleNumber.Render(strconv.FormatInt(v.Int64(), 10)))

	case slog.KindUint64:
		buf.WriteString(styleNumber.Render(strconv.FormatUint(v.Uint64(), 10)))

	case slog.KindFloat64:
		buf.WriteString(styleNumber.Render(
			strconv.FormatFloat(v.Float64(), 'g', -1, 64),
		))

	case slog.KindBool:
		if v.Bool() {
			buf.WriteString(styleTrue.Render("true"))
		} else {
			buf.WriteString(styleFalse.Render("false"))
		}

	case slog.KindDuration:
		buf.WriteString(styleDuration.Render(v.Duration().String()))

	case slog.KindTime:
		buf.WriteString(styleTime.Render(v.Time().String()))

	default:
		if v.Kind() == slog.KindAny && v.Any() == nil {
			buf.WriteString(styleNull.Render("null"))

			return
		}

		// Fallback for group, any, and resolved values
		buf.WriteString(styleString.Render(v.String()))
	}
}

// prettyJSONHandler implements a pretty-printed JSON handler for log messages.
type prettyJSONHandler struct {
	opts  slog.HandlerOptions
	mu    *sync.Mutex
	w     io.Writer
	attrs []slog.Attr
}

func newPrettyJSONHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyJSONHandler {
	return &prettyJSONHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

func (h *prettyJSONHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyJSONHandler) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(nil, a)
}

func (h *prettyJSONHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	buf.WriteString("{\n")

	first := true

	if !r.Time.IsZero() {
		if a := h.replace(slog.Time(slog.TimeKey, r.Time)); !a.Equal(
			slog.Attr{},
		) {
			h.writeJSONAttr(buf, a, &first)
		}
	}

	h.writeJSONAttr(buf, h.replace(slog.Any(slog.LevelKey, r.Level)), &first)

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			sourceStr := fmt.Sprintf("%s:%d", src.File, src.Line)
			h.writeJSONAttr(
				buf, slog.String(slog.SourceKey, sourceStr), &first,
			)
		}
	}

	h.writeJSONAttr(buf, slog.String(slog.MessageKey, r.Message), &first)

	for _, a := range h.attrs {
		h.writeJSONAttr(buf, a, &first)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeJSONAttr(buf, a, &first)

		return true
	})

	buf.WriteString("\n}")

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())
	if err != nil {
		return err
	}

	_, err = h.w.Write([]byte("\n"))

	return err
}

func (h *prettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyJSONHandler{
		opts:  h.opts,
		mu:    h.mu,
		w:     h.w,
		attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
	}
}

func (h *prettyJSONHandler) WithGroup(string) slog.Handler {
	return h
}

func (h *prettyJSONHandler) writeJSONAttr(
	buf *bytes.Buffer,
	a slog.Attr,
	first *bool,
) {
	if !*first {
		buf.WriteString(",\n")
	}

	*first = false

	buf.WriteString("  ")
	buf.WriteString(styleKey.Render(a.Key))
	buf.WriteString(": ")
	writeValue(buf, a.Value)
}
