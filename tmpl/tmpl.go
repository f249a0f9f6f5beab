package tmpl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ardnew/cio/log"
)

// Template is a parsed and compiled template, safe for concurrent use.
type Template struct {
	source   string
	segments []Segment
	logger   log.Logger
}

// Option applies a configuration option to a Template.
type Option func(*Template)

// WithLogger sets the logger used for trace diagnostics during parsing
// and rendering. Templates parsed with options bypass the global cache.
func WithLogger(logger log.Logger) Option {
	return func(t *Template) {
		t.logger = logger
	}
}

// Parse tokenizes and compiles a template.
//
// Option-free parses of identical sources are served from a process-wide
// cache.
func Parse(ctx context.Context, source string, opts ...Option) (*Template, error) {
	if len(opts) == 0 {
		return parseCached(ctx, source)
	}

	return parse(ctx, source, opts...)
}

// parse builds a Template, bypassing the cache.
func parse(ctx context.Context, source string, opts ...Option) (*Template, error) {
	t := &Template{source: source}

	for _, opt := range opts {
		opt(t)
	}

	segments, err := parseSegments(source)
	if err != nil {
		return nil, err
	}

	placeholders := 0

	for i := range segments {
		if !segments[i].IsPlaceholder() {
			continue
		}

		placeholders++

		if err := compileSegment(&segments[i], t.logger); err != nil {
			return nil, err
		}
	}

	t.segments = segments

	t.logger.TraceContext(ctx, "parse template",
		slog.Int("segments", len(segments)),
		slog.Int("placeholders", placeholders))

	return t, nil
}

// Source returns the original template text.
func (t *Template) Source() string { return t.source }

// Segments returns the parsed segment list in order.
func (t *Template) Segments() []Segment { return t.segments }

// Render evaluates every placeholder against env and concatenates the
// rendered segments. A failing placeholder aborts the render with no
// partial output.
func (t *Template) Render(
	ctx context.Context,
	env *Environment,
) (string, error) {
	var b strings.Builder

	b.Grow(len(t.source))

	for i := range t.segments {
		seg := &t.segments[i]

		if !seg.IsPlaceholder() {
			b.WriteString(seg.Literal)

			continue
		}

		v, err := t.evaluate(ctx, seg, env)
		if err != nil {
			return "", err
		}

		out := Format(v, seg.Spec)

		t.logger.TraceContext(ctx, "render placeholder",
			slog.String("source", seg.Expr),
			slog.String("spec", seg.Spec.String()),
			slog.String("kind", v.Kind().String()))

		b.WriteString(out)
	}

	return b.String(), nil
}

// Render is the one-shot form: parse source and render it against env.
func Render(
	ctx context.Context,
	source string,
	env *Environment,
	opts ...Option,
) (string, error) {
	t, err := Parse(ctx, source, opts...)
	if err != nil {
		return "", err
	}

	return t.Render(ctx, env)
}
