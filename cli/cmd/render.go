package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/cio/pkg"
	"github.com/ardnew/cio/tmpl"
)

// Render renders template sources against an environment of bindings.
//
// Sources are taken from positional arguments first, then from files named
// with --file, where "-" selects stdin. Each source is rendered as one
// template and written to the output followed by a line break.
type Render struct {
	Template []string `arg:"" help:"Template text to render" name:"template" optional:""`

	File []string `help:"Template source file(s) or '-' for stdin" name:"file" short:"f"`
	Env  string   `help:"YAML file of environment bindings"        name:"env"  short:"e" type:"existingfile"`
	Out  string   `help:"Output file (default stdout)"             name:"out"  short:"o" type:"path"`
}

// Run executes the render command.
func (r *Render) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	env, err := loadEnvironment(r.Env)
	if err != nil {
		return err
	}

	sources, err := r.sources()
	if err != nil {
		return err
	}

	if len(sources) == 0 {
		return pkg.ErrNoTemplate
	}

	out, closeOut, err := r.output()
	if err != nil {
		return err
	}
	defer closeOut()

	for _, source := range sources {
		text, err := tmpl.Render(ctx, source, env)
		if err != nil {
			return tmpl.WrapError(err).
				With(slog.String("command", "render"))
		}

		if _, err := fmt.Fprintln(out, text); err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return nil
}

// sources collects every template source to render, in order: positional
// arguments first, then file contents.
func (r *Render) sources() ([]string, error) {
	sources := make([]string, 0, len(r.Template)+len(r.File))
	sources = append(sources, r.Template...)

	for _, path := range r.File {
		text, err := readSourceFile(path)
		if err != nil {
			return nil, err
		}

		sources = append(sources, text)
	}

	return sources, nil
}

// output opens the render destination. The returned closer is a no-op for
// stdout.
func (r *Render) output() (io.Writer, func(), error) {
	if r.Out == "" || r.Out == stdinSource {
		return os.Stdout, func() {}, nil
	}

	file, err := os.Create(r.Out)
	if err != nil {
		return nil, nil, ErrWriteOutput.Wrap(err)
	}

	return file, func() { file.Close() }, nil
}
