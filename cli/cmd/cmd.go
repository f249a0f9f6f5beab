package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"github.com/klauspost/readahead"

	"github.com/ardnew/cio/pkg"
	"github.com/ardnew/cio/tmpl"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// readSource reads one template source in full.
//
// The reader is wrapped with async read-ahead so data is pre-fetched
// while previous chunks are consumed.
func readSource(r io.Reader) (string, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return "", pkg.ErrReadSource.Wrap(err)
	}

	return string(data), nil
}

// readSourceFile reads the template source at path, or stdin for "-".
func readSourceFile(path string) (string, error) {
	if path == stdinSource {
		return readSource(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return "", pkg.ErrReadSource.Wrap(err)
	}
	defer file.Close()

	return readSource(file)
}

// loadEnvironment decodes the YAML file at path into an ordered template
// environment. Top-level key order in the file is the binding order.
// An empty path yields an empty environment.
func loadEnvironment(path string) (*tmpl.Environment, error) {
	env := tmpl.NewEnvironment()

	if path == "" {
		return env, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkg.ErrReadEnvFile.Wrap(err)
	}

	var bindings yaml.MapSlice

	if err := yaml.Unmarshal(data, &bindings); err != nil {
		return nil, pkg.ErrDecodeEnvFile.Wrap(err)
	}

	return env.BindMapSlice(bindings), nil
}
