package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ardnew/cio/input"
	"github.com/ardnew/cio/log"
	"github.com/ardnew/cio/tmpl"
)

// Ask prompts on the terminal until one line of input parses as the
// requested type, then prints the accepted value.
//
// The prompt is re-displayed after every rejected line; there is no retry
// bound. With --template the accepted value is bound as "value" and the
// rendered template is printed instead of the bare value.
type Ask struct {
	Prompt string `arg:"" default:"? " help:"Prompt text" name:"prompt" optional:""`

	As       string `default:"text" enum:"int,float,bool,char,text" help:"Target type" name:"as"       short:"t"`
	Template string `               help:"Template rendered with the accepted value bound as 'value'"  name:"template"`
}

// Run executes the ask command.
func (a *Ask) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	reader := input.New(os.Stdin, input.WithLogger(log.Default()))

	value, err := a.read(reader)
	if err != nil {
		return err
	}

	log.TraceContext(ctx, "ask accepted",
		slog.String("type", a.As),
		slog.Any("value", value))

	if a.Template != "" {
		env := tmpl.NewEnvironment().Bind("value", value)

		text, err := tmpl.Render(ctx, a.Template, env)
		if err != nil {
			return tmpl.WrapError(err).
				With(slog.String("command", "ask"))
		}

		fmt.Println(text)

		return nil
	}

	fmt.Println(tmpl.Format(tmpl.ValueOf(value), tmpl.DefaultSpec()))

	return nil
}

// read runs the typed prompt loop for the requested target type.
func (a *Ask) read(reader *input.Reader) (any, error) {
	switch a.As {
	case "int":
		return reader.Int(a.Prompt)
	case "float":
		return reader.Float(a.Prompt)
	case "bool":
		return reader.Bool(a.Prompt)
	case "char":
		return reader.Char(a.Prompt)
	case "text":
		return reader.Text(a.Prompt)
	default:
		return nil, ErrUnknownType.Wrapf("%q", a.As)
	}
}
