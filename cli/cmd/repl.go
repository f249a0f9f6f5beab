package cmd

import (
	"context"

	"github.com/ardnew/cio/cli/cmd/repl"
	"github.com/ardnew/cio/log"
	"github.com/ardnew/cio/pkg"
)

// Repl starts the interactive render loop.
type Repl struct {
	Env string `help:"YAML file of environment bindings" name:"env" short:"e" type:"existingfile"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	env, err := loadEnvironment(r.Env)
	if err != nil {
		return err
	}

	return repl.Run(ctx, env, pkg.CacheDir(), log.Default())
}
