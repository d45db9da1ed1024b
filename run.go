package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/mfridman/dispatch/pkg/suggest"
)

// Run dispatches args, typically os.Args[1:].
//
// The arguments are consumed in a single left-to-right pass by one [ContinuousParser]. Options
// before the first subcommand belong to the application. Every token that names a subcommand of
// the current command descends into it: the new command declares its options, the parser is
// re-armed with them and resumes exactly where it stopped. Tokens that are neither options nor
// subcommand names are collected as positional arguments and passed to the deepest command's
// Execute. Finally Finish runs on every command from the deepest to the root, the application
// last.
//
// When dispatch fails after the application was prepared, Finish still runs for every command
// that reached the prepared state and the Finish errors are joined with the dispatch error. The
// command that failed is not finished.
func (a *Application) Run(ctx context.Context, args []string) error {
	if a.Name == "" {
		return errors.New("application has no name")
	}
	a.reset()
	a.setStreams()
	a.Base.attach(a.Name, nil, a, a.commandLoader())

	parser := NewContinuousParser()
	parser.SetSpecs(declare(a))
	opts, err := parser.Parse(args)
	if err != nil {
		return fmt.Errorf("%s: %w", a.Name, err)
	}
	a.Base.options = opts
	if err := a.Prepare(); err != nil {
		return fmt.Errorf("%s: prepare: %w", a.Name, err)
	}
	a.Base.state = StatePrepared

	err = a.dispatch(ctx, parser)
	return a.finish(err)
}

func (a *Application) dispatch(ctx context.Context, parser *ContinuousParser) error {
	logger := a.Logger()
	var (
		current Command = a
		args    []string
	)
	for !parser.IsEnd() {
		if err := ctx.Err(); err != nil {
			return err
		}
		tok := parser.Current()
		if parser.Terminated() || !current.base().HasCommand(tok) {
			args = append(args, parser.Advance())
			continue
		}
		parser.Advance()

		f, err := a.resolve(tok, current)
		if err != nil {
			return err
		}
		next := f()
		if next == nil {
			return &CommandNotFoundError{Name: tok}
		}
		next.base().attach(tok, current, a, a.commandLoader())
		path := a.commandPath(next)

		parser.SetSpecs(declare(next))
		opts, err := parser.ContinueParse()
		if err != nil {
			return fmt.Errorf("command %q: %w", path, err)
		}
		next.base().options = opts
		if err := next.Prepare(); err != nil {
			return fmt.Errorf("command %q: prepare: %w", path, err)
		}
		next.base().state = StatePrepared
		a.stack = append(a.stack, next)
		current = next

		logger.Debug("resolved command",
			slog.String("command", path),
			slog.Int("depth", len(a.stack)),
			slog.Any("options", opts.Names()),
		)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	b := current.base()
	b.args = args
	logger.Debug("executing command",
		slog.String("command", a.commandPath(current)),
		slog.Any("args", args),
	)
	err := current.Execute(ctx, slices.Clone(args))
	b.state = StateExecuted
	return err
}

// finish runs Finish on every prepared command, deepest first, and the application last.
func (a *Application) finish(err error) error {
	var errs []error
	for i := len(a.stack) - 1; i >= 0; i-- {
		c := a.stack[i]
		if ferr := c.Finish(); ferr != nil {
			errs = append(errs, fmt.Errorf("command %q: finish: %w", a.commandPath(c), ferr))
		}
		c.base().state = StateFinished
	}
	if ferr := a.Finish(); ferr != nil {
		errs = append(errs, fmt.Errorf("%s: finish: %w", a.Name, ferr))
	}
	a.Base.state = StateFinished
	if len(errs) == 0 {
		return err
	}
	return errors.Join(append([]error{err}, errs...)...)
}

// reset clears the state of a previous dispatch so an application can be run more than once.
func (a *Application) reset() {
	a.Base.name = ""
	a.Base.specs = nil
	a.Base.options = nil
	a.Base.args = nil
	a.Base.commands = nil
	a.Base.order = nil
	a.Base.state = StateConstructed
	a.stack = nil
}

// commandPath returns the space-separated names from the application down to c.
func (a *Application) commandPath(c Command) string {
	var names []string
	for n := c; n != nil; n = n.base().parent {
		if n == Command(a) {
			names = append(names, a.Name)
			break
		}
		names = append(names, n.base().Name())
	}
	slices.Reverse(names)
	return strings.Join(names, " ")
}

func suggestFor(name string, candidates []string) []string {
	candidates = slices.DeleteFunc(slices.Clone(candidates), func(c string) bool {
		return c == name
	})
	return suggest.FindSimilar(name, candidates, 3)
}
