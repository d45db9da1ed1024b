package dispatch

import (
	"context"
	"errors"
	"fmt"
)

// HelpCommand prints usage information. Without arguments it describes the application, otherwise
// the arguments are walked as a command path, e.g. "help tag add".
type HelpCommand struct {
	Base
}

var _ Describer = (*HelpCommand)(nil)

// Brief returns the one-line description shown in the command list.
func (h *HelpCommand) Brief() string {
	return "show help for the application or a command"
}

// Execute prints the usage of the command named by args, or of the application without args.
func (h *HelpCommand) Execute(ctx context.Context, args []string) error {
	app := h.Application()
	if app == nil {
		return errors.New("help: command is not attached to an application")
	}
	target := Command(app)
	for _, name := range args {
		next, err := app.inspect(target, name)
		if err != nil {
			return fmt.Errorf("help: %w", err)
		}
		target = next
	}
	_, err := fmt.Fprintln(app.stdout(), app.usage(target))
	return err
}

// inspect constructs the subcommand name of owner and declares its options and subcommands so its
// usage can be rendered. The command is never prepared or executed.
func (a *Application) inspect(owner Command, name string) (Command, error) {
	b := owner.base()
	if !b.HasCommand(name) {
		return nil, &CommandNotFoundError{
			Name:        name,
			Suggestions: suggestFor(name, b.CommandList()),
		}
	}
	f, err := a.resolve(name, owner)
	if err != nil {
		return nil, err
	}
	c := f()
	if c == nil {
		return nil, &CommandNotFoundError{Name: name}
	}
	c.base().attach(name, owner, a, a.commandLoader())
	declare(c)
	return c, nil
}

// brief returns the description of the subcommand name of owner without declaring it.
func (a *Application) brief(owner Command, name string) string {
	f, err := a.resolve(name, owner)
	if err != nil {
		return ""
	}
	if d, ok := f().(Describer); ok {
		return d.Brief()
	}
	return ""
}
