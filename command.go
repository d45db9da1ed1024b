package dispatch

import (
	"context"
	"log/slog"
	"os"
	"slices"
)

// Command is a node in the command hierarchy. Implementations embed [Base], which provides every
// hook except Execute as a no-op, and override the hooks they need.
//
// During a dispatch the hooks run in this order, each at most once:
//
//  1. Options registers the options recognized at this level.
//  2. Init registers the names of the subcommands valid below this level.
//  3. Prepare runs after this level's options are parsed, before descending further.
//  4. Execute runs only on the deepest resolved command.
//  5. Finish runs on every prepared command, from the deepest to the root.
type Command interface {
	Options(specs *OptionSpecCollection)
	Init()
	Prepare() error
	Execute(ctx context.Context, args []string) error
	Finish() error

	base() *Base
}

// Factory creates a new, unwired command. Factories are registered instead of instances so that a
// command is only constructed when its name is actually dispatched.
type Factory func() Command

// Describer is implemented by commands that provide a one-line description for help output.
type Describer interface {
	Brief() string
}

// SubcommandNamespacer is implemented by commands whose subcommands are registered in their own
// loader namespace. See [Loader.LoadSubcommand].
type SubcommandNamespacer interface {
	SubcommandNamespace() string
}

// Base holds the state every command node shares. It is meant to be embedded.
type Base struct {
	name   string
	alias  string
	app    *Application
	parent Command
	loader *Loader

	specs   *OptionSpecCollection
	options *Options
	args    []string

	commands map[string]Factory
	order    []string

	state LifecycleState
}

var _ Command = (*Base)(nil)

func (b *Base) base() *Base { return b }

// Options is a no-op. Override it to declare options.
func (b *Base) Options(*OptionSpecCollection) {}

// Init is a no-op. Override it to register subcommands with [Base.RegisterCommand] or
// [Base.AddCommand].
func (b *Base) Init() {}

// Prepare is a no-op.
func (b *Base) Prepare() error { return nil }

// Execute returns a [NoExecError].
func (b *Base) Execute(context.Context, []string) error {
	return &NoExecError{Name: b.name}
}

// Finish is a no-op.
func (b *Base) Finish() error { return nil }

// Name returns the invocation name of the command. Unless set explicitly with [Base.SetName] it is
// the token the command was dispatched from.
func (b *Base) Name() string { return b.name }

// SetName overrides the invocation name.
func (b *Base) SetName(name string) { b.name = name }

// Alias returns the alias of the command, if any.
func (b *Base) Alias() string { return b.alias }

// SetAlias sets an alternative name shown in help output.
func (b *Base) SetAlias(alias string) { b.alias = alias }

// Parent returns the command this one was dispatched from. It is the application for top-level
// commands and nil for the application itself.
func (b *Base) Parent() Command { return b.parent }

// State returns the lifecycle state of the command.
func (b *Base) State() LifecycleState { return b.state }

// Application returns the owning application. If none was injected it walks up the parent chain
// once and returns the first application found, or nil.
func (b *Base) Application() *Application {
	if b.app != nil {
		return b.app
	}
	for p := b.parent; p != nil; p = p.base().parent {
		if app, ok := p.(*Application); ok {
			return app
		}
		if app := p.base().app; app != nil {
			return app
		}
	}
	return nil
}

// Logger returns the logger of the owning application, or [slog.Default] if the command is not
// attached to one.
func (b *Base) Logger() *slog.Logger {
	if app := b.Application(); app != nil {
		return app.Logger()
	}
	return slog.Default()
}

// Formatter returns the text formatter of the owning application. A command that is not attached
// to an application gets a formatter writing plain text to stdout.
func (b *Base) Formatter() *Formatter {
	if app := b.Application(); app != nil {
		return app.Formatter()
	}
	return NewFormatter(os.Stdout, true)
}

// OptionSpecs returns the option specs declared at this level. Nil before the command reached the
// options-declared state.
func (b *Base) OptionSpecs() *OptionSpecCollection { return b.specs }

// ParsedOptions returns the options parsed at this level.
func (b *Base) ParsedOptions() *Options {
	if b.options == nil {
		return newOptions(b.specs)
	}
	return b.options
}

// Args returns the positional arguments the command was executed with.
func (b *Base) Args() []string { return slices.Clone(b.args) }

// RegisterCommand registers a subcommand name with the factory that creates it. Registering a
// name twice replaces the factory.
func (b *Base) RegisterCommand(name string, f Factory) {
	if b.commands == nil {
		b.commands = make(map[string]Factory)
	}
	if _, ok := b.commands[name]; !ok {
		b.order = append(b.order, name)
	}
	b.commands[name] = f
}

// AddCommand registers subcommand names whose types are resolved by the [Loader] when dispatched.
func (b *Base) AddCommand(names ...string) {
	for _, name := range names {
		if _, ok := b.commands[name]; ok {
			continue
		}
		b.RegisterCommand(name, nil)
	}
}

// CommandList returns the registered subcommand names in registration order.
func (b *Base) CommandList() []string { return slices.Clone(b.order) }

// HasCommand reports whether name is a registered subcommand name.
func (b *Base) HasCommand(name string) bool {
	_, ok := b.commands[name]
	return ok
}

// CommandFactory returns the factory registered for name. It returns nil for unknown names and
// for names added with [Base.AddCommand].
func (b *Base) CommandFactory(name string) Factory {
	return b.commands[name]
}

// attach wires a freshly constructed node below parent.
func (b *Base) attach(name string, parent Command, app *Application, loader *Loader) {
	if b.name == "" {
		b.name = name
	}
	b.parent = parent
	b.app = app
	b.loader = loader
}

// declare runs the options and init hooks of c into a fresh spec collection.
func declare(c Command) *OptionSpecCollection {
	b := c.base()
	specs := NewOptionSpecCollection()
	c.Options(specs)
	b.specs = specs
	b.state = StateOptionsDeclared
	c.Init()
	b.state = StateInitialized
	return specs
}
