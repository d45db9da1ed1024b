package dispatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
)

// Application is the root node of every dispatch. Configure it with a struct literal:
//
//	app := &dispatch.Application{
//	    Name:   "todo",
//	    Loader: loader,
//	    OptionsFunc: func(specs *dispatch.OptionSpecCollection) {
//	        specs.Add("f|file:", "path to the todo file")
//	    },
//	    InitFunc: func(app *dispatch.Application) {
//	        app.AddCommand("add", "list")
//	    },
//	}
//	err := app.Run(ctx, os.Args[1:])
//
// The application always declares the -v|--verbose and -d|--debug options and registers the
// "help" command.
type Application struct {
	Base

	// Name is the program name used in help output.
	Name      string
	Version   string
	ShortHelp string

	// OptionsFunc declares additional application options.
	OptionsFunc func(specs *OptionSpecCollection)
	// InitFunc registers the top-level commands. It runs after "help" is registered, so it may
	// replace it.
	InitFunc func(app *Application)
	// PrepareFunc runs after the application options are parsed.
	PrepareFunc func(app *Application) error
	// ExecuteFunc runs when no subcommand is given. If nil the "help" command runs instead.
	ExecuteFunc func(ctx context.Context, app *Application, args []string) error
	// FinishFunc runs once at the very end of every dispatch that got past PrepareFunc.
	FinishFunc func(app *Application) error

	// Standard I/O streams. Nil streams default to [os.Stdin], [os.Stdout] and [os.Stderr].
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// Loader resolves command names that have no factory registered on their parent. If nil,
	// [NewLoader] is used.
	Loader *Loader
	// Config holds settings applied during prepare. If nil, [DefaultConfig] is used.
	Config *Config

	logger    *slog.Logger
	level     *slog.LevelVar
	formatter *Formatter
	stack     []Command
}

var (
	_ Command   = (*Application)(nil)
	_ Describer = (*Application)(nil)
)

// Options declares the application options.
func (a *Application) Options(specs *OptionSpecCollection) {
	specs.Add("v|verbose", "print verbose messages")
	specs.Add("d|debug", "print debug messages")
	if a.OptionsFunc != nil {
		a.OptionsFunc(specs)
	}
}

// Init registers the "help" command and then runs InitFunc.
func (a *Application) Init() {
	a.RegisterCommand("help", func() Command { return &HelpCommand{} })
	if a.InitFunc != nil {
		a.InitFunc(a)
	}
}

// Prepare applies the config and the verbosity options to the logger, then runs PrepareFunc.
func (a *Application) Prepare() error {
	cfg := a.config()
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	opts := a.ParsedOptions()
	switch {
	case opts.Bool("debug"):
		level = slog.LevelDebug
	case opts.Bool("verbose"):
		level = min(level, slog.LevelInfo)
	}
	a.Logger()
	a.level.Set(level)
	if a.PrepareFunc != nil {
		return a.PrepareFunc(a)
	}
	return nil
}

// Execute runs when no subcommand was dispatched. It calls ExecuteFunc if set, and otherwise
// delegates to the "help" command.
func (a *Application) Execute(ctx context.Context, args []string) error {
	if a.ExecuteFunc != nil {
		return a.ExecuteFunc(ctx, a, args)
	}
	if !a.HasCommand("help") {
		return ErrHelpNotDefined
	}
	f, err := a.resolve("help", a)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHelpNotDefined, err)
	}
	help := f()
	help.base().attach("help", a, a, a.commandLoader())
	help.base().args = slices.Clone(args)
	return help.Execute(ctx, args)
}

// Finish runs FinishFunc.
func (a *Application) Finish() error {
	if a.FinishFunc != nil {
		return a.FinishFunc(a)
	}
	return nil
}

// Brief returns ShortHelp.
func (a *Application) Brief() string {
	return a.ShortHelp
}

// Logger returns the application logger. It writes text records to Stderr and its level is set
// during prepare from the config and the --verbose and --debug options.
func (a *Application) Logger() *slog.Logger {
	if a.logger == nil {
		a.level = new(slog.LevelVar)
		a.level.Set(slog.LevelWarn)
		a.logger = slog.New(slog.NewTextHandler(a.stderr(), &slog.HandlerOptions{Level: a.level}))
	}
	return a.logger
}

// SetLogger replaces the application logger. Its level is no longer controlled by the
// application.
func (a *Application) SetLogger(logger *slog.Logger) {
	a.logger = logger
	a.level = new(slog.LevelVar)
}

// Formatter returns the text formatter for Stdout.
func (a *Application) Formatter() *Formatter {
	if a.formatter == nil {
		a.formatter = NewFormatter(a.stdout(), a.config().NoColor)
	}
	return a.formatter
}

// Stack returns the commands resolved by the last dispatch, from the root down. The application
// itself is not included.
func (a *Application) Stack() []Command {
	return slices.Clone(a.stack)
}

func (a *Application) config() *Config {
	if a.Config == nil {
		a.Config = DefaultConfig()
	}
	return a.Config
}

func (a *Application) commandLoader() *Loader {
	if a.Loader == nil {
		a.Loader = NewLoader()
	}
	return a.Loader
}

func (a *Application) setStreams() {
	if a.Stdin == nil {
		a.Stdin = os.Stdin
	}
	a.stdout()
	a.stderr()
}

func (a *Application) stdout() io.Writer {
	if a.Stdout == nil {
		a.Stdout = os.Stdout
	}
	return a.Stdout
}

func (a *Application) stderr() io.Writer {
	if a.Stderr == nil {
		a.Stderr = os.Stderr
	}
	return a.Stderr
}

// resolve finds the factory for a subcommand name of owner: the factory owner registered for it,
// then the loader, relative to owner unless owner is the application.
func (a *Application) resolve(name string, owner Command) (Factory, error) {
	if f := owner.base().CommandFactory(name); f != nil {
		return f, nil
	}
	loader := a.commandLoader()
	var (
		f  Factory
		ok bool
	)
	if owner == Command(a) {
		f, ok = loader.Load(name)
	} else {
		f, ok = loader.LoadSubcommand(name, owner)
	}
	if !ok {
		return nil, &CommandNotFoundError{
			Name:        name,
			Suggestions: suggestFor(name, loader.Names()),
		}
	}
	return f, nil
}
