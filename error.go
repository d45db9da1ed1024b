package dispatch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHelpNotDefined is returned when the application is run without a subcommand and neither an
// execute function nor a help command is available.
var ErrHelpNotDefined = errors.New("help command is not defined")

// ParseError is returned when a token cannot be parsed against the option specs of the level that
// is active when it is encountered.
type ParseError struct {
	// Token is the offending command-line token, as given.
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q", e.Reason, e.Token)
}

// CommandNotFoundError is returned when a command name cannot be resolved to a command type.
type CommandNotFoundError struct {
	Name        string
	Suggestions []string
}

func (e *CommandNotFoundError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("command %q not found. Did you mean one of these?\n\t%s",
			e.Name,
			strings.Join(e.Suggestions, "\n\t"))
	}
	return fmt.Sprintf("command %q not found", e.Name)
}

// NoExecError is returned when a command without an Execute implementation is the deepest command
// of a dispatch.
type NoExecError struct {
	Name string
}

func (e *NoExecError) Error() string {
	return fmt.Sprintf("command %q has no execution function", e.Name)
}
