// Package dispatch provides a command dispatch engine for building command-line applications with
// arbitrarily deep subcommand nesting.
//
// A single [ContinuousParser] walks the argument vector once. Options are parsed against the spec
// collection of the command level that is active when they are encountered, and the parser is
// re-armed with a fresh collection every time a token descends into a subcommand. Commands are
// resolved lazily, first from the parent's own registrations and then through a [Loader], which
// maps invocation names such as "foo-bar" to registered types such as "FooBarCommand".
//
// The [Application] is the root of every dispatch. Embed [Base] in a struct to write a command
// and override the lifecycle hooks it needs.
package dispatch
