package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedCommand struct {
	Base
	label string
}

type scopedCommand struct {
	namedCommand
	namespace string
}

func (c *scopedCommand) SubcommandNamespace() string { return c.namespace }

func newNamed(label string) Factory {
	return func() Command { return &namedCommand{label: label} }
}

func label(t *testing.T, f Factory) string {
	t.Helper()
	require.NotNil(t, f)
	c, ok := f().(*namedCommand)
	require.True(t, ok)
	return c.label
}

func TestLoader(t *testing.T) {
	t.Parallel()

	t.Run("builtin help", func(t *testing.T) {
		t.Parallel()
		l := NewLoader()
		f, ok := l.Load("help")
		require.True(t, ok)
		_, isHelp := f().(*HelpCommand)
		assert.True(t, isHelp)
		assert.Equal(t, []string{BuiltinNamespace}, l.Namespaces())
	})
	t.Run("kebab name resolves type", func(t *testing.T) {
		t.Parallel()
		l := NewLoader()
		l.Register("app/command", "FooBarCommand", newNamed("foo-bar"))
		l.AddNamespace("app/command")
		f, ok := l.Load("foo-bar")
		require.True(t, ok)
		assert.Equal(t, "foo-bar", label(t, f))
	})
	t.Run("case-insensitive type match", func(t *testing.T) {
		t.Parallel()
		l := NewLoader()
		l.Register("app/command", "HTTPServerCommand", newNamed("http"))
		l.AddNamespace("app/command")
		f, ok := l.Load("httpserver")
		require.True(t, ok)
		assert.Equal(t, "http", label(t, f))
	})
	t.Run("namespaces searched in order", func(t *testing.T) {
		t.Parallel()
		l := NewLoader()
		l.Register("first", "DeployCommand", newNamed("first"))
		l.Register("second", "DeployCommand", newNamed("second"))
		l.Register("second", "BuildCommand", newNamed("build"))
		l.AddNamespace("second/", "first", "second")
		assert.Equal(t, []string{BuiltinNamespace, "second", "first"}, l.Namespaces())

		f, ok := l.Load("deploy")
		require.True(t, ok)
		assert.Equal(t, "second", label(t, f))
	})
	t.Run("registered but not searched", func(t *testing.T) {
		t.Parallel()
		l := NewLoader()
		l.Register("hidden", "SecretCommand", newNamed("secret"))
		f, ok := l.Load("secret")
		assert.False(t, ok)
		assert.Nil(t, f)
	})
	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		l := NewLoader()
		_, ok := l.Load("frobnicate")
		assert.False(t, ok)
		_, ok = l.Load("")
		assert.False(t, ok)
	})
	t.Run("subcommand relative to parent namespace", func(t *testing.T) {
		t.Parallel()
		l := NewLoader()
		l.Register("app/command", "AddCommand", newNamed("global add"))
		l.Register("app/command/tag", "AddCommand", newNamed("tag add"))
		l.AddNamespace("app/command")

		parent := &scopedCommand{namespace: "app/command/tag/"}
		f, ok := l.LoadSubcommand("add", parent)
		require.True(t, ok)
		assert.Equal(t, "tag add", label(t, f))

		_, ok = l.LoadSubcommand("help", parent)
		assert.False(t, ok, "a parent namespace restricts the search")
	})
	t.Run("subcommand falls back to global search", func(t *testing.T) {
		t.Parallel()
		l := NewLoader()
		l.Register("app/command", "AddCommand", newNamed("global add"))
		l.AddNamespace("app/command")

		f, ok := l.LoadSubcommand("add", &namedCommand{})
		require.True(t, ok)
		assert.Equal(t, "global add", label(t, f))
	})
	t.Run("lazy resolution", func(t *testing.T) {
		t.Parallel()
		var built int
		l := NewLoader()
		l.Register("app", "LazyCommand", func() Command {
			built++
			return &namedCommand{}
		})
		l.AddNamespace("app")
		f, ok := l.Load("lazy")
		require.True(t, ok)
		assert.Zero(t, built)
		f()
		assert.Equal(t, 1, built)
	})
	t.Run("names", func(t *testing.T) {
		t.Parallel()
		l := NewLoader()
		l.Register("app", "FooBarCommand", newNamed(""))
		l.Register("app", "AddCommand", newNamed(""))
		l.Register("app", "helper", newNamed(""))
		l.Register("other", "HelpCommand", newNamed(""))
		l.Register("unsearched", "GhostCommand", newNamed(""))
		l.AddNamespace("app", "other")
		assert.Equal(t, []string{"help", "add", "foo-bar"}, l.Names())
	})
}
