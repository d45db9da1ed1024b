package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typeName string
		expected string
	}{
		{typeName: "FooBarCommand", expected: "foo-bar"},
		{typeName: "HelpCommand", expected: "help"},
		{typeName: "ListAllTasksCommand", expected: "list-all-tasks"},
		{typeName: "HTTPServerCommand", expected: "httpserver"},
		{typeName: "Deploy", expected: "deploy"},
		{typeName: "Command", expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, CommandName(tt.typeName))
		})
	}
}

func TestTypeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected string
	}{
		{name: "foo-bar", expected: "FooBarCommand"},
		{name: "help", expected: "HelpCommand"},
		{name: "list-all-tasks", expected: "ListAllTasksCommand"},
		{name: "FOO_bar", expected: "FooBarCommand"},
		{name: "--", expected: ""},
		{name: "", expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, TypeName(tt.name))
		})
	}
}

func TestNameRoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"foo-bar", "help", "list-all"} {
		assert.Equal(t, name, CommandName(TypeName(name)))
	}
}
