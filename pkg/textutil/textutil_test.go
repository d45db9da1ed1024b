package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		width    int
		expected []string
	}{
		{
			name:     "simple wrap",
			text:     "hello world",
			width:    5,
			expected: []string{"hello", "world"},
		},
		{
			name:     "no wrap needed",
			text:     "hello",
			width:    10,
			expected: []string{"hello"},
		},
		{
			name:     "multiple wraps",
			text:     "this is a long text that needs wrapping",
			width:    10,
			expected: []string{"this is a", "long text", "that needs", "wrapping"},
		},
		{
			name:     "empty string",
			text:     "",
			width:    10,
			expected: nil,
		},
		{
			name:     "single word longer than width",
			text:     "supercalifragilistic",
			width:    10,
			expected: []string{"supercalifragilistic"},
		},
		{
			name:     "multiple spaces",
			text:     "hello    world",
			width:    20,
			expected: []string{"hello world"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Wrap(tt.text, tt.width), "input %q, width %d", tt.text, tt.width)
		})
	}
}

func TestColumns(t *testing.T) {
	t.Parallel()

	t.Run("aligned", func(t *testing.T) {
		t.Parallel()
		rows := []Row{
			{Left: "add", Right: "add a task"},
			{Left: "list", Right: ""},
			{Left: "done", Right: "mark a task as done"},
		}
		assert.Equal(t, []string{
			"  add     add a task",
			"  list",
			"  done    mark a task as done",
		}, Columns(rows, 2, 4, 80))
	})
	t.Run("wrapped right column", func(t *testing.T) {
		t.Parallel()
		rows := []Row{
			{Left: "-v", Right: "print verbose messages"},
		}
		assert.Equal(t, []string{
			"  -v  print",
			"      verbose",
			"      messages",
		}, Columns(rows, 2, 2, 14))
	})
}
