package dispatch

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mfridman/dispatch/pkg/textutil"
)

const usageWidth = 80

// usage renders the help text of c, which is either the application or a command constructed by
// [Application.inspect].
func (a *Application) usage(c Command) string {
	var b strings.Builder
	f := a.Formatter()
	node := c.base()
	path := a.commandPath(c)

	if d, ok := c.(Describer); ok && d.Brief() != "" {
		for _, line := range textutil.Wrap(d.Brief(), usageWidth) {
			b.WriteString(line)
			b.WriteRune('\n')
		}
		b.WriteRune('\n')
	}

	b.WriteString(f.Format("Usage:", "heading"))
	b.WriteString("\n  ")
	b.WriteString(path)
	if node.specs != nil && node.specs.Len() > 0 {
		b.WriteString(" [options]")
	}
	if len(node.order) > 0 {
		b.WriteString(" <command>")
	}
	b.WriteString(" [arguments]\n")
	if node.alias != "" {
		fmt.Fprintf(&b, "\nAlias: %s\n", node.alias)
	}
	b.WriteRune('\n')

	if len(node.order) > 0 {
		names := slices.Clone(node.order)
		slices.Sort(names)
		rows := make([]textutil.Row, 0, len(names))
		for _, name := range names {
			rows = append(rows, textutil.Row{Left: name, Right: a.brief(c, name)})
		}
		b.WriteString(f.Format("Available Commands:", "heading"))
		b.WriteRune('\n')
		for _, line := range textutil.Columns(rows, 2, 4, usageWidth) {
			b.WriteString(line)
			b.WriteRune('\n')
		}
		b.WriteRune('\n')
	}

	if node.specs != nil && node.specs.Len() > 0 {
		specs := node.specs.Specs()
		rows := make([]textutil.Row, 0, len(specs))
		for _, s := range specs {
			rows = append(rows, textutil.Row{Left: s.String(), Right: s.Usage})
		}
		b.WriteString(f.Format("Options:", "heading"))
		b.WriteRune('\n')
		for _, line := range textutil.Columns(rows, 2, 4, usageWidth) {
			b.WriteString(line)
			b.WriteRune('\n')
		}
		b.WriteRune('\n')
	}

	if len(node.order) > 0 {
		hint := a.Name + " help"
		if sub := strings.TrimSpace(strings.TrimPrefix(path, a.Name)); sub != "" {
			hint += " " + sub
		}
		fmt.Fprintf(&b, "Use \"%s <command>\" for more information about a command.\n", hint)
	}
	return strings.TrimRight(b.String(), "\n")
}
