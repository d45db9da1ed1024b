// Package textutil formats plain text for terminal help output.
package textutil

import "strings"

// Wrap breaks text into lines of at most width bytes, splitting on whitespace. Words longer than
// width are kept whole on their own line.
func Wrap(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// Row is one entry of a two-column listing.
type Row struct {
	Left, Right string
}

// Columns lays rows out as an indented two-column listing. The right column starts gap spaces
// after the widest left cell and is wrapped so no line exceeds width. Continuation lines are
// aligned with the right column.
func Columns(rows []Row, indent, gap, width int) []string {
	maxLeft := 0
	for _, r := range rows {
		maxLeft = max(maxLeft, len(r.Left))
	}
	prefix := strings.Repeat(" ", indent)
	offset := indent + maxLeft + gap
	var out []string
	for _, r := range rows {
		if r.Right == "" {
			out = append(out, prefix+r.Left)
			continue
		}
		lines := Wrap(r.Right, max(width-offset, 1))
		padding := strings.Repeat(" ", maxLeft-len(r.Left)+gap)
		out = append(out, prefix+r.Left+padding+lines[0])
		for _, line := range lines[1:] {
			out = append(out, strings.Repeat(" ", offset)+line)
		}
	}
	return out
}
