package dispatch

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const commandSuffix = "Command"

// CommandName derives an invocation name from a command type name: the "Command" suffix is
// stripped and a dash is inserted before every upper-case letter that follows a lower-case one.
//
//	FooBarCommand → foo-bar
//	HelpCommand   → help
func CommandName(typeName string) string {
	name := strings.TrimSuffix(typeName, commandSuffix)
	var b strings.Builder
	var prev rune
	for _, r := range name {
		if unicode.IsUpper(r) && unicode.IsLower(prev) {
			b.WriteByte('-')
		}
		b.WriteRune(r)
		prev = r
	}
	return cases.Lower(language.Und).String(b.String())
}

// TypeName is the inverse of [CommandName]. Words separated by dashes or underscores are title-cased
// and joined, then the "Command" suffix is appended.
//
//	foo-bar → FooBarCommand
//	FOO_bar → FooBarCommand
func TypeName(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(words) == 0 {
		return ""
	}
	title := cases.Title(language.Und)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(title.String(w))
	}
	b.WriteString(commandSuffix)
	return b.String()
}
