package dispatch

import (
	"slices"
	"strings"
)

// BuiltinNamespace is the loader namespace holding the commands shipped with this package. Every
// loader created with [NewLoader] searches it first.
const BuiltinNamespace = "dispatch/command"

// Loader resolves command names to factories. Factories are registered under a namespace and a
// type name, and a name such as "foo-bar" is resolved by probing "FooBarCommand" in every search
// namespace, in the order the namespaces were added.
//
// Resolution is lazy, the loader never constructs a command.
type Loader struct {
	namespaces []string
	registry   map[string]map[string]Factory
}

// NewLoader returns a loader with [BuiltinNamespace] registered and searched.
func NewLoader() *Loader {
	l := &Loader{}
	l.Register(BuiltinNamespace, "HelpCommand", func() Command { return &HelpCommand{} })
	l.AddNamespace(BuiltinNamespace)
	return l
}

// Register makes the factory available as typeName in namespace. Registering the same type twice
// replaces the factory. Registration alone does not add namespace to the search list, see
// [Loader.AddNamespace].
func (l *Loader) Register(namespace, typeName string, f Factory) {
	if l.registry == nil {
		l.registry = make(map[string]map[string]Factory)
	}
	ns := l.registry[namespace]
	if ns == nil {
		ns = make(map[string]Factory)
		l.registry[namespace] = ns
	}
	ns[typeName] = f
}

// AddNamespace appends namespaces to the search list. Namespaces already in the list keep their
// position.
func (l *Loader) AddNamespace(namespaces ...string) {
	for _, ns := range namespaces {
		ns = strings.TrimSuffix(ns, "/")
		if ns == "" || slices.Contains(l.namespaces, ns) {
			continue
		}
		l.namespaces = append(l.namespaces, ns)
	}
}

// Namespaces returns the search list.
func (l *Loader) Namespaces() []string {
	return slices.Clone(l.namespaces)
}

// Load resolves name in the search namespaces. The second return value is false if no namespace
// has a matching type.
func (l *Loader) Load(name string) (Factory, bool) {
	typeName := TypeName(name)
	if typeName == "" {
		return nil, false
	}
	for _, ns := range l.namespaces {
		if f := l.lookup(ns, typeName); f != nil {
			return f, true
		}
	}
	return nil, false
}

// LoadSubcommand resolves name relative to parent. If parent implements [SubcommandNamespacer]
// only its namespace is searched, otherwise this is the same as [Loader.Load].
func (l *Loader) LoadSubcommand(name string, parent Command) (Factory, bool) {
	nsr, ok := parent.(SubcommandNamespacer)
	if !ok {
		return l.Load(name)
	}
	typeName := TypeName(name)
	if typeName == "" {
		return nil, false
	}
	f := l.lookup(strings.TrimSuffix(nsr.SubcommandNamespace(), "/"), typeName)
	return f, f != nil
}

// Names returns the invocation names resolvable through the search namespaces, in search order
// and without duplicates.
func (l *Loader) Names() []string {
	var names []string
	for _, ns := range l.namespaces {
		var local []string
		for typeName := range l.registry[ns] {
			if !strings.HasSuffix(typeName, commandSuffix) {
				continue
			}
			local = append(local, CommandName(typeName))
		}
		slices.Sort(local)
		for _, name := range local {
			if !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
	}
	return names
}

// lookup matches the type name exactly first, then case-insensitively so that "HTTPServerCommand"
// is found from "httpserver".
func (l *Loader) lookup(namespace, typeName string) Factory {
	ns := l.registry[namespace]
	if f, ok := ns[typeName]; ok {
		return f
	}
	for name, f := range ns {
		if strings.EqualFold(name, typeName) {
			return f
		}
	}
	return nil
}
