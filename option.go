package dispatch

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValueMode describes whether an option consumes a value.
type ValueMode int

const (
	// NoValue options are boolean switches, e.g. "-v" or "--verbose".
	NoValue ValueMode = iota
	// RequiredValue options always take a value, either inline ("--out=x") or as the next token
	// ("--out x"). Declared with a trailing ":".
	RequiredValue
	// OptionalValue options take a value only when given inline ("--level=2"). Declared with a
	// trailing "?".
	OptionalValue
	// MultipleValue options take a value like RequiredValue and may be repeated, accumulating every
	// value. Declared with a trailing "+".
	MultipleValue
)

// OptionSpec identifies one recognized option. It is immutable once added to a collection.
type OptionSpec struct {
	Short string
	Long  string
	Value ValueMode
	Usage string
}

// Name returns the canonical name of the option: the long alias if there is one, otherwise the
// short alias.
func (s *OptionSpec) Name() string {
	if s.Long != "" {
		return s.Long
	}
	return s.Short
}

// String returns the option as it is shown in help output, e.g. "-o, --output <value>".
func (s *OptionSpec) String() string {
	var aliases []string
	if s.Short != "" {
		aliases = append(aliases, "-"+s.Short)
	}
	if s.Long != "" {
		aliases = append(aliases, "--"+s.Long)
	}
	out := strings.Join(aliases, ", ")
	switch s.Value {
	case RequiredValue:
		out += " <value>"
	case OptionalValue:
		out += "[=<value>]"
	case MultipleValue:
		out += " <value>..."
	}
	return out
}

// OptionSpecCollection is an ordered set of option specs, unique by alias, scoped to exactly one
// command level.
type OptionSpecCollection struct {
	specs   []*OptionSpec
	byShort map[string]*OptionSpec
	byLong  map[string]*OptionSpec
}

// NewOptionSpecCollection returns an empty collection.
func NewOptionSpecCollection() *OptionSpecCollection {
	return &OptionSpecCollection{
		byShort: make(map[string]*OptionSpec),
		byLong:  make(map[string]*OptionSpec),
	}
}

// Add registers an option described by spec and returns it. The spec grammar is
//
//	"v|verbose"   short and long alias, no value
//	"o|output:"   required value
//	"level?"      optional value (inline only)
//	"I|include+"  repeatable, accumulates values
//
// A single-character spec without "|" is a short alias, anything longer is a long alias.
//
// Add panics if the spec is malformed or one of its aliases is already registered. Both are
// programming errors in the command definition, not user input errors.
func (c *OptionSpecCollection) Add(spec, usage string) *OptionSpec {
	s, err := parseOptionSpec(spec)
	if err != nil {
		panic(fmt.Sprintf("internal error: invalid option spec %q: %v", spec, err))
	}
	// An alias is unique across both short and long forms.
	if s.Short != "" && c.Lookup(s.Short) != nil {
		panic(fmt.Sprintf("internal error: duplicate option alias -%s", s.Short))
	}
	if s.Long != "" && c.Lookup(s.Long) != nil {
		panic(fmt.Sprintf("internal error: duplicate option alias --%s", s.Long))
	}
	s.Usage = usage
	if s.Short != "" {
		c.byShort[s.Short] = s
	}
	if s.Long != "" {
		c.byLong[s.Long] = s
	}
	c.specs = append(c.specs, s)
	return s
}

// Lookup finds a spec by either of its aliases, without dashes. Returns nil if not found.
func (c *OptionSpecCollection) Lookup(alias string) *OptionSpec {
	if s, ok := c.byLong[alias]; ok {
		return s
	}
	return c.byShort[alias]
}

// Specs returns the specs in registration order.
func (c *OptionSpecCollection) Specs() []*OptionSpec {
	return slices.Clone(c.specs)
}

// Len returns the number of registered specs.
func (c *OptionSpecCollection) Len() int {
	return len(c.specs)
}

func (c *OptionSpecCollection) lookupShort(alias string) *OptionSpec {
	return c.byShort[alias]
}

func (c *OptionSpecCollection) lookupLong(alias string) *OptionSpec {
	return c.byLong[alias]
}

func parseOptionSpec(spec string) (*OptionSpec, error) {
	s := &OptionSpec{}
	switch {
	case strings.HasSuffix(spec, ":"):
		s.Value = RequiredValue
	case strings.HasSuffix(spec, "?"):
		s.Value = OptionalValue
	case strings.HasSuffix(spec, "+"):
		s.Value = MultipleValue
	}
	if s.Value != NoValue {
		spec = spec[:len(spec)-1]
	}
	short, long, found := strings.Cut(spec, "|")
	if !found {
		if len(spec) == 1 {
			short, long = spec, ""
		} else {
			short, long = "", spec
		}
	}
	if short == "" && long == "" {
		return nil, fmt.Errorf("no alias")
	}
	if found && (len(short) != 1 || long == "") {
		return nil, fmt.Errorf("want a single-character short alias and a long alias")
	}
	for _, alias := range []string{short, long} {
		if strings.HasPrefix(alias, "-") || strings.ContainsAny(alias, " =|") {
			return nil, fmt.Errorf("alias %q must not start with a dash or contain spaces, '=' or '|'", alias)
		}
	}
	s.Short, s.Long = short, long
	return s, nil
}

// Options holds the values parsed for one command level. Values are keyed by the canonical
// option name (see [OptionSpec.Name]) and every accessor also accepts the short alias.
//
// The typed accessors panic when asked for an option that was never declared at this level. A
// missing declaration is a programming error and it's better to fail loud than to silently return
// a zero value.
type Options struct {
	specs  *OptionSpecCollection
	values map[string][]string
}

func newOptions(specs *OptionSpecCollection) *Options {
	return &Options{
		specs:  specs,
		values: make(map[string][]string),
	}
}

func (o *Options) add(spec *OptionSpec, value string) {
	name := spec.Name()
	switch spec.Value {
	case MultipleValue:
		o.values[name] = append(o.values[name], value)
	default:
		o.values[name] = []string{value}
	}
}

func (o *Options) mustSpec(name string) *OptionSpec {
	var spec *OptionSpec
	if o.specs != nil {
		spec = o.specs.Lookup(name)
	}
	if spec == nil {
		panic(fmt.Sprintf("internal error: option %q is not declared at this level", name))
	}
	return spec
}

// Has reports whether the option was given on the command line. Unlike the typed accessors it
// does not panic for undeclared options.
func (o *Options) Has(name string) bool {
	if o == nil || o.specs == nil {
		return false
	}
	spec := o.specs.Lookup(name)
	if spec == nil {
		return false
	}
	_, ok := o.values[spec.Name()]
	return ok
}

// Bool returns the value of a switch. It is true if the switch was given without a value or with
// a true boolean value ("--force=true").
func (o *Options) Bool(name string) bool {
	spec := o.mustSpec(name)
	v := o.values[spec.Name()]
	if len(v) == 0 {
		return false
	}
	b, _ := strconv.ParseBool(v[len(v)-1])
	return b
}

// String returns the last value given for the option, or the empty string.
func (o *Options) String(name string) string {
	spec := o.mustSpec(name)
	v := o.values[spec.Name()]
	if len(v) == 0 {
		return ""
	}
	return v[len(v)-1]
}

// Strings returns every value given for the option, in command-line order.
func (o *Options) Strings(name string) []string {
	spec := o.mustSpec(name)
	return slices.Clone(o.values[spec.Name()])
}

// Len returns the number of distinct options that were given.
func (o *Options) Len() int {
	if o == nil {
		return 0
	}
	return len(o.values)
}

// Names returns the canonical names of the options that were given, in declaration order.
func (o *Options) Names() []string {
	if o == nil || o.specs == nil {
		return nil
	}
	var names []string
	for _, s := range o.specs.specs {
		if _, ok := o.values[s.Name()]; ok {
			names = append(names, s.Name())
		}
	}
	return names
}
