package dispatch

import (
	"slices"
	"strconv"
	"strings"
)

// ContinuousParser is a cursor over an argument vector that parses options against the currently
// installed [OptionSpecCollection]. It stops at the first token that is not an option so the
// caller can decide whether that token is a subcommand or a positional argument, and it can be
// re-armed with a different collection and resumed from exactly where it stopped.
//
// The cursor only ever moves forward.
type ContinuousParser struct {
	args       []string
	pos        int
	specs      *OptionSpecCollection
	terminated bool
}

// NewContinuousParser returns a parser with an empty spec collection installed.
func NewContinuousParser() *ContinuousParser {
	return &ContinuousParser{specs: NewOptionSpecCollection()}
}

// SetSpecs installs the collection used by subsequent calls to [ContinuousParser.ContinueParse].
// It does not move the cursor.
func (p *ContinuousParser) SetSpecs(specs *OptionSpecCollection) {
	if specs == nil {
		specs = NewOptionSpecCollection()
	}
	p.specs = specs
}

// Parse starts parsing args from the beginning and returns the options of the first level.
func (p *ContinuousParser) Parse(args []string) (*Options, error) {
	p.args = slices.Clone(args)
	p.pos = 0
	p.terminated = false
	return p.ContinueParse()
}

// ContinueParse consumes options from the current cursor position until it reaches a token that
// is not an option, the "--" terminator or the end of input. It returns only the options parsed
// during this call.
//
// The "--" terminator is consumed. Every token after it is positional, see
// [ContinuousParser.Terminated].
func (p *ContinuousParser) ContinueParse() (*Options, error) {
	opts := newOptions(p.specs)
	for !p.IsEnd() && !p.terminated {
		tok := p.args[p.pos]
		if tok == "--" {
			p.pos++
			p.terminated = true
			break
		}
		if !isOption(tok) {
			break
		}
		p.pos++
		var err error
		if strings.HasPrefix(tok, "--") {
			err = p.consumeLong(opts, tok)
		} else {
			err = p.consumeShort(opts, tok)
		}
		if err != nil {
			return nil, err
		}
	}
	return opts, nil
}

// IsEnd reports whether the whole argument vector has been consumed.
func (p *ContinuousParser) IsEnd() bool {
	return p.pos >= len(p.args)
}

// Current returns the token at the cursor without consuming it, or the empty string at the end of
// input.
func (p *ContinuousParser) Current() string {
	if p.IsEnd() {
		return ""
	}
	return p.args[p.pos]
}

// Advance consumes and returns the token at the cursor.
func (p *ContinuousParser) Advance() string {
	if p.IsEnd() {
		return ""
	}
	tok := p.args[p.pos]
	p.pos++
	return tok
}

// Terminated reports whether the "--" terminator has been consumed.
func (p *ContinuousParser) Terminated() bool {
	return p.terminated
}

// Pos returns the cursor position.
func (p *ContinuousParser) Pos() int {
	return p.pos
}

func (p *ContinuousParser) consumeLong(opts *Options, tok string) error {
	name, value, inline := strings.Cut(tok[2:], "=")
	spec := p.specs.lookupLong(name)
	if spec == nil {
		return &ParseError{Token: tok, Reason: "unknown option"}
	}
	if inline {
		return setValue(opts, spec, tok, value)
	}
	return p.takeValue(opts, spec, tok)
}

// consumeShort handles "-x", "-x value", "-x=value", "-xvalue" and bundled switches such as "-vd".
func (p *ContinuousParser) consumeShort(opts *Options, tok string) error {
	for i := 1; i < len(tok); i++ {
		spec := p.specs.lookupShort(tok[i : i+1])
		if spec == nil {
			return &ParseError{Token: tok, Reason: "unknown option"}
		}
		rest := tok[i+1:]
		if strings.HasPrefix(rest, "=") {
			return setValue(opts, spec, tok, rest[1:])
		}
		if spec.Value == NoValue {
			opts.add(spec, "true")
			continue
		}
		if rest != "" {
			return setValue(opts, spec, tok, rest)
		}
		return p.takeValue(opts, spec, tok)
	}
	return nil
}

// takeValue handles an option given without an inline value.
func (p *ContinuousParser) takeValue(opts *Options, spec *OptionSpec, tok string) error {
	switch spec.Value {
	case NoValue:
		opts.add(spec, "true")
	case OptionalValue:
		opts.add(spec, "")
	default:
		if p.IsEnd() {
			return &ParseError{Token: tok, Reason: "missing value for option"}
		}
		opts.add(spec, p.Advance())
	}
	return nil
}

func setValue(opts *Options, spec *OptionSpec, tok, value string) error {
	if spec.Value == NoValue {
		if _, err := strconv.ParseBool(value); err != nil {
			return &ParseError{Token: tok, Reason: "invalid boolean value for option"}
		}
	}
	opts.add(spec, value)
	return nil
}

func isOption(tok string) bool {
	return len(tok) > 1 && tok[0] == '-'
}
