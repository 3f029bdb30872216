// Package cliargs implements the command-line grammar and parser of
// clipcut: required positionals, scalar/boolean/list options, structured
// options whose values carry an inline sub-grammar, terminal-width-aware
// help, and "did you mean" error reporting. The grammar is built once,
// is read-only afterward, and may be shared across concurrent parses.
package cliargs

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/clipcut/clipcut/contract"
	"github.com/clipcut/clipcut/inline"
)

// Kind is the closed set of option flavors the parser dispatches on.
type Kind int

const (
	// Scalar consumes exactly the next token.
	Scalar Kind = iota
	// Boolean takes no value; presence means true.
	Boolean
	// List consumes every following bare token up to the next option.
	List
	// Structured consumes one inline payload per occurrence, parsed
	// against a sub-grammar. Occurrences accumulate records in order.
	Structured
)

// Option declares one flag. The first name is canonical; the rest are
// aliases. Immutable after registration.
type Option struct {
	Names    []string
	Kind     Kind
	Contract contract.Contract // value type for Scalar, element type for List
	Default  any
	Choices  []string
	Struct   *inline.Spec  // sub-grammar, Structured only
	Coercer  inline.Coercer // nil means inline.DirectCoercer
	Help     string
	Manual   string
}

// Required declares one positional group. A Plural group slurps every
// remaining bare token; it must be the sole positional group.
type Required struct {
	Name     string
	Plural   bool
	Contract contract.Contract
	Choices  []string
	Help     string
}

// helpItem interleaves options, positionals, and free text in declaration
// order for whole-program help.
type helpItem struct {
	option   *Option
	required *Required
	text     string
	blank    bool
}

// Parser holds one grammar: the program identity plus every declared
// option and positional. Build it fully before the first Parse call.
type Parser struct {
	program     string
	version     string
	description string

	options   []*Option
	requireds []*Required
	items     []helpItem
	keys      map[string]bool

	out io.Writer
}

// New creates a Parser. A --help/-h boolean flag is registered
// automatically.
func New(program, version, description string) *Parser {
	p := &Parser{
		program:     program,
		version:     version,
		description: description,
		keys:        make(map[string]bool),
		out:         os.Stdout,
	}

	p.AddOption(Option{
		Names: []string{"--help", "-h"},
		Kind:  Boolean,
		Help:  "Show info about this program or option then exit",
	})

	return p
}

// SetOutput redirects help and version output, mainly for tests.
func (p *Parser) SetOutput(w io.Writer) {
	p.out = w
}

// AddOption registers an option. Conflicting or malformed declarations are
// programmer errors and panic.
func (p *Parser) AddOption(o Option) {
	if len(o.Names) == 0 {
		panic("cliargs: option needs at least one name")
	}

	if o.Kind == Structured && o.Struct == nil {
		panic(fmt.Sprintf("cliargs: structured option %s needs a sub-grammar", o.Names[0]))
	}

	key := ToKey(o.Names[0])
	if p.keys[key] {
		panic(fmt.Sprintf("cliargs: option redefined: %s", o.Names[0]))
	}

	p.keys[key] = true

	option := o
	p.options = append(p.options, &option)
	p.items = append(p.items, helpItem{option: &option})
}

// AddRequired registers a positional group. Only one Plural group may
// exist, and then it must be the only group.
func (p *Parser) AddRequired(r Required) {
	for _, existing := range p.requireds {
		if existing.Plural || r.Plural {
			panic(fmt.Sprintf("cliargs: positional %s: a slurping positional must be the sole positional group", r.Name))
		}
	}

	key := ToKey(r.Name)
	if p.keys[key] {
		panic(fmt.Sprintf("cliargs: positional redefined: %s", r.Name))
	}

	p.keys[key] = true

	required := r
	p.requireds = append(p.requireds, &required)
	p.items = append(p.items, helpItem{required: &required})
}

// AddText inserts a section heading into program help.
func (p *Parser) AddText(text string) {
	p.items = append(p.items, helpItem{text: text})
}

// AddBlank inserts an empty line into program help.
func (p *Parser) AddBlank() {
	p.items = append(p.items, helpItem{blank: true})
}

// ToKey converts an option or positional name to its canonical result key:
// leading dashes are dropped and inner dashes become underscores, so
// --hello-world and --hello_world both store under "hello_world".
func ToKey(name string) string {
	return strings.ReplaceAll(strings.TrimLeft(name, "-"), "-", "_")
}

// toUnderscore converts a declared spelling into its underscore alias,
// keeping the dash prefix: --hello-world → --hello_world.
func toUnderscore(name string) string {
	prefix := name
	rest := ""

	if strings.HasPrefix(name, "--") {
		prefix, rest = name[:2], name[2:]
	} else if strings.HasPrefix(name, "-") {
		prefix, rest = name[:1], name[1:]
	}

	return prefix + strings.ReplaceAll(rest, "-", "_")
}

// findOption resolves a token against the grammar, honoring underscore
// spellings of dashed names.
func (p *Parser) findOption(arg string) *Option {
	for _, option := range p.options {
		for _, name := range option.Names {
			if arg == name || arg == toUnderscore(name) {
				return option
			}
		}
	}

	return nil
}

// optionNames lists every declared option spelling, for suggestions.
func (p *Parser) optionNames() []string {
	var names []string
	for _, option := range p.options {
		names = append(names, option.Names...)
	}

	return names
}

func (o *Option) key() string {
	return ToKey(o.Names[0])
}

func (o *Option) coercer() inline.Coercer {
	if o.Coercer != nil {
		return o.Coercer
	}

	return inline.DirectCoercer{}
}
