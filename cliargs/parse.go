package cliargs

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/clipcut/clipcut"
	"github.com/clipcut/clipcut/contract"
	"github.com/clipcut/clipcut/inline"
)

// Parse walks args against the grammar and returns the typed result.
//
// Help and version requests render to the parser's output and return
// clipcut.ErrHelp: a successful termination, not a failure. Every other
// error aborts the whole parse; no partial result is ever returned.
func (p *Parser) Parse(args []string) (*Result, error) {
	if len(args) == 0 && p.description != "" {
		p.write(p.description + "\n")
		return nil, clipcut.ErrHelp
	}

	if len(args) == 1 && (args[0] == "-v" || args[0] == "-V") {
		p.write(fmt.Sprintf("%s version %s\n", p.program, p.version))
		return nil, clipcut.ErrHelp
	}

	st := &parseState{
		parser:  p,
		result:  map[string]any{},
		used:    map[*Option]bool{},
		lists:   map[*Option][]any{},
		records: map[*Option][]map[string]any{},
	}

	st.seedDefaults()

	i := 0
	for i < len(args) {
		arg := args[i]

		option := p.findOption(arg)
		if option == nil {
			if err := st.consumeBare(arg); err != nil {
				return nil, err
			}

			i++

			continue
		}

		slog.Debug("matched option", "arg", arg, "canonical", option.Names[0])

		if st.used[option] {
			return nil, fmt.Errorf("%w: cannot repeat option %s twice", clipcut.ErrArity, option.Names[0])
		}

		// A following help marker asks about this one option.
		if i+1 < len(args) && (args[i+1] == "-h" || args[i+1] == "--help") {
			p.write(renderOptionHelp(option, helpWidth()))
			return nil, clipcut.ErrHelp
		}

		switch option.Kind {
		case Boolean:
			st.used[option] = true
			st.activeList = nil
			st.result[option.key()] = true
		case List, Structured:
			// List options accumulate across repetitions: each
			// occurrence appends independent values or records.
			st.activeList = option
		case Scalar:
			st.used[option] = true
			st.activeList = nil

			if i+1 >= len(args) {
				return nil, fmt.Errorf("%w: %s needs argument", clipcut.ErrArity, option.Names[0])
			}

			value, err := coerceAndCheck(option.Names[0], option.Contract, option.Choices, args[i+1])
			if err != nil {
				return nil, err
			}

			st.result[option.key()] = value
			i++
		}

		i++
	}

	st.flush()

	if help, _ := st.result["help"].(bool); help {
		p.write(renderProgramHelp(p.items, helpWidth()))
		return nil, clipcut.ErrHelp
	}

	return &Result{values: st.result}, nil
}

// parseState is the per-invocation mutable state of the token walk.
type parseState struct {
	parser *Parser
	result map[string]any

	used       map[*Option]bool
	activeList *Option
	lists      map[*Option][]any
	records    map[*Option][]map[string]any

	reqIndex  int // next scalar positional group to fill
	posValues []any
}

func (st *parseState) seedDefaults() {
	for _, option := range st.parser.options {
		switch option.Kind {
		case Boolean:
			st.result[option.key()] = false
		case List:
			st.result[option.key()] = []any{}
		case Structured:
			st.result[option.key()] = []map[string]any{}
		case Scalar:
			st.result[option.key()] = option.Default
		}
	}

	for _, required := range st.parser.requireds {
		if required.Plural {
			st.result[ToKey(required.Name)] = []any{}
		} else {
			st.result[ToKey(required.Name)] = nil
		}
	}
}

// consumeBare handles a token that matched no option: list accumulation
// first, then positionals, then the unknown-option error.
func (st *parseState) consumeBare(arg string) error {
	if option := st.activeList; option != nil {
		if option.Kind == Structured {
			// One payload per occurrence; the next bare token is a
			// positional again.
			st.activeList = nil

			record, err := inline.Parse(*option.Struct, arg, option.coercer())
			if err != nil {
				return fmt.Errorf("%s: %w", option.Names[0], err)
			}

			st.records[option] = append(st.records[option], record)

			return nil
		}

		value, err := coerceAndCheck(option.Names[0], option.Contract, option.Choices, arg)
		if err != nil {
			return err
		}

		st.lists[option] = append(st.lists[option], value)

		return nil
	}

	if st.hasPositionalRoom() && !strings.HasPrefix(arg, "--") {
		required := st.parser.requireds[st.reqIndex]

		value, err := coerceAndCheck(required.Name, required.Contract, required.Choices, arg)
		if err != nil {
			return err
		}

		if required.Plural {
			st.posValues = append(st.posValues, value)
		} else {
			st.result[ToKey(required.Name)] = value
			st.reqIndex++
		}

		return nil
	}

	return st.unknownOptionError(arg)
}

func (st *parseState) hasPositionalRoom() bool {
	return st.reqIndex < len(st.parser.requireds)
}

// flush stores every accumulated list and the positional slurp. Called
// once at end of input.
func (st *parseState) flush() {
	for option, values := range st.lists {
		st.result[option.key()] = values
	}

	for option, records := range st.records {
		st.result[option.key()] = records
	}

	if len(st.posValues) > 0 && st.reqIndex < len(st.parser.requireds) && st.parser.requireds[st.reqIndex].Plural {
		st.result[ToKey(st.parser.requireds[st.reqIndex].Name)] = st.posValues
	}
}

func (st *parseState) unknownOptionError(arg string) error {
	label := "short"
	if strings.HasPrefix(arg, "--") {
		label = "option"
	}

	names := st.parser.optionNames()

	// A trailing comma on an option name is a common slip when going
	// back and forth with inline payloads.
	trimmed := strings.ReplaceAll(arg, ",", "")
	for _, name := range names {
		if trimmed == name {
			return fmt.Errorf("%w: option '%s' has an unnecessary comma", clipcut.ErrSchema, arg)
		}
	}

	if matches := clipcut.CloseMatches(arg, names); matches != nil {
		return fmt.Errorf("%w: unknown %s: %s\n\n    Did you mean:\n        %s",
			clipcut.ErrSchema, label, arg, strings.Join(matches, ", "))
	}

	return fmt.Errorf("%w: unknown %s: %s", clipcut.ErrSchema, label, arg)
}

// coerceAndCheck converts one raw value and validates it against a choice
// set. Failures name the option, the offending value, and the valid set.
func coerceAndCheck(name string, c contract.Contract, choices []string, raw string) (any, error) {
	value, err := c.Coerce(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	if len(choices) > 0 {
		rendered := fmt.Sprintf("%v", value)

		found := false
		for _, choice := range choices {
			if rendered == choice {
				found = true
				break
			}
		}

		if !found {
			return nil, fmt.Errorf("%w: %v is not a choice for %s\nchoices are:\n  %s",
				clipcut.ErrChoice, value, name, strings.Join(choices, ", "))
		}
	}

	return value, nil
}

func (p *Parser) write(text string) {
	fmt.Fprint(p.out, text)
}
