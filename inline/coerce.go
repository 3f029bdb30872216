package inline

import (
	"fmt"
	"strings"

	"github.com/clipcut/clipcut"
	"github.com/clipcut/clipcut/contract"
)

// Coercer turns the raw text of one field into its typed value. The parser
// is written once against this interface; the two implementations differ
// only in how the text becomes a value.
type Coercer interface {
	Coerce(spec Spec, field Field, raw string) (any, error)
}

// DirectCoercer converts through the field contract's Parse function.
// Quoted lexemes are unquoted first, so `color="#fff"` and `color=#fff`
// coerce identically.
type DirectCoercer struct{}

// Coerce implements Coercer.
func (DirectCoercer) Coerce(spec Spec, field Field, raw string) (any, error) {
	return field.Contract.Coerce(Unquote(raw))
}

// Evaluator is the consumed expression-evaluation capability: given an
// environment and source text it returns an ordered, non-empty sequence of
// values, or fails with a descriptive error.
type Evaluator interface {
	Eval(env map[string]any, src string) ([]any, error)
}

// EvalCoercer evaluates the raw text as an expression and checks the last
// produced value against the field contract's predicate. This is how
// payload fields get access to named timeline values such as `end`.
type EvalCoercer struct {
	Evaluator Evaluator
	Env       map[string]any
}

// Coerce implements Coercer.
func (c EvalCoercer) Coerce(spec Spec, field Field, raw string) (any, error) {
	results, err := c.Evaluator.Eval(c.Env, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", clipcut.ErrCoerce, err)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %s", clipcut.ErrCoerce, clipcut.ErrNoResults)
	}

	last := results[len(results)-1]
	if !field.Contract.Check(last) {
		return nil, fmt.Errorf("%w: %s: expected %s, got %s",
			clipcut.ErrCoerce, spec.Name, field.Contract.Name, contract.Render(last))
	}

	return last, nil
}

// Unquote strips the surrounding quotes from a quoted lexeme and resolves
// its backslash escapes. Bare lexemes only have their escapes resolved.
func Unquote(raw string) string {
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}

	if !strings.ContainsRune(raw, '\\') {
		return raw
	}

	var builder strings.Builder

	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			i++
		}

		builder.WriteByte(raw[i])
	}

	return builder.String()
}
