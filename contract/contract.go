// Package contract implements value contracts: named validating converters
// from raw command-line text to typed values. A contract doubles as the type
// of a CLI option or of a structured-flag field, and its predicate side is
// what the expression-backed coercion path checks evaluated values against.
package contract

import (
	"fmt"
	"strconv"

	"github.com/clipcut/clipcut"
)

// Contract validates and converts one raw string into a typed value.
//
// Parse is the direct conversion path used for CLI option values and
// directly-coerced structured fields. Check is the predicate path: it
// reports whether an already-produced value (for example the result of an
// evaluated expression) satisfies the contract. Contracts are immutable
// and safe to share.
type Contract struct {
	// Name identifies the contract in help and error output, e.g. "int".
	Name string

	Parse func(raw string) (any, error)
	Check func(v any) bool
}

// Coerce runs the direct conversion path, wrapping failures so they carry
// the contract name and offending text.
func (c Contract) Coerce(raw string) (any, error) {
	v, err := c.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", clipcut.ErrCoerce, c.Name, err)
	}

	return v, nil
}

// Render formats a typed value for error messages, quoting strings so the
// literal end is distinguishable from the quoted literal "end".
func Render(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case nil:
		return "<none>"
	default:
		return fmt.Sprintf("%v", x)
	}
}
