package inline

import (
	"fmt"
	"strings"

	"github.com/clipcut/clipcut"
)

// Parse runs one payload against a Spec, returning field name → typed
// value. The result always covers every declared field: parsed values,
// then defaults. Any error aborts the whole parse; no partial result is
// surfaced.
func Parse(spec Spec, text string, co Coercer) (map[string]any, error) {
	result := make(map[string]any, len(spec.Fields))

	for _, field := range spec.Fields {
		if field.Required {
			result[field.Name] = required{}
		} else {
			result[field.Name] = field.Default
		}
	}

	keywordSeen := false
	i := 0

	for lexeme, err := range NewLexer(text).Lexemes() {
		if err != nil {
			return nil, err
		}

		if i >= len(spec.Fields) {
			return nil, fmt.Errorf("%w: %s has too many arguments, starting with '%s'",
				clipcut.ErrArity, spec.Name, lexeme.Value)
		}

		if eq := unescapedEquals(lexeme.Value); eq >= 0 {
			keywordSeen = true

			key := lexeme.Value[:eq]
			val := lexeme.Value[eq+1:]

			field, ok := spec.lookup(key)
			if !ok {
				return nil, unknownKeywordError(spec, key)
			}

			value, err := co.Coerce(spec, field, val)
			if err != nil {
				return nil, err
			}

			result[field.Name] = value
		} else {
			if keywordSeen {
				return nil, fmt.Errorf("%w: %s positional argument follows keyword argument",
					clipcut.ErrArity, spec.Name)
			}

			field := spec.Fields[i]

			value, err := co.Coerce(spec, field, lexeme.Value)
			if err != nil {
				return nil, err
			}

			result[field.Name] = value
		}

		i++
	}

	// Required fields are reported only after the whole payload parsed.
	for _, field := range spec.Fields {
		if _, missing := result[field.Name].(required); missing {
			return nil, fmt.Errorf("%w: '%s' must be specified", clipcut.ErrArity, field.Name)
		}
	}

	return result, nil
}

func (s Spec) lookup(name string) (Field, bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}

	return Field{}, false
}

func unknownKeywordError(spec Spec, key string) error {
	names := spec.FieldNames()

	if matches := clipcut.CloseMatches(key, names); matches != nil {
		return fmt.Errorf("%w: %s got an unexpected keyword '%s'\n    Did you mean:\n        %s",
			clipcut.ErrSchema, spec.Name, key, strings.Join(matches, ", "))
	}

	return fmt.Errorf("%w: %s got an unexpected keyword '%s'\n    keywords available:\n        %s",
		clipcut.ErrSchema, spec.Name, key, strings.Join(names, ", "))
}

// unescapedEquals returns the index of the first '=' that sits outside any
// quoted segment and is not escaped, or -1. A lexeme like `"x=1"` is
// positional, not keyword.
func unescapedEquals(lexeme string) int {
	inQuote := false

	for i := 0; i < len(lexeme); i++ {
		switch lexeme[i] {
		case '\\':
			i++
		case '"':
			inQuote = !inQuote
		case '=':
			if !inQuote {
				return i
			}
		}
	}

	return -1
}
