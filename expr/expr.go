// Package expr adapts a CEL environment to the expression-evaluation
// capability consumed by structured-flag coercion. Payload values such as
// `end - 30` or `width / 2` are evaluated against named values supplied by
// the caller; only the last result of a statement sequence is used.
package expr

import (
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"

	"github.com/clipcut/clipcut"
)

// Evaluator compiles and runs expressions. The zero value is ready to use
// and safe for concurrent callers; a fresh CEL environment is built per
// evaluation because the variable set follows the supplied environment.
type Evaluator struct{}

// New creates an Evaluator.
func New() *Evaluator {
	return &Evaluator{}
}

// Eval evaluates src in env and returns the ordered sequence of statement
// results. Statements are separated by ';'; the sequence is never empty on
// success.
func (e *Evaluator) Eval(env map[string]any, src string) ([]any, error) {
	if env == nil {
		env = map[string]any{}
	}

	opts := make([]cel.EnvOption, 0, len(env))
	for name := range env {
		opts = append(opts, cel.Variable(name, cel.DynType))
	}

	celEnv, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", clipcut.ErrEvaluation, err)
	}

	statements := splitStatements(src)
	if len(statements) == 0 {
		return nil, fmt.Errorf("%w: empty expression", clipcut.ErrNoResults)
	}

	results := make([]any, 0, len(statements))

	for _, statement := range statements {
		value, err := evalOne(celEnv, env, statement)
		if err != nil {
			return nil, err
		}

		results = append(results, value)
	}

	return results, nil
}

func evalOne(celEnv *cel.Env, env map[string]any, src string) (any, error) {
	ast, issues := celEnv.Compile(src)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("%w: cannot compile '%s': %w", clipcut.ErrEvaluation, src, issues.Err())
	}

	program, err := celEnv.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot build program for '%s': %w", clipcut.ErrEvaluation, src, err)
	}

	result, _, err := program.Eval(env)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s': %w", clipcut.ErrEvaluation, src, err)
	}

	return result.Value(), nil
}

// splitStatements splits on ';' outside quoted strings and drops blank
// statements.
func splitStatements(src string) []string {
	var statements []string

	start := 0
	inQuote := byte(0)

	flush := func(end int) {
		statement := strings.TrimSpace(src[start:end])
		if statement != "" {
			statements = append(statements, statement)
		}
	}

	for i := 0; i < len(src); i++ {
		switch c := src[i]; c {
		case '\\':
			i++
		case '\'', '"':
			switch inQuote {
			case 0:
				inQuote = c
			case c:
				inQuote = 0
			}
		case ';':
			if inQuote == 0 {
				flush(i)

				start = i + 1
			}
		}
	}

	flush(len(src))

	return statements
}
