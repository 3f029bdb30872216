package clipcut

import (
	"errors"
	"fmt"
)

// Common errors used throughout the clipcut package.
//
// Every failure produced while turning argv into configuration wraps exactly
// one of the taxonomy sentinels below, so callers can classify with
// errors.Is while users still get one readable message.
var (
	// ErrSyntax indicates malformed quoting or escaping in an inline payload.
	ErrSyntax = errors.New("syntax error")
	// ErrSchema indicates an unknown option or structured field name.
	ErrSchema = errors.New("unknown name")
	// ErrArity indicates a wrong number of values: too many positionals,
	// a missing required value, a repeated option, or a positional field
	// after a keyword field.
	ErrArity = errors.New("wrong number of values")
	// ErrCoerce indicates a contract rejected a raw value.
	ErrCoerce = errors.New("coerce error")
	// ErrChoice indicates a value outside a declared choice set.
	ErrChoice = errors.New("invalid choice")

	// ErrHelp is returned when help or version output was rendered instead
	// of a parse result. It is a successful termination, not a failure;
	// callers should exit zero.
	ErrHelp = errors.New("help requested")

	// ErrUnterminatedString indicates an inline payload ended inside a
	// quoted string.
	ErrUnterminatedString = fmt.Errorf("%w: unterminated string literal", ErrSyntax)
	// ErrDanglingEscape indicates a backslash with no character after it.
	ErrDanglingEscape = fmt.Errorf("%w: expected character for escape sequence, got end of text", ErrSyntax)

	// ErrConfigValidation is returned when project configuration validation fails.
	ErrConfigValidation = errors.New("configuration validation failed")

	// ErrEvaluation indicates the expression evaluator could not produce a value.
	ErrEvaluation = errors.New("expression evaluation failed")
	// ErrNoResults indicates an expression produced no values at all.
	ErrNoResults = errors.New("expression produced no results")
)
