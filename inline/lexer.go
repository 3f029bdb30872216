// Package inline implements the comma-separated mini-language carried by
// structured flag values, e.g.
//
//	--add-rectangle 0,end,10,20,20,30,color=#fff
//
// Fields are positional in declared order or keyword ("name=value"), and a
// value may be a double-quoted string with backslash escapes. The lexer
// splits the payload into lexemes and the parser coerces them through
// pluggable value contracts.
package inline

import (
	"fmt"
	"iter"
	"strings"

	"github.com/clipcut/clipcut"
)

// Lexeme is one comma-separated cell of a payload. A quoted string is
// returned with its surrounding quotes and escape sequences intact, so
// downstream coercion can tell the literal end from the quoted literal
// "end".
type Lexeme struct {
	Value  string
	Offset int // byte offset of the first character within the payload
}

// Quoted reports whether the whole lexeme is a single quoted string.
func (l Lexeme) Quoted() bool {
	return len(l.Value) >= 2 && l.Value[0] == '"' && l.Value[len(l.Value)-1] == '"'
}

// LexemeIterator is a lazy, finite, restartable sequence of lexemes.
type LexemeIterator iter.Seq2[Lexeme, error]

// Lexer splits a payload string on unescaped commas. Empty cells between
// consecutive commas are skipped, never emitted.
type Lexer struct {
	input string
}

// NewLexer creates a Lexer over one payload string.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Lexemes returns an iterator over the payload's lexemes. Iteration stops
// after the first error; the iterator can be restarted from the beginning
// by ranging again.
func (l *Lexer) Lexemes() LexemeIterator {
	return func(yield func(Lexeme, error) bool) {
		pos := 0

		for pos < len(l.input) {
			// Separators between cells; consecutive commas yield nothing.
			if l.input[pos] == ',' {
				pos++
				continue
			}

			lexeme, next, err := l.readLexeme(pos)
			if err != nil {
				yield(Lexeme{}, err)
				return
			}

			pos = next

			if !yield(lexeme, nil) {
				return
			}
		}
	}
}

// All collects every lexeme, stopping at the first error.
func (l *Lexer) All() ([]Lexeme, error) {
	lexemes := make([]Lexeme, 0, 8)

	for lexeme, err := range l.Lexemes() {
		if err != nil {
			return nil, err
		}

		lexemes = append(lexemes, lexeme)
	}

	return lexemes, nil
}

// readLexeme consumes one cell starting at start and returns it together
// with the position just past its trailing comma (or end of input).
func (l *Lexer) readLexeme(start int) (Lexeme, int, error) {
	var builder strings.Builder

	pos := start

	for pos < len(l.input) {
		switch c := l.input[pos]; c {
		case ',':
			return Lexeme{Value: builder.String(), Offset: start}, pos + 1, nil
		case '"':
			next, err := l.readString(pos, &builder)
			if err != nil {
				return Lexeme{}, 0, err
			}

			pos = next
		case '\\':
			next, err := l.readEscape(pos, &builder)
			if err != nil {
				return Lexeme{}, 0, err
			}

			pos = next
		default:
			builder.WriteByte(c)
			pos++
		}
	}

	return Lexeme{Value: builder.String(), Offset: start}, pos, nil
}

// readString consumes a quoted segment verbatim, keeping the quotes and
// re-escaping backslash sequences. Commas inside the segment do not split.
func (l *Lexer) readString(start int, builder *strings.Builder) (int, error) {
	builder.WriteByte('"')
	pos := start + 1

	for pos < len(l.input) {
		switch c := l.input[pos]; c {
		case '\\':
			next, err := l.readEscape(pos, builder)
			if err != nil {
				return 0, err
			}

			pos = next
		case '"':
			builder.WriteByte('"')
			return pos + 1, nil
		default:
			builder.WriteByte(c)
			pos++
		}
	}

	return 0, fmt.Errorf("%w at offset %d", clipcut.ErrUnterminatedString, start)
}

// readEscape keeps a backslash sequence intact: the backslash and the
// escaped character both survive into the lexeme.
func (l *Lexer) readEscape(start int, builder *strings.Builder) (int, error) {
	if start+1 >= len(l.input) {
		return 0, clipcut.ErrDanglingEscape
	}

	builder.WriteByte('\\')
	builder.WriteByte(l.input[start+1])

	return start + 2, nil
}
