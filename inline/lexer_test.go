package inline

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/clipcut/clipcut"
)

func lexValues(t *testing.T, input string) []string {
	t.Helper()

	lexemes, err := NewLexer(input).All()
	assert.NoError(t, err)

	values := make([]string, len(lexemes))
	for i, lexeme := range lexemes {
		values[i] = lexeme.Value
	}

	return values
}

func TestLexerSplitsOnCommas(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "plain cells",
			input:    "10,20,#fff",
			expected: []string{"10", "20", "#fff"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
		{
			name:     "empty cells are skipped",
			input:    ",,a,,b,",
			expected: []string{"a", "b"},
		},
		{
			name:     "quoted comma does not split",
			input:    `"a,b",c`,
			expected: []string{`"a,b"`, "c"},
		},
		{
			name:     "quotes kept verbatim",
			input:    `start="end"`,
			expected: []string{`start="end"`},
		},
		{
			name:     "quote opening mid-cell",
			input:    `name="a,b\"c",x=2`,
			expected: []string{`name="a,b\"c"`, "x=2"},
		},
		{
			name:     "escaped comma outside quotes",
			input:    `a\,b,c`,
			expected: []string{`a\,b`, "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, lexValues(t, tt.input))
		})
	}
}

func TestLexerOffsets(t *testing.T) {
	lexemes, err := NewLexer("ab,,cd").All()
	assert.NoError(t, err)

	assert.Equal(t, 2, len(lexemes))
	assert.Equal(t, 0, lexemes[0].Offset)
	assert.Equal(t, 4, lexemes[1].Offset)
}

func TestLexerUnterminatedString(t *testing.T) {
	_, err := NewLexer(`a,"b,c`).All()
	assert.IsError(t, err, clipcut.ErrUnterminatedString)
	assert.IsError(t, err, clipcut.ErrSyntax)
}

func TestLexerDanglingEscape(t *testing.T) {
	_, err := NewLexer(`a,b\`).All()
	assert.IsError(t, err, clipcut.ErrDanglingEscape)
	assert.IsError(t, err, clipcut.ErrSyntax)
}

func TestLexerIsRestartable(t *testing.T) {
	lexer := NewLexer("a,b,c")

	first, err := lexer.All()
	assert.NoError(t, err)

	second, err := lexer.All()
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestQuoted(t *testing.T) {
	assert.True(t, Lexeme{Value: `"end"`}.Quoted())
	assert.False(t, Lexeme{Value: "end"}.Quoted())
	assert.False(t, Lexeme{Value: `"`}.Quoted())
}
