package expr

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/clipcut/clipcut"
)

func TestEval(t *testing.T) {
	e := New()

	tests := []struct {
		name     string
		env      map[string]any
		src      string
		expected []any
	}{
		{
			name:     "arithmetic",
			src:      "1 + 2",
			expected: []any{int64(3)},
		},
		{
			name:     "named value",
			env:      map[string]any{"end": 300},
			src:      "end - 30",
			expected: []any{int64(270)},
		},
		{
			name:     "statement sequence",
			src:      "1; 2; 3",
			expected: []any{int64(1), int64(2), int64(3)},
		},
		{
			name:     "semicolon inside string",
			src:      `"a;b"`,
			expected: []any{"a;b"},
		},
		{
			name:     "string result",
			src:      `"left" + "over"`,
			expected: []any{"leftover"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := e.Eval(tt.env, tt.src)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, results)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	e := New()

	_, err := e.Eval(nil, "1 +")
	assert.IsError(t, err, clipcut.ErrEvaluation)

	_, err = e.Eval(nil, "unknown_name")
	assert.IsError(t, err, clipcut.ErrEvaluation)

	_, err = e.Eval(nil, "  ;  ")
	assert.IsError(t, err, clipcut.ErrNoResults)
}

func TestSplitStatements(t *testing.T) {
	tests := []struct {
		src      string
		expected []string
	}{
		{"1 + 2", []string{"1 + 2"}},
		{"a; b;c", []string{"a", "b", "c"}},
		{`"a;b"; c`, []string{`"a;b"`, "c"}},
		{"'x;y'", []string{"'x;y'"}},
		{";;", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, splitStatements(tt.src))
	}
}
