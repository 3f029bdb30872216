package inline

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/clipcut/clipcut"
	"github.com/clipcut/clipcut/contract"
)

var rectSpec = NewSpec("rectangle",
	Req("x", contract.Int),
	Req("y", contract.Int),
	Opt("color", contract.Color, "#000"),
	Opt("width", contract.Int, 0),
)

func TestParsePositional(t *testing.T) {
	result, err := Parse(rectSpec, "10,20,#fff", DirectCoercer{})
	assert.NoError(t, err)

	assert.Equal(t, 10, result["x"].(int))
	assert.Equal(t, 20, result["y"].(int))
	assert.Equal(t, "#fff", result["color"].(string))
	assert.Equal(t, 0, result["width"].(int))
}

func TestParseKeyword(t *testing.T) {
	result, err := Parse(rectSpec, "10,20,width=3", DirectCoercer{})
	assert.NoError(t, err)

	assert.Equal(t, 3, result["width"].(int))
	assert.Equal(t, "#000", result["color"].(string))
}

func TestParseQuotedKeywordValue(t *testing.T) {
	result, err := Parse(rectSpec, `10,20,color="#fff"`, DirectCoercer{})
	assert.NoError(t, err)

	assert.Equal(t, "#fff", result["color"].(string))
}

func TestParsePositionalAfterKeyword(t *testing.T) {
	_, err := Parse(rectSpec, "x=1,2", DirectCoercer{})
	assert.IsError(t, err, clipcut.ErrArity)
	assert.Contains(t, err.Error(), "positional argument follows keyword argument")
}

func TestParseTooManyArguments(t *testing.T) {
	_, err := Parse(rectSpec, "1,2,#fff,3,4,5", DirectCoercer{})
	assert.IsError(t, err, clipcut.ErrArity)
	assert.Contains(t, err.Error(), "too many arguments, starting with '4'")
}

func TestParseMissingRequired(t *testing.T) {
	_, err := Parse(rectSpec, "10", DirectCoercer{})
	assert.IsError(t, err, clipcut.ErrArity)
	assert.Contains(t, err.Error(), "'y' must be specified")

	// Keyword form can satisfy a later field while an earlier one stays
	// missing; the earliest missing field is the one reported.
	_, err = Parse(rectSpec, "y=5", DirectCoercer{})
	assert.Contains(t, err.Error(), "'x' must be specified")
}

func TestParseRequiredCheckedAfterWholePayload(t *testing.T) {
	// A later coercion failure wins over the missing-required report.
	_, err := Parse(rectSpec, "10,y=oops", DirectCoercer{})
	assert.IsError(t, err, clipcut.ErrCoerce)
}

func TestParseUnknownKeyword(t *testing.T) {
	_, err := Parse(rectSpec, "10,20,colr=#fff", DirectCoercer{})
	assert.IsError(t, err, clipcut.ErrSchema)
	assert.Contains(t, err.Error(), "unexpected keyword 'colr'")
	assert.Contains(t, err.Error(), "Did you mean:")
	assert.Contains(t, err.Error(), "color")

	_, err = Parse(rectSpec, "10,20,zzzz=1", DirectCoercer{})
	assert.IsError(t, err, clipcut.ErrSchema)
	assert.Contains(t, err.Error(), "keywords available:")
	assert.Contains(t, err.Error(), "x, y, color, width")
}

func TestParseEmptyPayload(t *testing.T) {
	spec := NewSpec("attrs", Opt("api", contract.String, "1"))

	result, err := Parse(spec, "", DirectCoercer{})
	assert.NoError(t, err)
	assert.Equal(t, "1", result["api"].(string))
}

func TestParseCoercionErrorNamesContract(t *testing.T) {
	_, err := Parse(rectSpec, "ten,20", DirectCoercer{})
	assert.IsError(t, err, clipcut.ErrCoerce)
	assert.Contains(t, err.Error(), "int")
}

func TestParseLexerErrorPropagates(t *testing.T) {
	_, err := Parse(rectSpec, `10,"20`, DirectCoercer{})
	assert.IsError(t, err, clipcut.ErrSyntax)
}

func TestNewSpecRejectsDuplicateFields(t *testing.T) {
	assert.Panics(t, func() {
		NewSpec("bad", Req("x", contract.Int), Opt("x", contract.Int, 0))
	})
}

func TestUnescapedEquals(t *testing.T) {
	tests := []struct {
		lexeme   string
		expected int
	}{
		{"x=1", 1},
		{"color=#fff", 5},
		{"10", -1},
		{`"x=1"`, -1},
		{`\=x`, -1},
		{`name="a=b"`, 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, unescapedEquals(tt.lexeme))
	}
}

func TestUnquote(t *testing.T) {
	assert.Equal(t, "end", Unquote(`"end"`))
	assert.Equal(t, "end", Unquote("end"))
	assert.Equal(t, `a"b`, Unquote(`"a\"b"`))
	assert.Equal(t, "a,b", Unquote(`a\,b`))
}

func TestFieldNames(t *testing.T) {
	assert.Equal(t, []string{"x", "y", "color", "width"}, rectSpec.FieldNames())
	assert.True(t, strings.HasPrefix(rectSpec.Name, "rect"))
}
