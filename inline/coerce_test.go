package inline

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/clipcut/clipcut"
	"github.com/clipcut/clipcut/contract"
	"github.com/clipcut/clipcut/expr"
)

var spanSpec = NewSpec("span",
	Req("start", contract.Int),
	Req("dur", contract.Int),
	Opt("label", contract.String, "clip"),
)

func evalCoercer(env map[string]any) EvalCoercer {
	return EvalCoercer{Evaluator: expr.New(), Env: env}
}

func TestEvalCoercerResolvesNames(t *testing.T) {
	co := evalCoercer(map[string]any{"end": 300})

	result, err := Parse(spanSpec, "end - 30,60", co)
	assert.NoError(t, err)

	assert.Equal(t, int64(270), result["start"].(int64))
	assert.Equal(t, int64(60), result["dur"].(int64))
}

func TestEvalCoercerUsesLastStatement(t *testing.T) {
	co := evalCoercer(nil)

	field := Field{Name: "start", Contract: contract.Int}

	v, err := co.Coerce(spanSpec, field, "1; 2; 40 + 2")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), v.(int64))
}

func TestEvalCoercerChecksContract(t *testing.T) {
	co := evalCoercer(nil)

	field := Field{Name: "start", Contract: contract.Int}

	_, err := co.Coerce(spanSpec, field, `"not a number"`)
	assert.IsError(t, err, clipcut.ErrCoerce)
	assert.Contains(t, err.Error(), "expected int")
	assert.Contains(t, err.Error(), `"not a number"`)
}

func TestEvalCoercerReportsEvaluationFailure(t *testing.T) {
	co := evalCoercer(nil)

	field := Field{Name: "start", Contract: contract.Int}

	_, err := co.Coerce(spanSpec, field, "nonsense +")
	assert.IsError(t, err, clipcut.ErrCoerce)
}

func TestEvalCoercerEmptyExpression(t *testing.T) {
	co := evalCoercer(nil)

	field := Field{Name: "start", Contract: contract.Int}

	_, err := co.Coerce(spanSpec, field, " ; ")
	assert.IsError(t, err, clipcut.ErrCoerce)
}

func TestDirectCoercerUnquotes(t *testing.T) {
	field := Field{Name: "label", Contract: contract.String}

	v, err := DirectCoercer{}.Coerce(spanSpec, field, `"a\"b"`)
	assert.NoError(t, err)
	assert.Equal(t, `a"b`, v.(string))
}
