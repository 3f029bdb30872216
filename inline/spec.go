package inline

import (
	"fmt"

	"github.com/clipcut/clipcut/contract"
)

// required is the out-of-band marker seeded into the result for fields
// with no default. It can never collide with user data because the type
// is unexported.
type required struct{}

func (required) String() string { return "<required>" }

// Field declares one sub-argument of a structured flag.
type Field struct {
	Name     string
	Contract contract.Contract
	Default  any
	Required bool // no default; a value must be supplied
}

// Req declares a field that must be supplied in every payload.
func Req(name string, c contract.Contract) Field {
	return Field{Name: name, Contract: c, Required: true}
}

// Opt declares a field with a default used when the payload omits it.
func Opt(name string, c contract.Contract, def any) Field {
	return Field{Name: name, Contract: c, Default: def}
}

// Spec is the ordered sub-grammar of one structured flag. Build it once at
// grammar-definition time; it is read-only afterward and safe to share
// across parses.
type Spec struct {
	Name   string
	Fields []Field
}

// NewSpec creates a Spec. Duplicate field names are a programmer error.
func NewSpec(name string, fields ...Field) Spec {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.Name] {
			panic(fmt.Sprintf("inline: field %q declared twice in %s", f.Name, name))
		}

		seen[f.Name] = true
	}

	return Spec{Name: name, Fields: fields}
}

// FieldNames returns the declared field names in order.
func (s Spec) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}

	return names
}
