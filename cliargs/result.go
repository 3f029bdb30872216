package cliargs

// Result maps canonical keys to typed values for one invocation. It is
// built once by Parse, never mutated afterward, and never shared while
// being built.
type Result struct {
	values map[string]any
}

// Get returns the value stored under key, or nil.
func (r *Result) Get(key string) any {
	return r.values[key]
}

// Has reports whether key holds a non-nil value.
func (r *Result) Has(key string) bool {
	return r.values[key] != nil
}

// String returns the value under key as a string, or "" when unset or not
// a string.
func (r *Result) String(key string) string {
	s, _ := r.values[key].(string)
	return s
}

// Bool returns the value under key as a bool.
func (r *Result) Bool(key string) bool {
	b, _ := r.values[key].(bool)
	return b
}

// Int returns the value under key as an int.
func (r *Result) Int(key string) int {
	n, _ := r.values[key].(int)
	return n
}

// Float returns the value under key as a float64.
func (r *Result) Float(key string) float64 {
	f, _ := r.values[key].(float64)
	return f
}

// List returns the accumulated elements of a list option.
func (r *Result) List(key string) []any {
	l, _ := r.values[key].([]any)
	return l
}

// Strings returns a list option's elements as strings, skipping any
// non-string element.
func (r *Result) Strings(key string) []string {
	list, _ := r.values[key].([]any)

	out := make([]string, 0, len(list))

	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}

	return out
}

// Records returns the parsed payloads of a structured option, one record
// per occurrence in argv order.
func (r *Result) Records(key string) []map[string]any {
	recs, _ := r.values[key].([]map[string]any)
	return recs
}

// Keys returns every canonical key present in the result.
func (r *Result) Keys() []string {
	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		keys = append(keys, k)
	}

	return keys
}
