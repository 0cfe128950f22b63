// Package param expands a single test-template function into multiple named,
// independently selectable test cases, each bound to its own argument list.
//
// A call specification captures one invocation's positional and keyword
// arguments for later replay:
//
//	param.C(1, 2)
//	param.C(1, 2).KW("foo", 3)
//
// Specifications are attached to a template function either standalone
//
//	tpl := param.MustParams(fn, param.C(1), param.C(2))
//	cases, _ := tpl.Expand("test_foo")
//
// or through a Suite, which registers plain tests and templates alike and
// materializes everything as named subtests:
//
//	s := param.NewSuite()
//	s.Params("test_foo", fn, param.C(1), param.C(2))
//	s.Run(t)
//
// Generated case names are <template-name>_<key>, where the key is either
// given explicitly (param.Key, param.Map) or derived from the specification's
// arguments. Derived names are deterministic; keyword arguments keep their
// insertion order.
package param

import (
	"strings"
	"unicode"

	"github.com/mazzegi/paramx/convert"
)

// C creates a call specification holding the given positional arguments.
func C(args ...any) *Spec {
	return &Spec{args: args}
}

type kwArg struct {
	name  string
	value any
}

// Spec is one invocation's argument list: positional arguments plus keyword
// arguments in insertion order.
type Spec struct {
	args []any
	kws  []kwArg
}

// KW adds a keyword argument and returns the specification for chaining.
// Adding a name twice replaces the value but keeps the original position.
func (c *Spec) KW(name string, value any) *Spec {
	for i, kw := range c.kws {
		if kw.name == name {
			c.kws[i].value = value
			return c
		}
	}
	c.kws = append(c.kws, kwArg{name: name, value: value})
	return c
}

// NArgs returns the number of positional arguments.
func (c *Spec) NArgs() int {
	return len(c.args)
}

// Arg returns the i-th positional argument.
func (c *Spec) Arg(i int) (any, bool) {
	if i < 0 || i >= len(c.args) {
		return nil, false
	}
	return c.args[i], true
}

// Args returns a copy of the positional arguments.
func (c *Spec) Args() []any {
	args := make([]any, len(c.args))
	copy(args, c.args)
	return args
}

// Keyword returns the keyword argument with the given name.
func (c *Spec) Keyword(name string) (any, bool) {
	for _, kw := range c.kws {
		if kw.name == name {
			return kw.value, true
		}
	}
	return nil, false
}

// Keywords returns the keyword argument names in insertion order.
func (c *Spec) Keywords() []string {
	var names []string
	for _, kw := range c.kws {
		names = append(names, kw.name)
	}
	return names
}

// prependArg inserts value as the new first positional argument. Used for
// key-injection only; must not be applied twice to the same specification.
func (c *Spec) prependArg(value any) {
	c.args = append([]any{value}, c.args...)
}

// Name derives a case name from the arguments: positional values joined with
// "_", keyword entries as name_value joined with "__", both segments joined
// with "__". Whitespace inside values becomes "_". Pure and deterministic.
func (c *Spec) Name() string {
	var asl []string
	for _, arg := range c.args {
		asl = append(asl, normalizeName(arg))
	}
	var ksl []string
	for _, kw := range c.kws {
		ksl = append(ksl, kw.name+"_"+normalizeName(kw.value))
	}
	var segs []string
	if s := strings.Join(asl, "_"); s != "" {
		segs = append(segs, s)
	}
	if s := strings.Join(ksl, "__"); s != "" {
		segs = append(segs, s)
	}
	return strings.Join(segs, "__")
}

func normalizeName(v any) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, convert.String(v))
}
