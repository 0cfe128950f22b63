package param

import (
	"fmt"
	"testing"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Func is the template signature. The body reads its arguments from the
// bound specification.
type Func func(t *testing.T, c *Spec)

// Arg is one argument to Params: a specification (*Spec), an explicitly keyed
// specification (Key), a sequence (List), a mapping (Map), or a setting (Set).
type Arg interface {
	isArg()
}

func (*Spec) isArg() {}

// List is a sequence of specifications, named by derivation.
type List []*Spec

func (List) isArg() {}

// Map maps explicit case keys to specifications. Entries are expanded in
// sorted key order.
type Map map[string]*Spec

func (Map) isArg() {}

type keyedArg struct {
	key  string
	spec *Spec
}

func (keyedArg) isArg() {}

// Key binds a specification to an explicit case key.
func Key(key string, c *Spec) Arg {
	return keyedArg{key: key, spec: c}
}

type settingArg struct {
	name  string
	value any
}

func (settingArg) isArg() {}

// SettingIncludeKey makes the case key the first positional argument of every
// specification of the template.
const SettingIncludeKey = "include_key"

var validSettings = map[string]bool{
	SettingIncludeKey: true,
}

// Set assigns a reserved setting. Unrecognized names make Params fail.
func Set(name string, value any) Arg {
	return settingArg{name: name, value: value}
}

// IncludeKey is shorthand for Set(SettingIncludeKey, true).
func IncludeKey() Arg {
	return Set(SettingIncludeKey, true)
}

type entry struct {
	key  string
	spec *Spec
}

// Params normalizes the given specifications and settings into a Template for
// fn. Explicitly keyed entries (Key, Map) come first in declaration order
// (Map in sorted key order), followed by derived-name entries (*Spec, List).
// Any key occurring twice, derived or explicit, is an error.
func Params(fn Func, args ...Arg) (*Template, error) {
	tpl := &Template{
		fn:       fn,
		settings: map[string]any{},
	}
	var positional []*Spec
	var keyed []entry
	for _, arg := range args {
		switch arg := arg.(type) {
		case *Spec:
			positional = append(positional, arg)
		case List:
			positional = append(positional, arg...)
		case keyedArg:
			keyed = append(keyed, entry{key: arg.key, spec: arg.spec})
		case Map:
			keys := maps.Keys(arg)
			slices.Sort(keys)
			for _, key := range keys {
				keyed = append(keyed, entry{key: key, spec: arg[key]})
			}
		case settingArg:
			if !validSettings[arg.name] {
				return nil, fmt.Errorf("%w: %q", ErrInvalidSetting, arg.name)
			}
			tpl.settings[arg.name] = arg.value
		default:
			return nil, fmt.Errorf("cannot use %T as params argument", arg)
		}
	}

	seen := map[string]bool{}
	for _, e := range keyed {
		if seen[e.key] {
			return nil, fmt.Errorf("%w: explicit key %q occurs twice", ErrNameCollision, e.key)
		}
		seen[e.key] = true
		tpl.entries = append(tpl.entries, e)
	}
	for _, c := range positional {
		key := c.Name()
		if seen[key] {
			return nil, fmt.Errorf("%w: derived name %q collides with existing key", ErrNameCollision, key)
		}
		seen[key] = true
		tpl.entries = append(tpl.entries, entry{key: key, spec: c})
	}
	return tpl, nil
}

// MustParams is Params, panicking on error. Meant for package-level template
// declarations, where a bad declaration should fail loading the test binary.
func MustParams(fn Func, args ...Arg) *Template {
	tpl, err := Params(fn, args...)
	if err != nil {
		panic(fmt.Sprintf("params: %v", err))
	}
	return tpl
}
