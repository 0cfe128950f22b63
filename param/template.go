package param

import (
	"fmt"
	"testing"

	"github.com/mazzegi/paramx/convert"
)

// Template is a test function together with its normalized parameter entries
// and settings. It is not runnable itself; Expand turns it into cases.
type Template struct {
	fn       Func
	entries  []entry
	settings map[string]any
	injected bool
}

// Case is one expanded, runnable test case: a name and the template bound to
// one specification.
type Case struct {
	Name string
	spec *Spec
	fn   Func
}

// Run invokes the template body with the bound specification.
// Failures and panics inside the body propagate unchanged.
func (kase Case) Run(t *testing.T) {
	kase.fn(t, kase.spec)
}

// Spec returns the bound specification.
func (kase Case) Spec() *Spec {
	return kase.spec
}

// Expand materializes one case per entry, named <name>_<key>. If the
// include_key setting is active, each entry's key is prepended to its
// specification's positional arguments; this happens exactly once, so
// expanding a template twice yields cases over the same injected specs.
func (tpl *Template) Expand(name string) ([]Case, error) {
	if name == "" {
		return nil, fmt.Errorf("expand: empty template name")
	}
	if convert.Bool(tpl.settings[SettingIncludeKey]) && !tpl.injected {
		for _, e := range tpl.entries {
			e.spec.prependArg(e.key)
		}
		tpl.injected = true
	}
	cases := make([]Case, 0, len(tpl.entries))
	for _, e := range tpl.entries {
		cases = append(cases, Case{
			Name: name + "_" + e.key,
			spec: e.spec,
			fn:   tpl.fn,
		})
	}
	return cases, nil
}

// runnableErr reports why the template cannot run as-is.
func (tpl *Template) runnableErr() error {
	return fmt.Errorf("%w: expand it into cases first", ErrNotRunnable)
}

// Run fails: a template is only runnable through its expanded cases. Plugging
// an unexpanded template into t.Run surfaces exactly this error.
func (tpl *Template) Run(t *testing.T) {
	t.Helper()
	t.Fatalf("%v", tpl.runnableErr())
}
