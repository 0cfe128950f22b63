package param

import (
	"testing"
	"time"
)

// Result is the outcome of one suite member run.
type Result struct {
	Suite     string
	Case      string
	Passed    bool
	StartedOn time.Time
	Duration  time.Duration
}

// Observer receives the result of every member a suite ran.
type Observer interface {
	Observe(res Result)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(res Result)

func (fn ObserverFunc) Observe(res Result) {
	fn(res)
}

type registration struct {
	name string
	fn   func(t *testing.T)
	tpl  *Template
}

// Suite is an ordered registry of plain tests and parameterized templates.
// Run materializes all of them as named subtests.
type Suite struct {
	regs      []registration
	errs      errGroup
	observers []Observer
}

func NewSuite() *Suite {
	return &Suite{}
}

// Notify registers an observer to receive member results from Run.
func (s *Suite) Notify(o Observer) {
	s.observers = append(s.observers, o)
}

// Test registers a plain test under the given name.
func (s *Suite) Test(name string, fn func(t *testing.T)) {
	s.regs = append(s.regs, registration{name: name, fn: fn})
}

// Params registers a template under the given name; one case per
// specification is generated when the suite runs. A bad declaration
// (unknown setting, key collision) fails the whole suite run.
func (s *Suite) Params(name string, fn Func, args ...Arg) {
	tpl, err := Params(fn, args...)
	if err != nil {
		s.errs.appendf("params %q: %w", name, err)
		return
	}
	s.regs = append(s.regs, registration{name: name, tpl: tpl})
}

// Template registers an already collected template under the given name.
func (s *Suite) Template(name string, tpl *Template) {
	s.regs = append(s.regs, registration{name: name, tpl: tpl})
}

// Run expands all registered templates and runs every member as a subtest of
// t, in registration order. Structural errors - bad declarations, a generated
// name colliding with another member - fail the suite before any member runs.
func (s *Suite) Run(t *testing.T) {
	t.Helper()
	members, err := s.materialize()
	if err != nil {
		t.Fatalf("suite: %v", err)
	}
	for _, m := range members {
		s.runMember(t, m)
	}
}

type member struct {
	name string
	fn   func(t *testing.T)
}

// materialize resolves registrations into a flat, collision-checked member
// list. Each generated case binds its own specification.
func (s *Suite) materialize() ([]member, error) {
	errs := errGroup{}
	errs.append(s.errs.err())
	var members []member
	seen := map[string]bool{}
	claim := func(name string) bool {
		if seen[name] {
			errs.appendf("%w: member %q already exists", ErrNameCollision, name)
			return false
		}
		seen[name] = true
		return true
	}
	for _, reg := range s.regs {
		if reg.tpl == nil {
			if claim(reg.name) {
				members = append(members, member{name: reg.name, fn: reg.fn})
			}
			continue
		}
		cases, err := reg.tpl.Expand(reg.name)
		if err != nil {
			errs.appendf("expand %q: %w", reg.name, err)
			continue
		}
		for _, kase := range cases {
			if !claim(kase.Name) {
				continue
			}
			members = append(members, member{name: kase.Name, fn: kase.Run})
		}
	}
	if err := errs.err(); err != nil {
		return nil, err
	}
	return members, nil
}

func (s *Suite) runMember(t *testing.T, m member) {
	startedOn := time.Now()
	passed := t.Run(m.name, m.fn)
	if len(s.observers) == 0 {
		return
	}
	res := Result{
		Suite:     t.Name(),
		Case:      m.name,
		Passed:    passed,
		StartedOn: startedOn,
		Duration:  time.Since(startedOn),
	}
	for _, o := range s.observers {
		o.Observe(res)
	}
}
