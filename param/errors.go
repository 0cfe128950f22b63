package param

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSetting = errors.New("invalid setting")
	ErrNameCollision  = errors.New("name collision")
	ErrNotRunnable    = errors.New("template is not directly runnable")
)

// errGroup gathers registration and expansion errors so a suite can report
// all of them at once instead of just the first.
type errGroup struct {
	errs []error
}

func (g *errGroup) appendf(format string, args ...any) {
	g.errs = append(g.errs, fmt.Errorf(format, args...))
}

func (g *errGroup) append(errs ...error) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		g.errs = append(g.errs, err)
	}
}

func (g *errGroup) err() error {
	if len(g.errs) == 0 {
		return nil
	}
	return errors.Join(g.errs...)
}
