package testx

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/r3labs/diff/v3"
	"golang.org/x/exp/constraints"
)

func AssertEqual(t *testing.T, want, have any) {
	t.Helper()
	if reflect.DeepEqual(want, have) {
		return
	}
	if cl := changes(want, have); cl != "" {
		t.Fatalf("want %+v, have %+v; changes: %s", want, have, cl)
	}
	t.Fatalf("want %+v, have %+v", want, have)
}

func AssertInRange[T constraints.Ordered](t *testing.T, val, lower, upper T) {
	t.Helper()
	if val >= lower && val <= upper {
		return
	}
	t.Fatalf("%v not in range [%v, %v]", val, lower, upper)
}

func AssertNoErr(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		return
	}
	t.Fatalf("error is not-nil but: %v", err)
}

func AssertErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		return
	}
	t.Fatalf("expect err; got none")
}

// changes renders a structured changelog of want vs have.
// Empty for values diff cannot handle (it only compares like kinds).
func changes(want, have any) string {
	cl, err := diff.Diff(want, have)
	if err != nil || len(cl) == 0 {
		return ""
	}
	var sl []string
	for _, ch := range cl {
		sl = append(sl, fmt.Sprintf("%s %s: %v -> %v", ch.Type, strings.Join(ch.Path, "."), ch.From, ch.To))
	}
	return strings.Join(sl, ", ")
}
