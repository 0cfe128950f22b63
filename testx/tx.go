// Package testx contains assert helpers used by the paramx tests themselves.
package testx

import (
	"errors"
	"reflect"
	"testing"
)

func NewTx(t *testing.T) *Tx {
	return &Tx{t: t}
}

type Tx struct {
	t *testing.T
}

func (tx *Tx) T() *testing.T {
	return tx.t
}

func (tx *Tx) AssertEqual(want, have any) {
	tx.t.Helper()
	if reflect.DeepEqual(want, have) {
		return
	}
	if cl := changes(want, have); cl != "" {
		tx.t.Fatalf("want %+v, have %+v; changes: %s", want, have, cl)
	}
	tx.t.Fatalf("want %+v, have %+v", want, have)
}

func (tx *Tx) AssertTrue(v bool) {
	tx.t.Helper()
	if v {
		return
	}
	tx.t.Fatalf("expect true; got false")
}

func (tx *Tx) AssertNoErr(err error) {
	tx.t.Helper()
	if err == nil {
		return
	}
	tx.t.Fatalf("error is not-nil but: %v", err)
}

func (tx *Tx) AssertErr(err error) {
	tx.t.Helper()
	if err != nil {
		return
	}
	tx.t.Fatalf("expect err; got none")
}

func (tx *Tx) AssertErrIs(err, target error) {
	tx.t.Helper()
	if errors.Is(err, target) {
		return
	}
	tx.t.Fatalf("expect err matching %v; got %v", target, err)
}
