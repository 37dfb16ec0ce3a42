package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"

	"github.com/knitlang/knit/form"
)

// ErrorKind classifies rewriting failures.
type ErrorKind int8

// The error taxonomy. All errors are detected eagerly during rewriting and
// reported with the offending sub-form attached; rewriting is deterministic
// and pure, so there is no retry or recovery.
const (
	BadToken   ErrorKind = iota + 1 // macro invocation with an invalid argument-list shape
	BadBinding                      // odd binding list, or an ill-formed binding left-hand side
	BadNode                         // a form kind without a rule-table action; internal invariant failure
)

func (k ErrorKind) String() string {
	switch k {
	case BadToken:
		return "malformed token"
	case BadBinding:
		return "malformed binding"
	case BadNode:
		return "unsupported node"
	}
	return "unknown error"
}

// Error is a rewriting failure, carrying the offending sub-form for
// diagnosis.
type Error struct {
	Kind      ErrorKind
	Offending form.Form
	msg       string
}

func (e *Error) Error() string {
	if e.Offending == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.msg, e.Offending)
}

func newError(kind ErrorKind, offending form.Form, format string, args ...interface{}) *Error {
	err := &Error{Kind: kind, Offending: offending, msg: fmt.Sprintf(format, args...)}
	tracer().Errorf("rewrite error: %v", err)
	return err
}
