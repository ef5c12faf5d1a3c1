package errs

import (
	"context"
	"errors"
	"fmt"
	cu "github.com/nj-eka/LetterStatsGo/ctxutils"
	"time"
)

type Error interface {
	error
	Severity() Severity
	TimeStamp() time.Time
	Kind() Kind
	OperationPath() cu.Operations
	StackTrace() []Frame
	Unwrap() error
}

// E builds an Error from args; for repeated arg types the last one wins.
// Unknown arg types are ignored.
func E(args ...interface{}) Error {
	return build(1, args)
}

// ESkip is E for helpers that build errors on behalf of their caller:
// the stack trace starts skip frames above the ESkip call.
func ESkip(skip int, args ...interface{}) Error {
	return build(skip+1, args)
}

func build(skip int, args []interface{}) Error {
	switch len(args) {
	case 0:
		panic("call to errs.E with no arguments")
	case 1:
		if e, ok := args[0].(Error); ok {
			return e
		}
	}
	e := newError()
	for _, arg := range args {
		switch a := arg.(type) {
		case Severity:
			e.severity = a
		case Kind:
			e.kind = a
		case cu.Operation:
			e.ops = cu.Operations{Ops: []cu.Operation{a}}
		case cu.Operations:
			e.ops = a
		case context.Context:
			e.ops = cu.GetContextOperations(a)
		case Error:
			e.err = a
			if e.kind == KindOther {
				e.kind = a.Kind()
			}
		case error:
			e.err = a
		case string:
			e.err = errors.New(a)
		}
	}
	if e.err == nil {
		e.err = errors.New(e.kind.String())
	}
	e.frames = Trace(skip + 2)
	return e
}

type errorData struct {
	err       error
	severity  Severity
	kind      Kind
	ops       cu.Operations
	timeStamp time.Time
	frames    []Frame
}

func newError() *errorData {
	return &errorData{
		severity:  SeverityError,
		kind:      KindOther,
		timeStamp: time.Now(),
	}
}

func (e *errorData) Error() string {
	if len(e.ops.Ops) == 0 {
		return e.err.Error()
	}
	return fmt.Sprintf("%s: %s", e.ops, e.err)
}

func (e *errorData) Severity() Severity           { return e.severity }
func (e *errorData) TimeStamp() time.Time         { return e.timeStamp }
func (e *errorData) Kind() Kind                   { return e.kind }
func (e *errorData) OperationPath() cu.Operations { return e.ops }
func (e *errorData) StackTrace() []Frame          { return e.frames }
func (e *errorData) Unwrap() error                { return e.err }
