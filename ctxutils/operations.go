package ctxutils

import (
	"context"
	"strings"
)

type Operation string

type Operations struct {
	Ops []Operation
}

const opsSeparator = "/"

func (o Operations) String() string {
	parts := make([]string, 0, len(o.Ops))
	for _, op := range o.Ops {
		parts = append(parts, string(op))
	}
	return strings.Join(parts, opsSeparator)
}

func (o Operations) Last() Operation {
	if len(o.Ops) == 0 {
		return ""
	}
	return o.Ops[len(o.Ops)-1]
}

type ctxKey int

const operationsKey ctxKey = iota

type ContextOption func(ctx context.Context) context.Context

// BuildContext applies opts on top of ctx (context.Background() if nil).
func BuildContext(ctx context.Context, opts ...ContextOption) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	for _, opt := range opts {
		ctx = opt(ctx)
	}
	return ctx
}

// SetContextOperation starts a new operation path.
func SetContextOperation(op Operation) ContextOption {
	return func(ctx context.Context) context.Context {
		return context.WithValue(ctx, operationsKey, Operations{[]Operation{op}})
	}
}

// AddContextOperation appends op to the current operation path.
func AddContextOperation(op Operation) ContextOption {
	return func(ctx context.Context) context.Context {
		parent := GetContextOperations(ctx)
		ops := make([]Operation, len(parent.Ops), len(parent.Ops)+1)
		copy(ops, parent.Ops)
		return context.WithValue(ctx, operationsKey, Operations{append(ops, op)})
	}
}

func GetContextOperations(ctx context.Context) Operations {
	if ctx == nil {
		return Operations{}
	}
	if ops, ok := ctx.Value(operationsKey).(Operations); ok {
		return ops
	}
	return Operations{}
}
