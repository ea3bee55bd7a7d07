package request

import (
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/adamwoolhether/esreq/param"
)

// Operation describes one endpoint: its HTTP method, whether it sends a
// body, the optional query parameters it accepts in declaration order, and
// their defaults. Operations are immutable once built.
type Operation struct {
	name     string
	method   string
	body     bool
	params   []string
	slots    map[string]int
	defaults []param.Param
}

// OperationOption is a functional option for [NewOperation].
type OperationOption func(*Operation) error

// WithBody declares that the operation sends a request body.
func WithBody() OperationOption {
	return func(op *Operation) error {
		op.body = true
		return nil
	}
}

// WithParams declares the optional query parameters, in the order they are
// written to the query string. It may be repeated to append more names.
func WithParams(names ...string) OperationOption {
	return func(op *Operation) error {
		for _, name := range names {
			if name == "" {
				return errors.New("param name must not be empty")
			}
			if _, ok := op.slots[name]; ok {
				return fmt.Errorf("param %q declared twice", name)
			}
			op.slots[name] = len(op.params)
			op.params = append(op.params, name)
		}
		return nil
	}
}

// WithDefaults sets values a new builder starts with. Each default must
// name a parameter declared before it.
func WithDefaults(ps ...param.Param) OperationOption {
	return func(op *Operation) error {
		for _, p := range ps {
			if _, ok := op.slots[p.Name()]; !ok {
				return fmt.Errorf("default for %q: %w", p.Name(), ErrUnknownParam)
			}
			op.defaults = append(op.defaults, p)
		}
		return nil
	}
}

// NewOperation builds an Operation. It fails with [ErrMethodMismatch] when a
// body is declared for a method that cannot carry one.
func NewOperation(name, method string, optFns ...OperationOption) (*Operation, error) {
	if name == "" {
		return nil, errors.New("operation name must not be empty")
	}

	op := Operation{
		name:   name,
		method: method,
		slots:  make(map[string]int),
	}
	for _, opt := range optFns {
		if err := opt(&op); err != nil {
			return nil, fmt.Errorf("operation %s: %w", name, err)
		}
	}

	switch method {
	case http.MethodPost, http.MethodPut:
	case http.MethodGet, http.MethodHead, http.MethodDelete:
		if op.body {
			return nil, fmt.Errorf("operation %s: %w: %s never carries a body", name, ErrMethodMismatch, method)
		}
	default:
		return nil, fmt.Errorf("operation %s: %w: unsupported method %q", name, ErrMethodMismatch, method)
	}

	return &op, nil
}

// MustOperation is like [NewOperation] but panics on error. It is meant for
// package level descriptors so a bad method/body pairing fails at init.
func MustOperation(name, method string, optFns ...OperationOption) *Operation {
	op, err := NewOperation(name, method, optFns...)
	if err != nil {
		panic(err)
	}
	return op
}

// Name returns the operation name used in logs and spans.
func (op *Operation) Name() string { return op.name }

// Method returns the HTTP method.
func (op *Operation) Method() string { return op.method }

// HasBody reports whether the operation sends a body.
func (op *Operation) HasBody() bool { return op.body }

// Params returns the declared parameter names in declaration order.
func (op *Operation) Params() []string { return slices.Clone(op.params) }

// Declares reports whether name is one of the operation's parameters.
func (op *Operation) Declares(name string) bool {
	_, ok := op.slots[name]
	return ok
}
