package request

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/adamwoolhether/esreq/param"
	"github.com/adamwoolhether/esreq/transport"
)

var (
	// ErrTransport wraps failures returned by the [Transport].
	ErrTransport = errors.New("transport failure")
	// ErrSerialization wraps body encoding failures.
	ErrSerialization = errors.New("serialization failure")
	// ErrMethodMismatch reports a body declared for a method that forbids
	// one, or a builder whose body presence disagrees with its operation.
	ErrMethodMismatch = errors.New("method and body mismatch")
	// ErrUnknownParam reports a parameter the operation does not declare.
	ErrUnknownParam = errors.New("parameter not declared for operation")
	// ErrEmptyPathSegment reports a required path field left empty.
	ErrEmptyPathSegment = errors.New("empty path segment")
)

// Transport performs a derived call. [*transport.Conn] is the production
// implementation; the handle is shared, never owned, by builders.
type Transport interface {
	Perform(ctx context.Context, call transport.Call) (*transport.Response, error)
}

// Body is a request payload with its wire encoding.
type Body interface {
	Encode() ([]byte, error)
	ContentType() string
}

type jsonBody struct {
	v any
}

// JSON returns a Body encoding v as a single JSON value.
func JSON(v any) Body {
	return jsonBody{v: v}
}

func (j jsonBody) Encode() ([]byte, error) {
	return json.Marshal(j.v)
}

func (jsonBody) ContentType() string {
	return "application/json"
}

// Builder assembles one request for an [Operation]. Required path fields
// live in the path rule; optional parameters are set with [Builder.Set].
// A Builder is not safe for concurrent mutation.
type Builder struct {
	op     *Operation
	t      Transport
	path   func() []string
	values []param.Param
	body   Body
	err    error
}

// New returns a Builder for op. path is evaluated on every derivation so
// setters that affect the path (such as an optional id) are honoured.
func New(op *Operation, t Transport, path func() []string, body Body) *Builder {
	b := Builder{
		op:     op,
		t:      t,
		path:   path,
		values: make([]param.Param, len(op.params)),
		body:   body,
	}

	switch {
	case op.body && body == nil:
		b.err = fmt.Errorf("%w: %s requires a body", ErrMethodMismatch, op.name)
	case !op.body && body != nil:
		b.err = fmt.Errorf("%w: %s %s does not take a body", ErrMethodMismatch, op.method, op.name)
	}

	for _, p := range op.defaults {
		b.values[op.slots[p.Name()]] = p
	}

	return &b
}

// Set assigns an optional parameter, replacing any previous or default
// value. Setting a parameter the operation does not declare makes
// [Builder.Call] fail with [ErrUnknownParam].
func (b *Builder) Set(p param.Param) *Builder {
	slot, ok := b.op.slots[p.Name()]
	if !ok {
		if b.err == nil {
			b.err = fmt.Errorf("%w: %q on %s", ErrUnknownParam, p.Name(), b.op.name)
		}
		return b
	}

	b.values[slot] = p
	return b
}

// Get returns the current value of the named parameter.
func (b *Builder) Get(name string) (param.Param, bool) {
	slot, ok := b.op.slots[name]
	if !ok || b.values[slot].IsZero() {
		return param.Param{}, false
	}
	return b.values[slot], true
}

// Operation returns the descriptor the builder was created for.
func (b *Builder) Operation() *Operation {
	return b.op
}

// Path returns the path segments for the current field values.
func (b *Builder) Path() []string {
	return b.path()
}

// Query returns the set parameters in declaration order. Unset parameters
// contribute nothing.
func (b *Builder) Query() []param.Pair {
	var pairs []param.Pair
	for _, p := range b.values {
		if p.IsZero() {
			continue
		}
		pairs = append(pairs, p.Pair())
	}
	return pairs
}

// Call derives the method, path, query pairs and body without performing
// any I/O. Repeated calls on an unmodified builder yield equal results.
// An empty required path field fails with [ErrEmptyPathSegment].
func (b *Builder) Call() (transport.Call, error) {
	if b.err != nil {
		return transport.Call{}, b.err
	}

	path := b.path()
	if len(path) == 0 {
		return transport.Call{}, fmt.Errorf("%w: %s has no path", ErrEmptyPathSegment, b.op.name)
	}
	for i, seg := range path {
		if seg == "" {
			return transport.Call{}, fmt.Errorf("%w: %s segment %d", ErrEmptyPathSegment, b.op.name, i)
		}
	}

	call := transport.Call{
		Operation: b.op.name,
		Method:    b.op.method,
		Path:      path,
		Query:     b.Query(),
	}

	if b.body != nil {
		data, err := b.body.Encode()
		if err != nil {
			return transport.Call{}, fmt.Errorf("%w: encoding %s body: %w", ErrSerialization, b.op.name, err)
		}
		call.Body = data
		call.ContentType = b.body.ContentType()
	}

	return call, nil
}

// Execute derives the call and hands it to the transport. The response is
// returned whatever its status code.
func (b *Builder) Execute(ctx context.Context) (*transport.Response, error) {
	call, err := b.Call()
	if err != nil {
		return nil, err
	}

	if b.t == nil {
		return nil, fmt.Errorf("%w: no transport configured", ErrTransport)
	}

	resp, err := b.t.Perform(ctx, call)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTransport, b.op.name, err)
	}

	return resp, nil
}
