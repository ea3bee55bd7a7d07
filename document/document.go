package document

import (
	"context"

	"github.com/adamwoolhether/esreq/request"
	"github.com/adamwoolhether/esreq/transport"
)

// Fixed path segments.
const (
	countSegment = "_count"
	bulkSegment  = "_bulk"
)

// builder is embedded by every request type so they share Call and Execute.
type builder struct {
	b *request.Builder
}

// Call derives the method, path, query and body without performing I/O.
func (r builder) Call() (transport.Call, error) {
	return r.b.Call()
}

// Execute sends the request. The response is returned for any status code.
func (r builder) Execute(ctx context.Context) (*transport.Response, error) {
	return r.b.Execute(ctx)
}

// Builder exposes the underlying generic builder.
func (r builder) Builder() *request.Builder {
	return r.b
}

// segments drops empty optional segments and appends the fixed tail.
func segments(optional []string, tail ...string) []string {
	out := make([]string, 0, len(optional)+len(tail))
	for _, s := range optional {
		if s != "" {
			out = append(out, s)
		}
	}
	return append(out, tail...)
}
