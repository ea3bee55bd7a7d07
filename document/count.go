package document

import (
	"net/http"

	"github.com/adamwoolhether/esreq/param"
	"github.com/adamwoolhether/esreq/request"
)

// CountOp describes the count endpoint.
var CountOp = request.MustOperation("count", http.MethodGet,
	request.WithParams(
		param.NameIgnoreUnavailable,
		param.NameAllowNoIndices,
		param.NameExpandWildcards,
		param.NameMinScore,
		param.NamePreference,
		param.NameRouting,
		param.NameSource,
	),
)

// CountRequest counts documents, optionally scoped to an index and type.
type CountRequest struct {
	builder
	index, typ string
}

// NewCount returns a count request. An empty index or typ is left out of
// the path.
func NewCount(t request.Transport, index, typ string) *CountRequest {
	r := CountRequest{index: index, typ: typ}
	r.b = request.New(CountOp, t, r.path, nil)
	return &r
}

func (r *CountRequest) path() []string {
	return segments([]string{r.index, r.typ}, countSegment)
}

func (r *CountRequest) IgnoreUnavailable(v bool) *CountRequest {
	r.b.Set(param.Bool(param.NameIgnoreUnavailable, v))
	return r
}

func (r *CountRequest) AllowNoIndices(v bool) *CountRequest {
	r.b.Set(param.Bool(param.NameAllowNoIndices, v))
	return r
}

func (r *CountRequest) ExpandWildcards(v param.ExpandWildcards) *CountRequest {
	r.b.Set(param.Enum(param.NameExpandWildcards, v))
	return r
}

// MinScore excludes documents scoring below v.
func (r *CountRequest) MinScore(v float64) *CountRequest {
	r.b.Set(param.Float(param.NameMinScore, v))
	return r
}

func (r *CountRequest) Preference(v string) *CountRequest {
	r.b.Set(param.String(param.NamePreference, v))
	return r
}

func (r *CountRequest) Routing(v string) *CountRequest {
	r.b.Set(param.String(param.NameRouting, v))
	return r
}

func (r *CountRequest) Source(v bool) *CountRequest {
	r.b.Set(param.Bool(param.NameSource, v))
	return r
}
