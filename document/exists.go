package document

import (
	"context"
	"net/http"

	"github.com/adamwoolhether/esreq/param"
	"github.com/adamwoolhether/esreq/request"
)

// ExistsOp describes the document existence check.
var ExistsOp = request.MustOperation("exists", http.MethodHead,
	request.WithParams(
		param.NameParent,
		param.NamePreference,
		param.NameRealtime,
		param.NameRefresh,
		param.NameRouting,
	),
)

// ExistsRequest checks whether index/type/id exists. The answer is carried
// by the response status code.
type ExistsRequest struct {
	builder
	index, typ, id string
}

// NewExists returns a HEAD existence check for index/type/id.
func NewExists(t request.Transport, index, typ, id string) *ExistsRequest {
	r := ExistsRequest{index: index, typ: typ, id: id}
	r.b = request.New(ExistsOp, t, r.path, nil)
	return &r
}

func (r *ExistsRequest) path() []string {
	return []string{r.index, r.typ, r.id}
}

// Found executes the request and reports whether the document exists. A
// not found status is a negative answer, not an error.
func (r *ExistsRequest) Found(ctx context.Context) (bool, error) {
	resp, err := r.Execute(ctx)
	if err != nil {
		return false, err
	}
	return resp.Found(), nil
}

func (r *ExistsRequest) Parent(v string) *ExistsRequest {
	r.b.Set(param.String(param.NameParent, v))
	return r
}

func (r *ExistsRequest) Preference(v string) *ExistsRequest {
	r.b.Set(param.String(param.NamePreference, v))
	return r
}

func (r *ExistsRequest) Realtime(v bool) *ExistsRequest {
	r.b.Set(param.Bool(param.NameRealtime, v))
	return r
}

func (r *ExistsRequest) Refresh(v bool) *ExistsRequest {
	r.b.Set(param.Bool(param.NameRefresh, v))
	return r
}

func (r *ExistsRequest) Routing(v string) *ExistsRequest {
	r.b.Set(param.String(param.NameRouting, v))
	return r
}
