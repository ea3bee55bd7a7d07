package document

import (
	"net/http"

	"github.com/adamwoolhether/esreq/param"
	"github.com/adamwoolhether/esreq/request"
)

// DeleteOp describes the delete endpoint. It never carries a body.
var DeleteOp = request.MustOperation("delete", http.MethodDelete,
	request.WithParams(
		param.NameConsistency,
		param.NameParent,
		param.NameRefresh,
		param.NameRouting,
		param.NameTimeout,
		param.NameVersion,
		param.NameVersionType,
	),
)

// DeleteRequest removes the document at index/type/id.
type DeleteRequest struct {
	builder
	index, typ, id string
}

// NewDelete returns a delete request for index/type/id.
func NewDelete(t request.Transport, index, typ, id string) *DeleteRequest {
	r := DeleteRequest{index: index, typ: typ, id: id}
	r.b = request.New(DeleteOp, t, r.path, nil)
	return &r
}

func (r *DeleteRequest) path() []string {
	return []string{r.index, r.typ, r.id}
}

func (r *DeleteRequest) Consistency(v param.Consistency) *DeleteRequest {
	r.b.Set(param.Enum(param.NameConsistency, v))
	return r
}

func (r *DeleteRequest) Parent(v string) *DeleteRequest {
	r.b.Set(param.String(param.NameParent, v))
	return r
}

func (r *DeleteRequest) Refresh(v bool) *DeleteRequest {
	r.b.Set(param.Bool(param.NameRefresh, v))
	return r
}

func (r *DeleteRequest) Routing(v string) *DeleteRequest {
	r.b.Set(param.String(param.NameRouting, v))
	return r
}

func (r *DeleteRequest) Timeout(v param.Timeout) *DeleteRequest {
	r.b.Set(param.TimeoutParam(param.NameTimeout, v))
	return r
}

func (r *DeleteRequest) Version(v int64) *DeleteRequest {
	r.b.Set(param.Int(param.NameVersion, v))
	return r
}

func (r *DeleteRequest) VersionType(v param.VersionType) *DeleteRequest {
	r.b.Set(param.Enum(param.NameVersionType, v))
	return r
}
