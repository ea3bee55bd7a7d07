package document

import (
	"net/http"

	"github.com/adamwoolhether/esreq/param"
	"github.com/adamwoolhether/esreq/request"
)

// GetOp describes the get endpoint.
var GetOp = request.MustOperation("get", http.MethodGet,
	request.WithParams(
		param.NameFields,
		param.NameParent,
		param.NamePreference,
		param.NameRealtime,
		param.NameRefresh,
		param.NameRouting,
		param.NameSource,
		param.NameSourceExclude,
		param.NameSourceInclude,
		param.NameVersion,
		param.NameVersionType,
	),
)

// GetRequest fetches the document at index/type/id.
type GetRequest struct {
	builder
	index, typ, id string
}

// NewGet returns a get request for index/type/id.
func NewGet(t request.Transport, index, typ, id string) *GetRequest {
	r := GetRequest{index: index, typ: typ, id: id}
	r.b = request.New(GetOp, t, r.path, nil)
	return &r
}

func (r *GetRequest) path() []string {
	return []string{r.index, r.typ, r.id}
}

func (r *GetRequest) Fields(v ...string) *GetRequest {
	r.b.Set(param.List(param.NameFields, v...))
	return r
}

func (r *GetRequest) Parent(v string) *GetRequest {
	r.b.Set(param.String(param.NameParent, v))
	return r
}

func (r *GetRequest) Preference(v string) *GetRequest {
	r.b.Set(param.String(param.NamePreference, v))
	return r
}

func (r *GetRequest) Realtime(v bool) *GetRequest {
	r.b.Set(param.Bool(param.NameRealtime, v))
	return r
}

func (r *GetRequest) Refresh(v bool) *GetRequest {
	r.b.Set(param.Bool(param.NameRefresh, v))
	return r
}

func (r *GetRequest) Routing(v string) *GetRequest {
	r.b.Set(param.String(param.NameRouting, v))
	return r
}

// Source controls whether the _source field is returned.
func (r *GetRequest) Source(v bool) *GetRequest {
	r.b.Set(param.Bool(param.NameSource, v))
	return r
}

func (r *GetRequest) SourceExclude(v ...string) *GetRequest {
	r.b.Set(param.List(param.NameSourceExclude, v...))
	return r
}

func (r *GetRequest) SourceInclude(v ...string) *GetRequest {
	r.b.Set(param.List(param.NameSourceInclude, v...))
	return r
}

func (r *GetRequest) Version(v int64) *GetRequest {
	r.b.Set(param.Int(param.NameVersion, v))
	return r
}

func (r *GetRequest) VersionType(v param.VersionType) *GetRequest {
	r.b.Set(param.Enum(param.NameVersionType, v))
	return r
}
