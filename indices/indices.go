package indices

import (
	"context"
	"net/http"
	"strings"

	"github.com/adamwoolhether/esreq/param"
	"github.com/adamwoolhether/esreq/request"
	"github.com/adamwoolhether/esreq/transport"
)

// ExistsOp describes the index existence check.
var ExistsOp = request.MustOperation("indices.exists", http.MethodHead,
	request.WithParams(
		param.NameIgnoreUnavailable,
		param.NameAllowNoIndices,
		param.NameExpandWildcards,
		param.NameLocal,
	),
)

// CreateOp describes index creation.
var CreateOp = request.MustOperation("indices.create", http.MethodPost,
	request.WithParams(
		param.NameTimeout,
		param.NameMasterTimeout,
		param.NameIgnoreUnavailable,
		param.NameAllowNoIndices,
		param.NameExpandWildcards,
	),
)

// CloseOp describes closing an index.
var CloseOp = request.MustOperation("indices.close", http.MethodPost,
	request.WithBody(),
	request.WithParams(
		param.NameTimeout,
		param.NameMasterTimeout,
	),
)

type builder struct {
	b *request.Builder
}

func (r builder) Call() (transport.Call, error) {
	return r.b.Call()
}

func (r builder) Execute(ctx context.Context) (*transport.Response, error) {
	return r.b.Execute(ctx)
}

// ExistsRequest checks whether every listed index exists.
type ExistsRequest struct {
	builder
	indices []string
}

// NewExists returns an existence check for indices, sent as a single comma
// joined path segment. At least one index is required; with none, Call
// fails with [request.ErrEmptyPathSegment] instead of probing the cluster root.
func NewExists(t request.Transport, indices ...string) *ExistsRequest {
	r := ExistsRequest{indices: append([]string(nil), indices...)}
	r.b = request.New(ExistsOp, t, r.path, nil)
	return &r
}

func (r *ExistsRequest) path() []string {
	return []string{strings.Join(r.indices, ",")}
}

// Found executes the request and reports whether the indices exist.
func (r *ExistsRequest) Found(ctx context.Context) (bool, error) {
	resp, err := r.Execute(ctx)
	if err != nil {
		return false, err
	}
	return resp.Found(), nil
}

func (r *ExistsRequest) IgnoreUnavailable(v bool) *ExistsRequest {
	r.b.Set(param.Bool(param.NameIgnoreUnavailable, v))
	return r
}

func (r *ExistsRequest) AllowNoIndices(v bool) *ExistsRequest {
	r.b.Set(param.Bool(param.NameAllowNoIndices, v))
	return r
}

func (r *ExistsRequest) ExpandWildcards(v param.ExpandWildcards) *ExistsRequest {
	r.b.Set(param.Enum(param.NameExpandWildcards, v))
	return r
}

// Local reads cluster state from the receiving node instead of the master.
func (r *ExistsRequest) Local(v bool) *ExistsRequest {
	r.b.Set(param.Bool(param.NameLocal, v))
	return r
}

// CreateRequest creates an index with default settings.
type CreateRequest struct {
	builder
	index string
}

// NewCreate returns a create request for index.
func NewCreate(t request.Transport, index string) *CreateRequest {
	r := CreateRequest{index: index}
	r.b = request.New(CreateOp, t, r.path, nil)
	return &r
}

func (r *CreateRequest) path() []string {
	return []string{r.index}
}

func (r *CreateRequest) Timeout(v param.Timeout) *CreateRequest {
	r.b.Set(param.TimeoutParam(param.NameTimeout, v))
	return r
}

func (r *CreateRequest) MasterTimeout(v param.Timeout) *CreateRequest {
	r.b.Set(param.TimeoutParam(param.NameMasterTimeout, v))
	return r
}

func (r *CreateRequest) IgnoreUnavailable(v bool) *CreateRequest {
	r.b.Set(param.Bool(param.NameIgnoreUnavailable, v))
	return r
}

func (r *CreateRequest) AllowNoIndices(v bool) *CreateRequest {
	r.b.Set(param.Bool(param.NameAllowNoIndices, v))
	return r
}

func (r *CreateRequest) ExpandWildcards(v param.ExpandWildcards) *CreateRequest {
	r.b.Set(param.Enum(param.NameExpandWildcards, v))
	return r
}

// CloseRequest closes an index, sending config as the JSON body.
type CloseRequest struct {
	builder
	index string
}

// NewClose returns a close request for index, encoding config as JSON.
func NewClose(t request.Transport, index string, config any) *CloseRequest {
	r := CloseRequest{index: index}
	r.b = request.New(CloseOp, t, r.path, request.JSON(config))
	return &r
}

func (r *CloseRequest) path() []string {
	return []string{r.index}
}

func (r *CloseRequest) Timeout(v param.Timeout) *CloseRequest {
	r.b.Set(param.TimeoutParam(param.NameTimeout, v))
	return r
}

func (r *CloseRequest) MasterTimeout(v param.Timeout) *CloseRequest {
	r.b.Set(param.TimeoutParam(param.NameMasterTimeout, v))
	return r
}
