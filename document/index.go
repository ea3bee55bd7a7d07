package document

import (
	"net/http"
	"time"

	"github.com/adamwoolhether/esreq/param"
	"github.com/adamwoolhether/esreq/request"
)

// IndexOp describes the index endpoint. op_type defaults to create.
var IndexOp = request.MustOperation("index", http.MethodPost,
	request.WithBody(),
	request.WithParams(
		param.NameConsistency,
		param.NameOpType,
		param.NameParent,
		param.NameRefresh,
		param.NameRouting,
		param.NameTimeout,
		param.NameTimestamp,
		param.NameTTL,
		param.NameVersion,
		param.NameVersionType,
	),
	request.WithDefaults(param.Enum(param.NameOpType, param.OpCreate)),
)

// IndexRequest stores a document under index/type, with an optional id.
type IndexRequest struct {
	builder
	index, typ, id string
}

// NewIndex returns an index request for doc, which is encoded as JSON.
func NewIndex(t request.Transport, index, typ string, doc any) *IndexRequest {
	r := IndexRequest{index: index, typ: typ}
	r.b = request.New(IndexOp, t, r.path, request.JSON(doc))
	return &r
}

func (r *IndexRequest) path() []string {
	if r.id == "" {
		return []string{r.index, r.typ}
	}
	return []string{r.index, r.typ, r.id}
}

// ID sets the document id. Without one the server generates it.
func (r *IndexRequest) ID(id string) *IndexRequest {
	r.id = id
	return r
}

func (r *IndexRequest) Consistency(v param.Consistency) *IndexRequest {
	r.b.Set(param.Enum(param.NameConsistency, v))
	return r
}

func (r *IndexRequest) OpType(v param.OpType) *IndexRequest {
	r.b.Set(param.Enum(param.NameOpType, v))
	return r
}

func (r *IndexRequest) Parent(v string) *IndexRequest {
	r.b.Set(param.String(param.NameParent, v))
	return r
}

func (r *IndexRequest) Refresh(v bool) *IndexRequest {
	r.b.Set(param.Bool(param.NameRefresh, v))
	return r
}

func (r *IndexRequest) Routing(v string) *IndexRequest {
	r.b.Set(param.String(param.NameRouting, v))
	return r
}

func (r *IndexRequest) Timeout(v param.Timeout) *IndexRequest {
	r.b.Set(param.TimeoutParam(param.NameTimeout, v))
	return r
}

func (r *IndexRequest) Timestamp(v time.Time) *IndexRequest {
	r.b.Set(param.Time(param.NameTimestamp, v))
	return r
}

func (r *IndexRequest) TTL(v param.Timeout) *IndexRequest {
	r.b.Set(param.TimeoutParam(param.NameTTL, v))
	return r
}

func (r *IndexRequest) Version(v int64) *IndexRequest {
	r.b.Set(param.Int(param.NameVersion, v))
	return r
}

func (r *IndexRequest) VersionType(v param.VersionType) *IndexRequest {
	r.b.Set(param.Enum(param.NameVersionType, v))
	return r
}
