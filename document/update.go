package document

import (
	"net/http"
	"time"

	"github.com/adamwoolhether/esreq/param"
	"github.com/adamwoolhether/esreq/request"
)

// UpdateOp describes the partial update endpoint.
var UpdateOp = request.MustOperation("update", http.MethodPost,
	request.WithBody(),
	request.WithParams(
		param.NameConsistency,
		param.NameFields,
		param.NameLang,
		param.NameParent,
		param.NameRefresh,
		param.NameRetryOnConflict,
		param.NameRouting,
		param.NameScript,
		param.NameScriptID,
		param.NameScriptedUpsert,
		param.NameTimeout,
		param.NameTimestamp,
		param.NameTTL,
		param.NameVersion,
		param.NameVersionType,
	),
)

// UpdateRequest applies a partial document or script to index/type/id.
type UpdateRequest struct {
	builder
	index, typ, id string
}

// NewUpdate returns an update request with body encoded as JSON.
func NewUpdate(t request.Transport, index, typ, id string, body any) *UpdateRequest {
	r := UpdateRequest{index: index, typ: typ, id: id}
	r.b = request.New(UpdateOp, t, r.path, request.JSON(body))
	return &r
}

func (r *UpdateRequest) path() []string {
	return []string{r.index, r.typ, r.id}
}

func (r *UpdateRequest) Consistency(v param.Consistency) *UpdateRequest {
	r.b.Set(param.Enum(param.NameConsistency, v))
	return r
}

// Fields lists the stored fields returned with the updated document.
func (r *UpdateRequest) Fields(v ...string) *UpdateRequest {
	r.b.Set(param.List(param.NameFields, v...))
	return r
}

// Lang sets the script language.
func (r *UpdateRequest) Lang(v string) *UpdateRequest {
	r.b.Set(param.String(param.NameLang, v))
	return r
}

func (r *UpdateRequest) Parent(v string) *UpdateRequest {
	r.b.Set(param.String(param.NameParent, v))
	return r
}

func (r *UpdateRequest) Refresh(v bool) *UpdateRequest {
	r.b.Set(param.Bool(param.NameRefresh, v))
	return r
}

// RetryOnConflict sets how many times a version conflict is retried server side.
func (r *UpdateRequest) RetryOnConflict(v int64) *UpdateRequest {
	r.b.Set(param.Int(param.NameRetryOnConflict, v))
	return r
}

func (r *UpdateRequest) Routing(v string) *UpdateRequest {
	r.b.Set(param.String(param.NameRouting, v))
	return r
}

func (r *UpdateRequest) Script(v string) *UpdateRequest {
	r.b.Set(param.String(param.NameScript, v))
	return r
}

func (r *UpdateRequest) ScriptID(v string) *UpdateRequest {
	r.b.Set(param.String(param.NameScriptID, v))
	return r
}

func (r *UpdateRequest) ScriptedUpsert(v bool) *UpdateRequest {
	r.b.Set(param.Bool(param.NameScriptedUpsert, v))
	return r
}

func (r *UpdateRequest) Timeout(v param.Timeout) *UpdateRequest {
	r.b.Set(param.TimeoutParam(param.NameTimeout, v))
	return r
}

func (r *UpdateRequest) Timestamp(v time.Time) *UpdateRequest {
	r.b.Set(param.Time(param.NameTimestamp, v))
	return r
}

func (r *UpdateRequest) TTL(v param.Timeout) *UpdateRequest {
	r.b.Set(param.TimeoutParam(param.NameTTL, v))
	return r
}

func (r *UpdateRequest) Version(v int64) *UpdateRequest {
	r.b.Set(param.Int(param.NameVersion, v))
	return r
}

func (r *UpdateRequest) VersionType(v param.VersionType) *UpdateRequest {
	r.b.Set(param.Enum(param.NameVersionType, v))
	return r
}
