package document

import (
	"context"
	"fmt"
	"net/http"

	"github.com/adamwoolhether/esreq/bulk"
	"github.com/adamwoolhether/esreq/param"
	"github.com/adamwoolhether/esreq/request"
)

// BulkOp describes the _bulk endpoint.
var BulkOp = request.MustOperation("bulk", http.MethodPost,
	request.WithBody(),
	request.WithParams(
		param.NameConsistency,
		param.NameIndex,
		param.NameType,
		param.NameRefresh,
		param.NameRouting,
		param.NameTimeout,
		param.NameVersion,
		param.NameVersionType,
	),
)

// BulkRequest submits a batch of actions in one call.
type BulkRequest struct {
	builder
}

// NewBulk returns a bulk request sending payload as NDJSON.
func NewBulk(t request.Transport, payload bulk.Payload) *BulkRequest {
	var r BulkRequest
	r.b = request.New(BulkOp, t, func() []string { return []string{bulkSegment} }, payload)
	return &r
}

// Do executes the request and decodes the per action results. A non 2xx
// status is returned as an error since there is no body to decode.
func (r *BulkRequest) Do(ctx context.Context) (*bulk.Response, error) {
	resp, err := r.Execute(ctx)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, fmt.Errorf("bulk: %w", err)
	}
	return bulk.DecodeResponse(resp.Body)
}

func (r *BulkRequest) Consistency(v param.Consistency) *BulkRequest {
	r.b.Set(param.Enum(param.NameConsistency, v))
	return r
}

// Index sets the default index for actions that do not name one.
func (r *BulkRequest) Index(v string) *BulkRequest {
	r.b.Set(param.String(param.NameIndex, v))
	return r
}

// Type sets the default type for actions that do not name one.
func (r *BulkRequest) Type(v string) *BulkRequest {
	r.b.Set(param.String(param.NameType, v))
	return r
}

func (r *BulkRequest) Refresh(v bool) *BulkRequest {
	r.b.Set(param.Bool(param.NameRefresh, v))
	return r
}

func (r *BulkRequest) Routing(v string) *BulkRequest {
	r.b.Set(param.String(param.NameRouting, v))
	return r
}

func (r *BulkRequest) Timeout(v param.Timeout) *BulkRequest {
	r.b.Set(param.TimeoutParam(param.NameTimeout, v))
	return r
}

func (r *BulkRequest) Version(v int64) *BulkRequest {
	r.b.Set(param.Int(param.NameVersion, v))
	return r
}

func (r *BulkRequest) VersionType(v param.VersionType) *BulkRequest {
	r.b.Set(param.Enum(param.NameVersionType, v))
	return r
}
