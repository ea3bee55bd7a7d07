package bulk

import (
	"time"

	"github.com/adamwoolhether/esreq/param"
)

// Kind is the action a bulk entry performs.
type Kind string

const (
	KindIndex  Kind = "index"
	KindCreate Kind = "create"
	KindDelete Kind = "delete"
	KindUpdate Kind = "update"
)

// Meta is the metadata line of a bulk entry. Unset fields are left out of
// the encoded line and Timestamp is encoded in UTC.
type Meta struct {
	Index           string             `json:"_index,omitempty"`
	Type            string             `json:"_type,omitempty"`
	ID              string             `json:"_id,omitempty"`
	Routing         string             `json:"_routing,omitempty"`
	Parent          string             `json:"_parent,omitempty"`
	Timestamp       *time.Time         `json:"_timestamp,omitempty"`
	TTL             *param.Timeout     `json:"_ttl,omitempty"`
	OpType          *param.OpType      `json:"op_type,omitempty"`
	Version         *int64             `json:"_version,omitempty"`
	VersionType     *param.VersionType `json:"_version_type,omitempty"`
	RetryOnConflict *int               `json:"_retry_on_conflict,omitempty"`
}

// Action is one entry of a bulk request.
type Action struct {
	Kind    Kind
	Meta    Meta
	Payload string
}

// Index returns an action that indexes payload, an already serialized
// document.
func Index(meta Meta, payload string) Action {
	return Action{Kind: KindIndex, Meta: meta, Payload: payload}
}

// Update returns an action that applies payload, an already serialized
// partial document or script.
func Update(meta Meta, payload string) Action {
	return Action{Kind: KindUpdate, Meta: meta, Payload: payload}
}

// Delete returns an action that removes the document named by meta. It has
// no payload line.
func Delete(meta Meta) Action {
	return Action{Kind: KindDelete, Meta: meta}
}

// Ptr returns a pointer to v, for the optional fields of [Meta].
func Ptr[T any](v T) *T {
	return &v
}
