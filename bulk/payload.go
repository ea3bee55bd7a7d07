package bulk

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ContentType is the media type of an encoded [Payload].
const ContentType = "application/x-ndjson"

// Payload is an ordered sequence of bulk actions. Order is preserved on the
// wire since the server reports per-item results by position.
type Payload []Action

// Encode writes each action as a metadata line followed by its payload
// line. Delete actions have only the metadata line. An empty Payload
// encodes to no bytes.
func (p Payload) Encode() ([]byte, error) {
	if len(p) == 0 {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	for i, a := range p {
		if err := writeMeta(enc, a); err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		if a.Kind == KindDelete {
			continue
		}
		buf.WriteString(a.Payload)
		buf.WriteByte('\n')
	}

	return buf.Bytes(), nil
}

// ContentType implements the request body contract.
func (Payload) ContentType() string {
	return ContentType
}

// String returns the encoded payload, or the encoding error text.
func (p Payload) String() string {
	b, err := p.Encode()
	if err != nil {
		return err.Error()
	}
	return string(b)
}

// writeMeta encodes {"<kind>":{...}} and the trailing newline. Timestamps
// are written in UTC, matching the timestamp query parameter.
func writeMeta(enc *json.Encoder, a Action) error {
	switch a.Kind {
	case KindIndex, KindCreate, KindDelete, KindUpdate:
	default:
		return fmt.Errorf("unknown action kind %q", a.Kind)
	}

	meta := a.Meta
	if meta.Timestamp != nil {
		ts := meta.Timestamp.UTC()
		meta.Timestamp = &ts
	}

	return enc.Encode(map[Kind]Meta{a.Kind: meta})
}
