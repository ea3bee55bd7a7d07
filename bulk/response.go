package bulk

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedItem is returned when a response item does not hold exactly
// one action.
var ErrMalformedItem = errors.New("malformed bulk response item")

// Response is the decoded body of a bulk request. Items[i] reports on the
// i-th action of the submitted [Payload].
type Response struct {
	Took   int    `json:"took"`
	Errors bool   `json:"errors"`
	Items  []Item `json:"items"`
}

// Item is the outcome of one bulk action.
type Item struct {
	Kind    Kind       `json:"-"`
	Index   string     `json:"_index"`
	Type    string     `json:"_type"`
	ID      string     `json:"_id"`
	Version int64      `json:"_version"`
	Status  int        `json:"status"`
	Error   *ItemError `json:"error,omitempty"`
}

// ItemError describes why an action failed.
type ItemError struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

func (e *ItemError) Error() string {
	if e.Type == "" {
		return e.Reason
	}
	return e.Type + ": " + e.Reason
}

// UnmarshalJSON accepts both the object form and the plain string form
// older servers return.
func (e *ItemError) UnmarshalJSON(data []byte) error {
	var reason string
	if err := json.Unmarshal(data, &reason); err == nil {
		*e = ItemError{Reason: reason}
		return nil
	}

	type plain ItemError
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = ItemError(p)
	return nil
}

// UnmarshalJSON decodes the {"<kind>": {...}} shape of a response item.
func (it *Item) UnmarshalJSON(data []byte) error {
	var m map[Kind]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if len(m) != 1 {
		return fmt.Errorf("%w: %d keys", ErrMalformedItem, len(m))
	}

	type plain Item
	for kind, raw := range m {
		var p plain
		if err := json.Unmarshal(raw, &p); err != nil {
			return fmt.Errorf("%s item: %w", kind, err)
		}
		*it = Item(p)
		it.Kind = kind
	}

	return nil
}

// Failed reports whether the action was rejected.
func (it Item) Failed() bool {
	return it.Error != nil || it.Status < 200 || it.Status > 299
}

// Failed returns the positions of the rejected actions.
func (r *Response) Failed() []int {
	if !r.Errors {
		return nil
	}

	var idx []int
	for i, it := range r.Items {
		if it.Failed() {
			idx = append(idx, i)
		}
	}
	return idx
}

// DecodeResponse parses the body returned by a bulk request.
func DecodeResponse(body string) (*Response, error) {
	var r Response
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		return nil, fmt.Errorf("decoding bulk response: %w", err)
	}
	return &r, nil
}
