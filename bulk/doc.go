// Package bulk encodes batched write actions into the newline delimited
// format of the _bulk endpoint and decodes its response.
//
// # Encoding
//
// Each [Action] becomes a metadata line, a JSON object keyed by the action
// kind, followed by its payload line:
//
//	{"index":{"_index":"tweets","_type":"tweet","_id":"1"}}
//	{"user":"kimchy"}
//
// Delete actions carry no payload, so they contribute only the metadata
// line. A [Payload] keeps its actions in submission order.
//
// # Decoding
//
// [DecodeResponse] returns one [Item] per submitted action, in the same
// order, so Items[i] is the outcome of Payload[i].
package bulk
