// Package document provides typed builders for the single document and
// batch operations of the document store.
//
// Required path fields are constructor arguments; optional query parameters
// are set fluently and written in a fixed order regardless of the order the
// setters were called in:
//
//	resp, err := document.NewIndex(conn, "tweets", "tweet", doc).
//		ID("1").
//		Refresh(true).
//		Execute(ctx)
//
// Paths:
//
//	Index   POST   index/type[/id]      op_type=create unless overridden
//	Update  POST   index/type/id
//	Get     GET    index/type/id
//	Count   GET    [index][/type]/_count
//	Exists  HEAD   index/type/id
//	Delete  DELETE index/type/id
//	Bulk    POST   _bulk                body is a bulk.Payload
//
// Every request returns the raw [transport.Response] whatever its status.
// Use [transport.Response.Err] to turn a failed status into an error, or
// [ExistsRequest.Found] for the existence answer.
package document
