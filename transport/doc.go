// Package transport performs the network I/O for derived document store
// requests over [net/http].
//
// # Building a Conn
//
// Use [Build] with the node URL and functional options:
//
//	conn, err := transport.Build("http://localhost:9200",
//		transport.WithTimeout(10*time.Second),
//		transport.WithUserAgent("myapp/1.0"),
//		transport.WithThrottle(50, 10),
//	)
//
// The URL and option values are validated together; failures are reported
// as [FieldErrors].
//
// # Performing Calls
//
// A [Call] carries the method, path segments, ordered query pairs and body
// produced by a request builder. [Conn.Perform] sends it and returns the raw
// [Response] text with its status code:
//
//	resp, err := conn.Perform(ctx, transport.Call{
//		Method: http.MethodGet,
//		Path:   []string{"tweets", "tweet", "1"},
//	})
//
// Every status code is a valid response. Use [Response.Err] to opt into
// treating non-2xx codes as errors, or [Response.Found] for HEAD checks.
//
// A Conn holds no per-request state and may be shared by concurrent callers.
// It never retries, load-balances or caches.
package transport
