// Package esreq exposes the client builder.
//
// A [Client] wraps one shared [transport.Conn] and hands out typed request
// builders bound to it:
//
//	c, err := esreq.New("http://localhost:9200", transport.WithTimeout(5*time.Second))
//	if err != nil {
//		return err
//	}
//
//	resp, err := c.Index("tweets", "tweet", doc).ID("1").Execute(ctx)
//	found, err := c.Indices.Exists("tweets").Found(ctx)
//
// Builders never own the connection, so any number of them may be created
// and executed concurrently from one Client.
package esreq

import (
	"github.com/adamwoolhether/esreq/bulk"
	"github.com/adamwoolhether/esreq/document"
	"github.com/adamwoolhether/esreq/indices"
	"github.com/adamwoolhether/esreq/transport"
)

// Client builds requests against a single document store endpoint.
type Client struct {
	Conn    *transport.Conn
	Indices *IndicesClient
}

// IndicesClient builds index management requests.
type IndicesClient struct {
	conn *transport.Conn
}

// New instantiates a new *Client for rawURL with the provided options.
// If not specified, the default http.Client and http.Transport are used.
func New(rawURL string, opts ...transport.Option) (*Client, error) {
	conn, err := transport.Build(rawURL, opts...)
	if err != nil {
		return nil, err
	}
	return NewWithConn(conn), nil
}

// NewWithConn returns a Client sharing an existing connection. A nil conn
// makes every request fail with request.ErrTransport.
func NewWithConn(conn *transport.Conn) *Client {
	return &Client{
		Conn:    conn,
		Indices: &IndicesClient{conn: conn},
	}
}

// Index stores doc under index/type. Set an id with [document.IndexRequest.ID].
func (c *Client) Index(index, typ string, doc any) *document.IndexRequest {
	return document.NewIndex(c.Conn, index, typ, doc)
}

// Update applies body to the document at index/type/id.
func (c *Client) Update(index, typ, id string, body any) *document.UpdateRequest {
	return document.NewUpdate(c.Conn, index, typ, id, body)
}

// Get fetches the document at index/type/id.
func (c *Client) Get(index, typ, id string) *document.GetRequest {
	return document.NewGet(c.Conn, index, typ, id)
}

// Count counts documents. Pass "" to leave index or typ out.
func (c *Client) Count(index, typ string) *document.CountRequest {
	return document.NewCount(c.Conn, index, typ)
}

// Exists checks whether the document at index/type/id exists.
func (c *Client) Exists(index, typ, id string) *document.ExistsRequest {
	return document.NewExists(c.Conn, index, typ, id)
}

// Delete removes the document at index/type/id.
func (c *Client) Delete(index, typ, id string) *document.DeleteRequest {
	return document.NewDelete(c.Conn, index, typ, id)
}

// Bulk submits payload to the _bulk endpoint.
func (c *Client) Bulk(payload bulk.Payload) *document.BulkRequest {
	return document.NewBulk(c.Conn, payload)
}

// Exists checks whether every named index exists.
func (ic *IndicesClient) Exists(names ...string) *indices.ExistsRequest {
	return indices.NewExists(ic.conn, names...)
}

// Create creates index.
func (ic *IndicesClient) Create(index string) *indices.CreateRequest {
	return indices.NewCreate(ic.conn, index)
}

// Close closes index with the given config body.
func (ic *IndicesClient) Close(index string, config any) *indices.CloseRequest {
	return indices.NewClose(ic.conn, index, config)
}
