package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/adamwoolhether/esreq/param"
	"github.com/adamwoolhether/esreq/transport/throttle"
)

const tracerName = "github.com/adamwoolhether/esreq/transport"

// OpaqueIDHeader carries the per-request correlation id when
// [WithOpaqueID] is enabled.
const OpaqueIDHeader = "X-Opaque-Id"

// Call is a fully derived request: method, path segments, ordered query
// pairs and an optional body.
type Call struct {
	Operation   string
	Method      string
	Path        []string
	Query       []param.Pair
	Body        []byte
	ContentType string
}

// Conn is a handle on a single document store node. It wraps the std-lib
// *http.Client and is safe to share between any number of requests.
type Conn struct {
	base     *url.URL
	c        *http.Client
	logger   *slog.Logger
	tracer   trace.Tracer
	headers  http.Header
	opaqueID bool
}

// Build creates a Conn addressing the node at rawURL.
func Build(rawURL string, optFns ...Option) (*Conn, error) {
	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying transport option: %w", err)
		}
	}

	cfg := Config{URL: rawURL, UserAgent: opts.userAgent}
	if opts.timeout != nil {
		cfg.Timeout = *opts.timeout
	}
	if opts.throttle != nil {
		cfg.RPS = opts.throttle.RPS
		cfg.Burst = opts.throttle.Burst
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing url: %w", err)
	}

	conn := &Conn{
		base:     base,
		c:        &http.Client{},
		logger:   slog.Default(),
		tracer:   noop.NewTracerProvider().Tracer(tracerName),
		headers:  opts.headers,
		opaqueID: opts.opaqueID,
	}

	if opts.client != nil {
		// Decorate a copy so the caller's client keeps its own settings.
		cpy := *opts.client
		conn.c = &cpy
	}

	if opts.logger != nil {
		conn.logger = opts.logger
	}

	if opts.tracerProvider != nil {
		conn.tracer = opts.tracerProvider.Tracer(tracerName)
	}

	if opts.timeout != nil {
		conn.c.Timeout = *opts.timeout
	}

	if opts.noFollowRedirects {
		conn.c.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	var rt http.RoundTripper
	switch {
	case opts.rt != nil:
		rt = opts.rt
	case opts.client != nil && opts.client.Transport != nil:
		rt = opts.client.Transport
	default:
		rt = http.DefaultTransport
	}
	if opts.userAgent != "" {
		rt = userAgent{value: opts.userAgent, base: rt}
	}
	if opts.throttle != nil {
		limited, err := throttle.NewRoundTripper(*opts.throttle, func() *slog.Logger { return conn.logger }, rt)
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		rt = limited
	}
	conn.c.Transport = rt

	return conn, nil
}

// URL returns the absolute URL a call is sent to.
func (c *Conn) URL(call Call) *url.URL {
	u := *c.base

	base := strings.TrimSuffix(c.base.Path, "/")
	escaped := make([]string, len(call.Path))
	for i, seg := range call.Path {
		escaped[i] = url.PathEscape(seg)
	}
	u.Path = base + "/" + strings.Join(call.Path, "/")
	u.RawPath = strings.TrimSuffix(c.base.EscapedPath(), "/") + "/" + strings.Join(escaped, "/")
	u.RawQuery = EncodeQuery(call.Query)
	u.Fragment = ""

	return &u
}

// Perform sends the call and returns the status, headers and raw body text.
// Any status code is a valid response; only I/O failures are errors.
func (c *Conn) Perform(ctx context.Context, call Call) (*Response, error) {
	if c == nil {
		return nil, errors.New("nil connection")
	}

	u := c.URL(call)
	ctx = throttle.WithOperation(ctx, call.Operation)

	ctx, span := c.tracer.Start(ctx, "esreq."+call.Operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", call.Method),
			attribute.String("url.path", u.Path),
			attribute.Int("esreq.query.count", len(call.Query)),
		),
	)
	defer span.End()

	var body io.Reader
	if call.Body != nil {
		body = bytes.NewReader(call.Body)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, u.String(), body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("instantiating request: %w", err)
	}

	for k, v := range c.headers {
		for _, element := range v {
			req.Header.Add(k, element)
		}
	}
	if call.Body != nil {
		contentType := call.ContentType
		if contentType == "" {
			contentType = "application/json"
		}
		req.Header.Set("Content-Type", contentType)
	}

	var opaqueID string
	if c.opaqueID {
		opaqueID = uuid.NewString()
		req.Header.Set(OpaqueIDHeader, opaqueID)
		span.SetAttributes(attribute.String("esreq.opaque_id", opaqueID))
	}

	start := time.Now()
	c.logger.Debug("request started", "operation", call.Operation, "method", call.Method, "path", u.RequestURI(), "opaqueID", opaqueID)

	resp, err := c.c.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("exec http do: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("failed to close response body", "error", err)
		}
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
	}

	c.logger.Debug("request completed", "operation", call.Operation, "method", call.Method, "path", u.RequestURI(), "statusCode", resp.StatusCode, "since", time.Since(start).String(), "opaqueID", opaqueID)

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       string(b),
	}, nil
}

// EncodeQuery renders pairs as application/x-www-form-urlencoded text,
// keeping their order. It returns "" for no pairs.
func EncodeQuery(pairs []param.Pair) string {
	if len(pairs) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, p := range pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}

	return sb.String()
}
