package request_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/adamwoolhether/esreq/param"
	"github.com/adamwoolhether/esreq/request"
	"github.com/adamwoolhether/esreq/transport"
)

type fakeTransport struct {
	calls []transport.Call
	resp  *transport.Response
	err   error
}

func (f *fakeTransport) Perform(_ context.Context, call transport.Call) (*transport.Response, error) {
	f.calls = append(f.calls, call)
	if f.err != nil {
		return nil, f.err
	}
	if f.resp != nil {
		return f.resp, nil
	}
	return &transport.Response{StatusCode: http.StatusOK, Body: "{}"}, nil
}

var testOp = request.MustOperation("test", http.MethodPost,
	request.WithBody(),
	request.WithParams(param.NameConsistency, param.NameOpType, param.NameRefresh, param.NameRouting, param.NameTimeout, param.NameVersion),
	request.WithDefaults(param.Enum(param.NameOpType, param.OpCreate)),
)

var getOp = request.MustOperation("get", http.MethodGet,
	request.WithParams(param.NameFields, param.NameRealtime),
)

func fixedPath(segs ...string) func() []string {
	return func() []string { return segs }
}

func TestNewOperation_MethodBody(t *testing.T) {
	testCases := []struct {
		name    string
		method  string
		body    bool
		wantErr error
	}{
		{"post with body", http.MethodPost, true, nil},
		{"post without body", http.MethodPost, false, nil},
		{"put with body", http.MethodPut, true, nil},
		{"get without body", http.MethodGet, false, nil},
		{"head without body", http.MethodHead, false, nil},
		{"delete without body", http.MethodDelete, false, nil},
		{"get with body", http.MethodGet, true, request.ErrMethodMismatch},
		{"head with body", http.MethodHead, true, request.ErrMethodMismatch},
		{"delete with body", http.MethodDelete, true, request.ErrMethodMismatch},
		{"unsupported method", http.MethodPatch, false, request.ErrMethodMismatch},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var opts []request.OperationOption
			if tc.body {
				opts = append(opts, request.WithBody())
			}

			op, err := request.NewOperation("op", tc.method, opts...)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("NewOperation() err = %v, want %v", err, tc.wantErr)
			}
			if tc.wantErr == nil && op.HasBody() != tc.body {
				t.Fatalf("HasBody() = %v, want %v", op.HasBody(), tc.body)
			}
		})
	}
}

func TestNewOperation_InvalidParams(t *testing.T) {
	if _, err := request.NewOperation("op", http.MethodGet, request.WithParams("a", "a")); err == nil {
		t.Error("expected error for duplicate param")
	}

	if _, err := request.NewOperation("op", http.MethodGet, request.WithParams("")); err == nil {
		t.Error("expected error for empty param name")
	}

	_, err := request.NewOperation("op", http.MethodGet,
		request.WithParams(param.NameRefresh),
		request.WithDefaults(param.Bool(param.NameRealtime, true)),
	)
	if !errors.Is(err, request.ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam for undeclared default, got: %v", err)
	}

	if _, err := request.NewOperation("", http.MethodGet); err == nil {
		t.Error("expected error for empty operation name")
	}
}

func TestMustOperation_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	request.MustOperation("bad", http.MethodHead, request.WithBody())
}

func TestBuilder_QueryDeclarationOrder(t *testing.T) {
	b := request.New(testOp, nil, fixedPath("a"), request.JSON(map[string]int{"n": 1}))

	// Setter order is deliberately the reverse of declaration order.
	b.Set(param.Int(param.NameVersion, 3)).
		Set(param.String(param.NameRouting, "r1")).
		Set(param.Bool(param.NameRefresh, true)).
		Set(param.Enum(param.NameConsistency, param.ConsistencyAll))

	want := []param.Pair{
		{Name: "consistency", Value: "all"},
		{Name: "op_type", Value: "create"},
		{Name: "refresh", Value: "true"},
		{Name: "routing", Value: "r1"},
		{Name: "version", Value: "3"},
	}
	if diff := cmp.Diff(want, b.Query()); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_QuerySubsets(t *testing.T) {
	all := []param.Param{
		param.Enum(param.NameConsistency, param.ConsistencyOne),
		param.Enum(param.NameOpType, param.OpIndex),
		param.Bool(param.NameRefresh, false),
		param.String(param.NameRouting, "x"),
		param.Duration(param.NameTimeout, 0),
		param.Int(param.NameVersion, -1),
	}

	// Every subset of the declared params, set in reverse order.
	for mask := 0; mask < 1<<len(all); mask++ {
		b := request.New(testOp, nil, fixedPath("a"), request.JSON(nil))

		var want []param.Pair
		for i := len(all) - 1; i >= 0; i-- {
			if mask&(1<<i) != 0 {
				b.Set(all[i])
			}
		}
		for i, p := range all {
			switch {
			case mask&(1<<i) != 0:
				want = append(want, p.Pair())
			case p.Name() == param.NameOpType:
				want = append(want, param.Pair{Name: "op_type", Value: "create"})
			}
		}

		if diff := cmp.Diff(want, b.Query()); diff != "" {
			t.Fatalf("mask %06b: query mismatch (-want +got):\n%s", mask, diff)
		}
	}
}

func TestBuilder_DefaultOverride(t *testing.T) {
	b := request.New(testOp, nil, fixedPath("a"), request.JSON(nil))

	p, ok := b.Get(param.NameOpType)
	if !ok || p.Serialize() != "create" {
		t.Fatalf("default op_type = %v, %v", p, ok)
	}

	b.Set(param.Enum(param.NameOpType, param.OpIndex))
	p, _ = b.Get(param.NameOpType)
	if p.Serialize() != "index" {
		t.Fatalf("overridden op_type = %q", p.Serialize())
	}

	if _, ok := b.Get(param.NameRouting); ok {
		t.Fatal("routing should be unset")
	}
}

func TestBuilder_NothingSet(t *testing.T) {
	b := request.New(getOp, nil, fixedPath("i", "t", "1"), nil)
	if q := b.Query(); len(q) != 0 {
		t.Fatalf("expected no query pairs, got %v", q)
	}
}

func TestBuilder_UnknownParam(t *testing.T) {
	b := request.New(getOp, nil, fixedPath("i", "t", "1"), nil)
	b.Set(param.Enum(param.NameOpType, param.OpIndex))

	if _, err := b.Call(); !errors.Is(err, request.ErrUnknownParam) {
		t.Fatalf("expected ErrUnknownParam, got: %v", err)
	}
}

func TestBuilder_BodyMismatch(t *testing.T) {
	if _, err := request.New(getOp, nil, fixedPath("a"), request.JSON("x")).Call(); !errors.Is(err, request.ErrMethodMismatch) {
		t.Errorf("expected ErrMethodMismatch for body on GET op, got: %v", err)
	}

	if _, err := request.New(testOp, nil, fixedPath("a"), nil).Call(); !errors.Is(err, request.ErrMethodMismatch) {
		t.Errorf("expected ErrMethodMismatch for missing body, got: %v", err)
	}
}

func TestBuilder_Execute(t *testing.T) {
	ft := &fakeTransport{resp: &transport.Response{StatusCode: http.StatusCreated, Body: `{"ok":true}`}}
	b := request.New(testOp, ft, fixedPath("tweets", "tweet"), request.JSON(map[string]string{"user": "kimchy"}))
	b.Set(param.Bool(param.NameRefresh, true))

	resp, err := b.Execute(t.Context())
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if resp.StatusCode != http.StatusCreated || resp.Body != `{"ok":true}` {
		t.Fatalf("unexpected response %+v", resp)
	}

	want := transport.Call{
		Operation:   "test",
		Method:      http.MethodPost,
		Path:        []string{"tweets", "tweet"},
		Query:       []param.Pair{{Name: "op_type", Value: "create"}, {Name: "refresh", Value: "true"}},
		Body:        []byte(`{"user":"kimchy"}`),
		ContentType: "application/json",
	}
	if diff := cmp.Diff([]transport.Call{want}, ft.calls); diff != "" {
		t.Errorf("call mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_ExecuteIsRepeatable(t *testing.T) {
	ft := &fakeTransport{}
	b := request.New(testOp, ft, fixedPath("a", "b"), request.JSON(map[string]any{"z": 1, "a": []int{1, 2}}))
	b.Set(param.String(param.NameRouting, "r"))

	for range 2 {
		if _, err := b.Execute(t.Context()); err != nil {
			t.Fatalf("execute: %v", err)
		}
	}

	if len(ft.calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(ft.calls))
	}
	if diff := cmp.Diff(ft.calls[0], ft.calls[1]); diff != "" {
		t.Errorf("repeated execute differs (-first +second):\n%s", diff)
	}
}

func TestBuilder_ExecuteErrors(t *testing.T) {
	t.Run("transport failure", func(t *testing.T) {
		cause := errors.New("connection reset")
		ft := &fakeTransport{err: cause}

		_, err := request.New(getOp, ft, fixedPath("a"), nil).Execute(t.Context())
		if !errors.Is(err, request.ErrTransport) {
			t.Errorf("expected ErrTransport, got: %v", err)
		}
		if !errors.Is(err, cause) {
			t.Errorf("expected cause to be wrapped, got: %v", err)
		}
	})

	t.Run("serialization failure", func(t *testing.T) {
		ft := &fakeTransport{}

		_, err := request.New(testOp, ft, fixedPath("a"), request.JSON(make(chan int))).Execute(t.Context())
		if !errors.Is(err, request.ErrSerialization) {
			t.Errorf("expected ErrSerialization, got: %v", err)
		}
		if len(ft.calls) != 0 {
			t.Errorf("transport should not be called, got %d calls", len(ft.calls))
		}
	})

	t.Run("no transport", func(t *testing.T) {
		_, err := request.New(getOp, nil, fixedPath("a"), nil).Execute(t.Context())
		if !errors.Is(err, request.ErrTransport) {
			t.Errorf("expected ErrTransport, got: %v", err)
		}
	})
}

func TestBuilder_PathEvaluatedLazily(t *testing.T) {
	id := ""
	path := func() []string {
		if id == "" {
			return []string{"i", "t"}
		}
		return []string{"i", "t", id}
	}

	b := request.New(testOp, nil, path, request.JSON(nil))
	if got := len(b.Path()); got != 2 {
		t.Fatalf("expected 2 segments, got %d", got)
	}

	id = "x"
	if diff := cmp.Diff([]string{"i", "t", "x"}, b.Path()); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestOperation_Accessors(t *testing.T) {
	if testOp.Name() != "test" || testOp.Method() != http.MethodPost {
		t.Fatalf("unexpected accessors %q %q", testOp.Name(), testOp.Method())
	}

	params := testOp.Params()
	params[0] = "mutated"
	if testOp.Params()[0] != param.NameConsistency {
		t.Fatal("Params() must return a copy")
	}

	if !testOp.Declares(param.NameVersion) || testOp.Declares(param.NameFields) {
		t.Fatal("Declares() mismatch")
	}
}

func TestBuilder_EmptyPathSegment(t *testing.T) {
	testCases := []struct {
		name string
		path []string
	}{
		{"no segments", nil},
		{"empty id", []string{"i", "t", ""}},
		{"empty index", []string{"", "t", "1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ft := &fakeTransport{}

			_, err := request.New(getOp, ft, fixedPath(tc.path...), nil).Execute(t.Context())
			if !errors.Is(err, request.ErrEmptyPathSegment) {
				t.Fatalf("expected ErrEmptyPathSegment, got: %v", err)
			}
			if len(ft.calls) != 0 {
				t.Fatalf("transport should not be called, got %d calls", len(ft.calls))
			}
		})
	}
}
