// Package request implements the generic request builder shared by every
// document store operation.
//
// # Operations
//
// An [Operation] is declared once per endpoint with its method, body flag,
// ordered optional parameters and defaults:
//
//	var indexOp = request.MustOperation("index", http.MethodPost,
//		request.WithBody(),
//		request.WithParams(param.NameConsistency, param.NameOpType, param.NameRefresh),
//		request.WithDefaults(param.Enum(param.NameOpType, param.OpCreate)),
//	)
//
// Declaring a body for GET, HEAD or DELETE fails with [ErrMethodMismatch],
// so a bad descriptor is caught when the package initialises rather than
// when a request is sent.
//
// # Builders
//
// A [Builder] combines an operation, a path rule closing over the required
// fields, a body and a [Transport]:
//
//	b := request.New(indexOp, conn, func() []string { return []string{"tweets", "tweet"} }, request.JSON(doc))
//	b.Set(param.Bool(param.NameRefresh, true))
//	resp, err := b.Execute(ctx)
//
// Query pairs always follow declaration order, never the order setters were
// called in, and parameters that were never set are omitted.
package request
