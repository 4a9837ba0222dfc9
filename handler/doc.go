// Package handler provides type-safe HTTP request handling.
//
// A HandlerFunc receives a Context and a request value already populated by
// the configured binders, and returns a Response. Wrap turns it into an
// http.HandlerFunc:
//
//	h := handler.HandlerFunc[handler.Context, map[string]any](
//		func(ctx handler.Context, req map[string]any) handler.Response {
//			if len(req) == 0 {
//				return handler.Fail(ErrEmptyRequest)
//			}
//			return handler.OK("accepted", req)
//		},
//	)
//
//	mux.Handle("/items", handler.Wrap(h,
//		handler.WithBinders[handler.Context, map[string]any](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, map[string]any](errHandler),
//	))
//
// # Responses
//
//	handler.JSON(v)                         // 200 with v as the body
//	handler.JSON(v, handler.WithJSONStatus(201))
//	handler.OK("message", data)             // {"success":true,...}
//	handler.JSONError(400, "message")       // {"success":false,...}
//	handler.Fail(err)                       // delegate to the error handler
//
// # Errors
//
// NewErrorHandler builds an ErrorHandler from ordered Classifiers. The first
// classifier that recognises an error decides the status and message; an
// HTTPError (ErrNotFound, ErrMethodNotAllowed) keeps its own; anything else
// becomes a 500 with a generic message. Errors are logged with the request id
// from pkg/requestid.
package handler
