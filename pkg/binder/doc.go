// Package binder decodes HTTP request bodies into Go values.
//
// JSON returns a binder compatible with handler.WithBinders. It requires an
// application/json Content-Type (parameters such as charset are allowed),
// limits the body to DefaultMaxJSONSize and rejects trailing data after the
// first JSON value.
//
// # Error Handling
//
//   - ErrMissingContentType: no Content-Type header
//   - ErrUnsupportedMediaType: Content-Type is not application/json
//   - ErrEmptyBody: the body is empty or whitespace only
//   - ErrFailedToParseJSON: malformed JSON, oversized or trailing data
//
// All errors wrap one of these sentinels and can be matched with errors.Is.
package binder
