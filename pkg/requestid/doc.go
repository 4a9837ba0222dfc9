// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a client supplied "X-Request-ID" header when it is at most
// 128 characters of [a-zA-Z0-9_-], otherwise it generates a UUIDv4. The id is
// stored in the request context (FromContext), echoed in the response header
// and can be injected into slog records with LoggerExtractor.
package requestid
