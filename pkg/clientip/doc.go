// Package clientip resolves the originating client IP of an HTTP request.
//
// FromRequest checks CF-Connecting-IP, DO-Connecting-IP, X-Forwarded-For and
// X-Real-IP in that order and falls back to RemoteAddr. Every candidate is
// parsed and normalized; unparsable values are skipped.
//
// These headers are client controlled unless a trusted proxy overwrites them,
// so the result is suitable for logging, not for access control.
//
// Middleware stores the IP in the request context, FromContext reads it back
// and LoggerExtractor exposes it to pkg/logger.
package clientip
