package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/sharemail/pkg/logger"
	"github.com/dmitrymomot/sharemail/pkg/requestid"
)

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Message    string
}

// Classifier maps an error it recognises to the response it should produce.
type Classifier func(err error) (ErrorInfo, bool)

// Classify is a Classifier for errors matching target via errors.Is.
// The message is built from the matched error.
func Classify(target error, status int, message func(err error) string) Classifier {
	return func(err error) (ErrorInfo, bool) {
		if !errors.Is(err, target) {
			return ErrorInfo{}, false
		}
		return ErrorInfo{StatusCode: status, Message: message(err)}, true
	}
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// determineLogLevel maps HTTP status codes to appropriate log levels
func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// classifyError runs the classifiers in order, then falls back to HTTPError
// and finally to a generic 500.
func classifyError(err error, classifiers []Classifier) ErrorInfo {
	for _, classify := range classifiers {
		if info, ok := classify(err); ok {
			return info
		}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return ErrorInfo{StatusCode: httpErr.Code, Message: httpErr.Message}
	}

	return ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred processing your request",
	}
}

// NewErrorHandler creates the JSON error handler shared by all routes.
// It logs 4xx at warn and everything else at error, then writes
// {"success":false,"message":...}.
func NewErrorHandler(log *slog.Logger, classifiers ...Classifier) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := classifyError(err, classifiers)

		log.LogAttrs(r.Context(), determineLogLevel(info.StatusCode), "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			logger.StatusCode(info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if renderErr := JSONError(info.StatusCode, info.Message).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to render error response",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}
