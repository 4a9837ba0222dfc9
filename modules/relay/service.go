package relay

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/sharemail/handler"
	"github.com/dmitrymomot/sharemail/pkg/binder"
	"github.com/dmitrymomot/sharemail/pkg/logger"
	"github.com/dmitrymomot/sharemail/pkg/validator"
)

// Service serves the relay HTTP API.
type Service struct {
	provider     Provider
	renderer     *Renderer
	dispatcher   *Dispatcher
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	now          func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithErrorHandler overrides the error handler built from ErrorClassifiers.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) ServiceOption {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// WithServiceClock overrides the clock used for health timestamps.
func WithServiceClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the relay. dispatcher may be nil when the provider is not
// configured; /send-email then always answers 500.
func NewService(provider Provider, renderer *Renderer, dispatcher *Dispatcher, opts ...ServiceOption) *Service {
	s := &Service{
		provider:   provider,
		renderer:   renderer,
		dispatcher: dispatcher,
		log:        logger.Discard(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, ErrorClassifiers()...)
	}
	return s
}

// ErrorClassifiers maps relay and binding errors onto API responses.
func ErrorClassifiers() []handler.Classifier {
	return []handler.Classifier{
		handler.Classify(ErrProviderNotConfigured, http.StatusInternalServerError, func(err error) string {
			var nc *NotConfiguredError
			if errors.As(err, &nc) {
				return nc.Error()
			}
			return "Email provider not configured."
		}),
		handler.Classify(binder.ErrEmptyBody, http.StatusBadRequest, noJSONData),
		handler.Classify(ErrEmptyRequest, http.StatusBadRequest, noJSONData),
		handler.Classify(binder.ErrMissingContentType, http.StatusBadRequest, wrongContentType),
		handler.Classify(binder.ErrUnsupportedMediaType, http.StatusBadRequest, wrongContentType),
		handler.Classify(binder.ErrFailedToParseJSON, http.StatusBadRequest, func(err error) string {
			return "Invalid JSON payload: " + detail(err, binder.ErrFailedToParseJSON)
		}),
		func(err error) (handler.ErrorInfo, bool) {
			verr, ok := validator.AsValidationError(err)
			if !ok {
				return handler.ErrorInfo{}, false
			}
			return handler.ErrorInfo{StatusCode: http.StatusBadRequest, Message: verr.Message}, true
		},
		handler.Classify(ErrRenderFailed, http.StatusInternalServerError, func(err error) string {
			return "Failed to render email: " + detail(err, ErrRenderFailed)
		}),
		handler.Classify(ErrDispatchFailed, http.StatusInternalServerError, func(err error) string {
			return "Failed to send email: " + detail(err, ErrDispatchFailed)
		}),
	}
}

func noJSONData(error) string { return "No JSON data provided" }

func wrongContentType(error) string { return "Content-Type must be application/json" }

// detail strips the sentinel prefix and flattens joined errors to one line.
func detail(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	return strings.ReplaceAll(msg, "\n", ": ")
}

// healthResponse is the body of GET /health.
type healthResponse struct {
	Status             string `json:"status"`
	ProviderConfigured bool   `json:"provider_configured"`
	Provider           string `json:"provider,omitempty"`
	Timestamp          string `json:"timestamp"`
}

func (s *Service) health(_ handler.Context, _ struct{}) handler.Response {
	return handler.JSON(healthResponse{
		Status:             "running",
		ProviderConfigured: s.provider.Configured(),
		Provider:           s.provider.Name(),
		Timestamp:          s.now().UTC().Format(time.RFC3339),
	})
}

// sendEmailData is the data object of a successful /send-email response.
type sendEmailData struct {
	FromEmail  string `json:"from_email"`
	ToEmail    string `json:"to_email"`
	HasButton  *bool  `json:"has_button,omitempty"`
	StatusCode int    `json:"status_code"`
	Timestamp  string `json:"timestamp"`
}

func (s *Service) sendEmail(ctx handler.Context, fields map[string]any) handler.Response {
	s.log.DebugContext(ctx, "send request received", logger.Event("received"))

	req, err := Validate(fields)
	if err != nil {
		return handler.Fail(err)
	}
	s.log.DebugContext(ctx, "send request validated",
		logger.Event("validated"),
		logger.Sender(req.FromEmail),
		logger.Recipient(req.ToEmail),
	)

	msg, err := s.renderer.Render(ctx, req)
	if err != nil {
		return handler.Fail(fmt.Errorf("%w: %w", ErrRenderFailed, err))
	}
	s.log.DebugContext(ctx, "message rendered",
		logger.Event("rendered"),
		slog.Bool("has_button", msg.HasButton),
	)

	res, err := s.dispatcher.Dispatch(ctx, msg)
	if err != nil {
		return handler.Fail(err)
	}

	s.log.InfoContext(ctx, "email sent",
		logger.Sender(req.FromEmail),
		logger.Recipient(req.ToEmail),
		logger.Provider(s.provider.Name()),
		logger.StatusCode(res.StatusCode),
		logger.MessageID(res.MessageID),
	)

	data := sendEmailData{
		FromEmail:  req.FromEmail,
		ToEmail:    req.ToEmail,
		StatusCode: res.StatusCode,
		Timestamp:  res.Timestamp.Format(time.RFC3339),
	}
	if s.renderer.Format() == FormatHTML {
		hasButton := msg.HasButton
		data.HasButton = &hasButton
	}
	return handler.OK("Email sent successfully", data)
}

// requireProvider short-circuits with the not-configured error before the
// request body is read.
func (s *Service) requireProvider(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := s.provider.Check(); err != nil {
			s.errorHandler(handler.NewContext(w, r), err)
			return
		}
		next.ServeHTTP(w, r)
	})
}
