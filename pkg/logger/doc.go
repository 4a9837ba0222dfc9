// Package logger builds *slog.Logger instances with functional options and
// injects request-scoped values (such as the request id) from context.Context
// into every record.
//
// New picks slog.NewJSONHandler or slog.NewTextHandler from the configured
// Format and wraps it so that registered ContextExtractor callbacks run on
// each Handle call. Attribute helpers in attr.go keep key names consistent.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithMode(cfg.Debug, "sharemail"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "email sent", logger.Recipient(to), logger.StatusCode(202))
package logger
