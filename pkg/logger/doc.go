// Package logger builds the storefront's *slog.Logger.
//
// New picks a text or JSON handler, attaches static attributes, and wraps the
// handler in a decorator that runs ContextExtractors on every record. The
// extractors are how request ids and the environment reach log lines without
// threading a logger through every call:
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "atelier"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "order placed", logger.Component("checkout"))
//
// The attribute helpers keep key names consistent. Error and Errors return an
// empty attribute for nil errors, which slog drops.
package logger
