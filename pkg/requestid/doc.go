// Package requestid tags every request with an identifier.
//
// Middleware reuses a well-formed inbound X-Request-ID header or mints a UUID,
// echoes it on the response, and stores it in the request context. Handlers
// and the error page read it with FromContext; LoggerExtractor adds it to log
// records as "request_id".
package requestid
