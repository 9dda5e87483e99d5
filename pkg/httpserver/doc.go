// Package httpserver runs the storefront's http.Server until its context is
// cancelled or the process receives SIGINT or SIGTERM, then drains in-flight
// requests within the shutdown timeout.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Liveness serves the /healthz probe.
package httpserver
