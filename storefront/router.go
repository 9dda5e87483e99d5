// Package storefront assembles the HTTP surface: middleware, feature modules,
// health and metrics endpoints.
package storefront

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/atelier/catalog"
	"github.com/dmitrymomot/atelier/handler"
	"github.com/dmitrymomot/atelier/modules/checkout"
	"github.com/dmitrymomot/atelier/modules/dashboard"
	"github.com/dmitrymomot/atelier/modules/pages"
	"github.com/dmitrymomot/atelier/modules/studio"
	"github.com/dmitrymomot/atelier/pkg/environment"
	"github.com/dmitrymomot/atelier/pkg/httpserver"
	"github.com/dmitrymomot/atelier/pkg/metrics"
	"github.com/dmitrymomot/atelier/pkg/requestid"
	"github.com/dmitrymomot/atelier/pkg/session"
	"github.com/dmitrymomot/atelier/views"
)

// Mount points of the feature modules.
const (
	StudioPath    = "/customizationstudiopage"
	CheckoutPath  = "/checkoutpage"
	DashboardPath = "/userdashboardpage"
)

type Deps struct {
	Catalog  *catalog.Catalog
	Sessions *session.Manager
	Metrics  *metrics.Metrics
	Log      *slog.Logger
	Env      environment.Environment
}

// NewRouter returns the storefront handler. Probes and /metrics bypass the
// session so scrapers do not create sessions.
func NewRouter(d Deps) http.Handler {
	errorHandler := handler.NewErrorHandler(d.Log, views.ErrorHandlerConfig())

	pagesSvc := pages.NewService(d.Catalog, d.Sessions, views.PagesViews(), errorHandler)
	studioSvc := studio.NewService(d.Catalog, d.Sessions, views.StudioViews(), errorHandler)
	checkoutSvc := checkout.NewService(d.Catalog, d.Sessions, views.CheckoutViews(), errorHandler)
	dashboardSvc := dashboard.NewService(d.Catalog, d.Sessions, views.DashboardViews(), errorHandler)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		environment.Middleware(d.Env),
		d.Metrics.Middleware,
		accessLog(d.Log),
		middleware.Recoverer,
	)

	r.Get("/healthz", httpserver.Liveness())
	r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())

	app := chi.NewRouter()
	app.Use(d.Sessions.EnsureSession)
	// Set before mounting so the sub-routers inherit it.
	app.NotFound(pagesSvc.NotFound())
	app.Mount("/", pagesSvc.Handle())
	app.Mount(StudioPath, studioSvc.Handle())
	app.Mount(CheckoutPath, checkoutSvc.Handle())
	app.Mount(DashboardPath, dashboardSvc.Handle())

	r.Mount("/", app)

	return r
}
