// Package pages serves the storefront's browsing pages: home, collections and
// the not-found fallback.
package pages

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/atelier/catalog"
	"github.com/dmitrymomot/atelier/handler"
	"github.com/dmitrymomot/atelier/modules"
)

type Service struct {
	catalog      *catalog.Catalog
	sessions     modules.SessionSaver
	views        *Views
	errorHandler handler.ErrorHandler[handler.Context]
}

type Views struct {
	HomePage       func(HomePageParams) templ.Component
	CollectionPage func(CollectionPageParams) templ.Component
	NotFoundPage   func(NotFoundPageParams) templ.Component
}

type HomePageParams struct {
	Meta     modules.Meta
	Lookbook []catalog.LookbookEntry
	Features []catalog.Feature
}

type CollectionPageParams struct {
	Meta        modules.Meta
	Collections []catalog.Collection
}

type NotFoundPageParams struct {
	Meta modules.Meta
	Path string
}

func NewService(
	cat *catalog.Catalog,
	sessions modules.SessionSaver,
	views *Views,
	errorHandler handler.ErrorHandler[handler.Context],
) *Service {
	return &Service{
		catalog:      cat,
		sessions:     sessions,
		views:        views,
		errorHandler: errorHandler,
	}
}

// Handle mounts "/" and "/collectionpage".
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.home,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Get("/collectionpage", handler.Wrap(s.collections,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	return r
}

// NotFound renders the fallback page with status 404.
func (s *Service) NotFound() http.HandlerFunc {
	return handler.Wrap(s.notFound,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	)
}

func (s *Service) home(ctx handler.Context, _ struct{}) handler.Response {
	meta, err := modules.NewMeta(ctx, s.sessions, "Where Style is Personal")
	if err != nil {
		return handler.Error(err)
	}

	return handler.Templ(s.views.HomePage(HomePageParams{
		Meta:     meta,
		Lookbook: s.catalog.Lookbook,
		Features: s.catalog.Features,
	}))
}

func (s *Service) collections(ctx handler.Context, _ struct{}) handler.Response {
	meta, err := modules.NewMeta(ctx, s.sessions, "Our Curated Collections")
	if err != nil {
		return handler.Error(err)
	}

	return handler.Templ(s.views.CollectionPage(CollectionPageParams{
		Meta:        meta,
		Collections: s.catalog.Collections,
	}))
}

func (s *Service) notFound(ctx handler.Context, _ struct{}) handler.Response {
	meta, err := modules.NewMeta(ctx, s.sessions, "Page Not Found")
	if err != nil {
		return handler.Error(err)
	}

	return handler.Status(http.StatusNotFound, handler.Templ(s.views.NotFoundPage(NotFoundPageParams{
		Meta: meta,
		Path: ctx.Request().URL.Path,
	})))
}
