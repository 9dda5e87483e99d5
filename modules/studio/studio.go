// Package studio serves the customization studio: the garment visualizer and
// the shopping bag.
package studio

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/atelier/catalog"
	"github.com/dmitrymomot/atelier/handler"
	"github.com/dmitrymomot/atelier/modules"
	"github.com/dmitrymomot/atelier/pkg/binder"
	"github.com/dmitrymomot/atelier/shopper"
)

type Service struct {
	catalog      *catalog.Catalog
	sessions     modules.SessionSaver
	views        *Views
	errorHandler handler.ErrorHandler[handler.Context]
}

type Views struct {
	StudioPage func(StudioPageParams) templ.Component
	Visualizer func(catalog.Preview) templ.Component
	BagCount   func(count int) templ.Component
	Toast      func(shopper.Toast) templ.Component
}

type StudioPageParams struct {
	Meta modules.Meta
	// Collection is set when the studio was opened from a collection card.
	Collection *catalog.Collection
	Fabrics    []catalog.Fabric
	Cuts       []catalog.Cut
	Styles     []string
	Preview    catalog.Preview
}

// SelectionRequest is a studio selection. GET requests carry it in the query
// string and form posts in the body.
type SelectionRequest struct {
	Collection string `query:"collection" form:"collection"`
	FabricID   string `query:"fabric" form:"fabric"`
	Color      string `query:"color" form:"color"`
	Cut        string `query:"cut" form:"cut"`
	Style      string `query:"style" form:"style"`
}

func (r SelectionRequest) selection() catalog.Selection {
	return catalog.Selection{FabricID: r.FabricID, Color: r.Color, Cut: r.Cut, Style: r.Style}
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

// Handle serves the studio page, the live preview and the add-to-bag action.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithBinders[handler.Context, SelectionRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, SelectionRequest](s.errorHandler),
	))
	r.Post("/preview", handler.Wrap(s.preview,
		handler.WithBinders[handler.Context, SelectionRequest](binder.Form()),
		handler.WithErrorHandler[handler.Context, SelectionRequest](s.errorHandler),
	))
	r.Post("/bag", handler.Wrap(s.addToBag,
		handler.WithBinders[handler.Context, SelectionRequest](binder.Form()),
		handler.WithErrorHandler[handler.Context, SelectionRequest](s.errorHandler),
	))

	return r
}

func (s *Service) pageParams(meta modules.Meta, req SelectionRequest) StudioPageParams {
	params := StudioPageParams{
		Meta:    meta,
		Fabrics: s.catalog.Fabrics,
		Cuts:    s.catalog.Cuts,
		Styles:  s.catalog.Styles,
		Preview: s.catalog.Preview(req.selection()),
	}
	if c, ok := s.catalog.Collection(req.Collection); ok {
		params.Collection = &c
	}
	return params
}

func (s *Service) page(ctx handler.Context, req SelectionRequest) handler.Response {
	meta, err := modules.NewMeta(ctx, s.sessions, "Design Studio")
	if err != nil {
		return handler.Error(err)
	}
	return handler.Templ(s.views.StudioPage(s.pageParams(meta, req)))
}

func (s *Service) preview(ctx handler.Context, req SelectionRequest) handler.Response {
	meta, err := modules.NewMeta(ctx, s.sessions, "Design Studio")
	if err != nil {
		return handler.Error(err)
	}

	params := s.pageParams(meta, req)
	return handler.TemplPartial(
		s.views.Visualizer(params.Preview),
		s.views.StudioPage(params),
	)
}

func (s *Service) addToBag(ctx handler.Context, req SelectionRequest) handler.Response {
	sess, err := shopper.Current(ctx)
	if err != nil {
		return handler.Error(err)
	}

	preview := s.catalog.Preview(req.selection())
	shopper.AddToBag(sess, preview.LineItem())
	if err := s.sessions.Save(ctx, sess); err != nil {
		return handler.Error(err)
	}

	toast := shopper.Toast{
		Variant:     shopper.VariantDefault,
		Title:       "Added to Bag!",
		Description: preview.BagMessage(),
	}

	meta, err := modules.NewMeta(ctx, s.sessions, "Design Studio")
	if err != nil {
		return handler.Error(err)
	}

	return handler.TemplMultiPartial(
		s.views.StudioPage(s.pageParams(meta.WithToast(toast), req)),
		handler.Patch(s.views.BagCount(meta.BagCount)),
		handler.Toast(s.views.Toast(toast)),
	)
}
