// Package checkout serves the checkout page: per-field validation on blur and
// the order submit.
package checkout

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/atelier/catalog"
	"github.com/dmitrymomot/atelier/forms"
	"github.com/dmitrymomot/atelier/handler"
	"github.com/dmitrymomot/atelier/modules"
	"github.com/dmitrymomot/atelier/pkg/binder"
	pkgforms "github.com/dmitrymomot/atelier/pkg/forms"
	"github.com/dmitrymomot/atelier/shopper"
)

// SuccessRedirect is where a placed order lands.
const SuccessRedirect = "/userdashboardpage"

type Service struct {
	catalog      *catalog.Catalog
	sessions     modules.SessionSaver
	views        *Views
	errorHandler handler.ErrorHandler[handler.Context]
}

type Views struct {
	CheckoutPage func(CheckoutPageParams) templ.Component
	CheckoutForm func(CheckoutFormParams) templ.Component
	FieldError   func(pkgforms.FieldResult) templ.Component
}

type CheckoutPageParams struct {
	Meta    modules.Meta
	Form    CheckoutFormParams
	Summary catalog.Summary
}

type CheckoutFormParams struct {
	Schema *pkgforms.Schema
	// Values echoes the submitted input; Errors maps fields to messages.
	Values map[string]string
	Errors map[string]string
}

// CheckoutRequest is the checkout form. Field is set only for blur validation.
type CheckoutRequest struct {
	Field      string `path:"field" form:"-"`
	FullName   string `form:"fullName"`
	Address    string `form:"address"`
	City       string `form:"city"`
	PostalCode string `form:"postalCode"`
	Country    string `form:"country"`
	CardName   string `form:"cardName"`
	CardNumber string `form:"cardNumber"`
	ExpiryDate string `form:"expiryDate"`
	CVC        string `form:"cvc"`
}

func (r CheckoutRequest) values() map[string]string {
	return map[string]string{
		forms.FullName:   r.FullName,
		forms.Address:    r.Address,
		forms.City:       r.City,
		forms.PostalCode: r.PostalCode,
		forms.Country:    r.Country,
		forms.CardName:   r.CardName,
		forms.CardNumber: r.CardNumber,
		forms.ExpiryDate: r.ExpiryDate,
		forms.CVC:        r.CVC,
	}
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

// Handle serves the page, blur validation and order placement.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, CheckoutRequest](s.errorHandler),
	))
	r.Post("/", handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, CheckoutRequest](binder.Form()),
		handler.WithErrorHandler[handler.Context, CheckoutRequest](s.errorHandler),
	))
	r.Post("/validate/{field}", handler.Wrap(s.validateField,
		handler.WithBinders[handler.Context, CheckoutRequest](
			binder.Path(chi.URLParam),
			binder.Form(),
		),
		handler.WithErrorHandler[handler.Context, CheckoutRequest](s.errorHandler),
	))

	return r
}

func (s *Service) pageParams(ctx handler.Context, form CheckoutFormParams) (CheckoutPageParams, error) {
	meta, err := modules.NewMeta(ctx, s.sessions, "Checkout")
	if err != nil {
		return CheckoutPageParams{}, err
	}

	sess, err := shopper.Current(ctx)
	if err != nil {
		return CheckoutPageParams{}, err
	}

	summary, err := s.catalog.CheckoutSummary(shopper.Bag(sess))
	if err != nil {
		return CheckoutPageParams{}, err
	}

	return CheckoutPageParams{Meta: meta, Form: form, Summary: summary}, nil
}

func (s *Service) page(ctx handler.Context, _ CheckoutRequest) handler.Response {
	params, err := s.pageParams(ctx, CheckoutFormParams{Schema: forms.Checkout})
	if err != nil {
		return handler.Error(err)
	}
	return handler.Templ(s.views.CheckoutPage(params))
}

func (s *Service) validateField(ctx handler.Context, req CheckoutRequest) handler.Response {
	if !forms.Checkout.Has(req.Field) {
		return handler.Error(handler.ErrNotFound)
	}
	return handler.Templ(s.views.FieldError(forms.Checkout.ValidateField(req.Field, req.values()[req.Field])))
}

func (s *Service) submit(ctx handler.Context, req CheckoutRequest) handler.Response {
	values := req.values()
	res := forms.Checkout.Validate(values)

	if _, err := forms.DecodeCheckout(res); err != nil {
		form := CheckoutFormParams{Schema: forms.Checkout, Values: values, Errors: res.Messages()}
		params, err := s.pageParams(ctx, form)
		if err != nil {
			return handler.Error(err)
		}
		return handler.Status(http.StatusUnprocessableEntity, handler.TemplPartial(
			s.views.CheckoutForm(form),
			s.views.CheckoutPage(params),
		))
	}

	sess, err := shopper.Current(ctx)
	if err != nil {
		return handler.Error(err)
	}

	// The order is not stored anywhere; placing it empties the bag.
	shopper.ClearBag(sess)
	shopper.SetFlash(sess, shopper.Toast{
		Variant:     shopper.VariantDefault,
		Title:       "Order Placed!",
		Description: "Thank you for your purchase. A confirmation has been sent to your email.",
	})
	if err := s.sessions.Save(ctx, sess); err != nil {
		return handler.Error(err)
	}

	return handler.Redirect(SuccessRedirect)
}
