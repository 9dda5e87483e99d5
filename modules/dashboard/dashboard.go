// Package dashboard serves the user dashboard: order history, measurement
// profiles and personal information.
package dashboard

import (
	"errors"
	"net/http"
	"slices"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/atelier/catalog"
	"github.com/dmitrymomot/atelier/handler"
	"github.com/dmitrymomot/atelier/modules"
	"github.com/dmitrymomot/atelier/pkg/binder"
	pkgforms "github.com/dmitrymomot/atelier/pkg/forms"
	"github.com/dmitrymomot/atelier/shopper"
)

// Dashboard tabs.
const (
	TabOrders       = "orders"
	TabMeasurements = "measurements"
	TabProfile      = "profile"
)

var tabs = []string{TabOrders, TabMeasurements, TabProfile}

type Service struct {
	catalog      *catalog.Catalog
	sessions     modules.SessionSaver
	views        *Views
	errorHandler handler.ErrorHandler[handler.Context]
}

type Views struct {
	DashboardPage   func(DashboardPageParams) templ.Component
	ProfileList     func(ProfileListParams) templ.Component
	MeasurementForm func(MeasurementFormParams) templ.Component
	ProfileForm     func(ProfileFormParams) templ.Component
	FieldError      func(pkgforms.FieldResult) templ.Component
	Toast           func(shopper.Toast) templ.Component
}

type DashboardPageParams struct {
	Meta         modules.Meta
	Tab          string
	Orders       []catalog.Order
	Profiles     ProfileListParams
	Measurements MeasurementFormParams
	Profile      ProfileFormParams
}

type ProfileListParams struct {
	Profiles []catalog.MeasurementProfile
}

type MeasurementFormParams struct {
	Schema      *pkgforms.Schema
	ProfileName string
	Values      map[string]string
	Errors      map[string]string
}

type ProfileFormParams struct {
	Schema *pkgforms.Schema
	Values map[string]string
	Errors map[string]string
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

// PageRequest selects the dashboard tab and, optionally, a profile to load
// into the measurement form.
type PageRequest struct {
	Tab     string `query:"tab"`
	Profile string `query:"profile"`
}

// Handle serves the dashboard page and its measurement and profile actions.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithBinders[handler.Context, PageRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, PageRequest](s.errorHandler),
	))

	r.Route("/measurements", func(r chi.Router) {
		r.Post("/", handler.Wrap(s.saveMeasurements,
			handler.WithBinders[handler.Context, MeasurementsRequest](binder.Form()),
			handler.WithErrorHandler[handler.Context, MeasurementsRequest](s.errorHandler),
		))
		r.Post("/validate/{field}", handler.Wrap(s.validateMeasurement,
			handler.WithBinders[handler.Context, MeasurementsRequest](binder.Path(chi.URLParam), binder.Form()),
			handler.WithErrorHandler[handler.Context, MeasurementsRequest](s.errorHandler),
		))
		deleteProfile := handler.Wrap(s.deleteProfile,
			handler.WithBinders[handler.Context, DeleteProfileRequest](binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, DeleteProfileRequest](s.errorHandler),
		)
		r.Delete("/{id}", deleteProfile)
		// HTML forms cannot send DELETE.
		r.Post("/{id}/delete", deleteProfile)
	})

	r.Route("/profile", func(r chi.Router) {
		r.Post("/", handler.Wrap(s.updateProfile,
			handler.WithBinders[handler.Context, ProfileRequest](binder.Form()),
			handler.WithErrorHandler[handler.Context, ProfileRequest](s.errorHandler),
		))
		r.Post("/validate/{field}", handler.Wrap(s.validateProfileField,
			handler.WithBinders[handler.Context, ProfileRequest](binder.Path(chi.URLParam), binder.Form()),
			handler.WithErrorHandler[handler.Context, ProfileRequest](s.errorHandler),
		))
	})

	return r
}

func (s *Service) page(ctx handler.Context, req PageRequest) handler.Response {
	tab := req.Tab
	if !slices.Contains(tabs, tab) {
		tab = TabOrders
	}

	measurements := MeasurementFormParams{}
	if p, ok := s.findProfile(ctx, req.Profile); ok {
		measurements.Values = measurementValues(p.Measurements)
		tab = TabMeasurements
	}

	params, err := s.pageParams(ctx, tab, measurements, s.accountForm())
	if err != nil {
		return handler.Error(err)
	}
	return handler.Templ(s.views.DashboardPage(params))
}

// pageParams assembles the whole dashboard. Form params without a schema get
// the matching one.
func (s *Service) pageParams(ctx handler.Context, tab string, m MeasurementFormParams, p ProfileFormParams) (DashboardPageParams, error) {
	meta, err := modules.NewMeta(ctx, s.sessions, "My Dashboard")
	if err != nil {
		return DashboardPageParams{}, err
	}

	profiles, err := s.profileList(ctx)
	if err != nil {
		return DashboardPageParams{}, err
	}

	return DashboardPageParams{
		Meta:         meta,
		Tab:          tab,
		Orders:       s.catalog.Orders,
		Profiles:     profiles,
		Measurements: withMeasurementSchema(m),
		Profile:      withProfileSchema(p),
	}, nil
}

func (s *Service) profileList(ctx handler.Context) (ProfileListParams, error) {
	sess, err := shopper.Current(ctx)
	if err != nil {
		return ProfileListParams{}, err
	}
	return ProfileListParams{Profiles: shopper.Profiles(sess, s.catalog)}, nil
}

func (s *Service) findProfile(ctx handler.Context, id string) (catalog.MeasurementProfile, bool) {
	if id == "" {
		return catalog.MeasurementProfile{}, false
	}
	list, err := s.profileList(ctx)
	if err != nil {
		return catalog.MeasurementProfile{}, false
	}
	i := slices.IndexFunc(list.Profiles, func(p catalog.MeasurementProfile) bool { return p.ID == id })
	if i < 0 {
		return catalog.MeasurementProfile{}, false
	}
	return list.Profiles[i], true
}

// DeleteProfileRequest names a saved measurement profile.
type DeleteProfileRequest struct {
	ID string `path:"id"`
}

func (s *Service) deleteProfile(ctx handler.Context, req DeleteProfileRequest) handler.Response {
	sess, err := shopper.Current(ctx)
	if err != nil {
		return handler.Error(err)
	}

	if err := shopper.DeleteProfile(sess, s.catalog, req.ID); err != nil {
		if errors.Is(err, shopper.ErrProfileNotFound) || errors.Is(err, shopper.ErrSeededProfile) {
			return handler.Error(errors.Join(handler.ErrNotFound, err))
		}
		return handler.Error(err)
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return handler.Error(err)
	}

	list := ProfileListParams{Profiles: shopper.Profiles(sess, s.catalog)}
	if handler.IsDataStar(ctx.Request()) {
		return handler.Templ(s.views.ProfileList(list))
	}
	return handler.RedirectBack("/userdashboardpage?tab=" + TabMeasurements)
}
