package views

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/atelier/catalog"
	"github.com/dmitrymomot/atelier/handler"
	"github.com/dmitrymomot/atelier/modules"
	"github.com/dmitrymomot/atelier/modules/checkout"
	"github.com/dmitrymomot/atelier/modules/dashboard"
	"github.com/dmitrymomot/atelier/modules/pages"
	"github.com/dmitrymomot/atelier/modules/studio"
	"github.com/dmitrymomot/atelier/pkg/forms"
	"github.com/dmitrymomot/atelier/shopper"
)

func HomePage(p pages.HomePageParams) templ.Component             { return page("home", p) }
func CollectionPage(p pages.CollectionPageParams) templ.Component { return page("collection", p) }
func NotFoundPage(p pages.NotFoundPageParams) templ.Component     { return page("notfound", p) }

func StudioPage(p studio.StudioPageParams) templ.Component { return page("studio", p) }
func Visualizer(p catalog.Preview) templ.Component         { return partial("visualizer", p) }
func BagCount(count int) templ.Component                   { return partial("bag-count", count) }

func CheckoutPage(p checkout.CheckoutPageParams) templ.Component { return page("checkout", p) }
func CheckoutForm(p checkout.CheckoutFormParams) templ.Component { return partial("checkout-form", p) }

func DashboardPage(p dashboard.DashboardPageParams) templ.Component { return page("dashboard", p) }
func ProfileList(p dashboard.ProfileListParams) templ.Component     { return partial("profile-list", p) }
func MeasurementForm(p dashboard.MeasurementFormParams) templ.Component {
	return partial("measurement-form", p)
}
func ProfileForm(p dashboard.ProfileFormParams) templ.Component { return partial("profile-form", p) }

// FieldError is the error slot under an input, empty when the field is valid.
func FieldError(r forms.FieldResult) templ.Component {
	return partial("field-error", struct{ Name, Message string }{r.Field, r.Message()})
}

func Toast(t shopper.Toast) templ.Component { return partial("toast", t) }

type errorPageData struct {
	Meta modules.Meta
	handler.ErrorPageParams
	StatusText string
	Message    string
}

// humanize turns error keys such as "not_found" into sentences.
func humanize(key string) string {
	if key == "" || strings.ContainsRune(key, ' ') {
		return key
	}
	s := strings.ReplaceAll(key, "_", " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

// ErrorPage renders the full error page used by handler.NewErrorHandler.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return page("error", errorPageData{
		Meta:            modules.Meta{Title: http.StatusText(p.StatusCode)},
		ErrorPageParams: p,
		Message:         humanize(p.Error),
		StatusText:      http.StatusText(p.StatusCode),
	})
}

// ErrorToast renders handler errors raised by Datastar requests.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	title := "Something went wrong"
	if p.Type == "warning" {
		title = "Request failed"
	}
	return Toast(shopper.Toast{Variant: shopper.VariantDestructive, Title: title, Description: humanize(p.Message)})
}

// ErrorHandlerConfig wires the error page and toast into handler.NewErrorHandler.
func ErrorHandlerConfig() handler.ErrorHandlerConfig {
	return handler.ErrorHandlerConfig{
		ErrorPage:  ErrorPage,
		ErrorToast: ErrorToast,
	}
}

func PagesViews() *pages.Views {
	return &pages.Views{
		HomePage:       HomePage,
		CollectionPage: CollectionPage,
		NotFoundPage:   NotFoundPage,
	}
}

func StudioViews() *studio.Views {
	return &studio.Views{
		StudioPage: StudioPage,
		Visualizer: Visualizer,
		BagCount:   BagCount,
		Toast:      Toast,
	}
}

func CheckoutViews() *checkout.Views {
	return &checkout.Views{
		CheckoutPage: CheckoutPage,
		CheckoutForm: CheckoutForm,
		FieldError:   FieldError,
	}
}

func DashboardViews() *dashboard.Views {
	return &dashboard.Views{
		DashboardPage:   DashboardPage,
		ProfileList:     ProfileList,
		MeasurementForm: MeasurementForm,
		ProfileForm:     ProfileForm,
		FieldError:      FieldError,
		Toast:           Toast,
	}
}
