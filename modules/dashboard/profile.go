package dashboard

import (
	"net/http"

	"github.com/dmitrymomot/atelier/forms"
	"github.com/dmitrymomot/atelier/handler"
	"github.com/dmitrymomot/atelier/shopper"
)

// ProfileRequest is the personal information form. Field is set only for blur validation.
type ProfileRequest struct {
	Field string `path:"field" form:"-"`
	Name  string `form:"name"`
	Email string `form:"email"`
}

func (r ProfileRequest) values() map[string]string {
	return map[string]string{forms.Name: r.Name, forms.Email: r.Email}
}

func withProfileSchema(p ProfileFormParams) ProfileFormParams {
	if p.Schema == nil {
		p.Schema = forms.Profile
	}
	return p
}

// accountForm is the profile form prefilled with the demo account.
func (s *Service) accountForm() ProfileFormParams {
	return ProfileFormParams{
		Schema: forms.Profile,
		Values: map[string]string{
			forms.Name:  s.catalog.Account.Name,
			forms.Email: s.catalog.Account.Email,
		},
	}
}

func (s *Service) validateProfileField(ctx handler.Context, req ProfileRequest) handler.Response {
	if !forms.Profile.Has(req.Field) {
		return handler.Error(handler.ErrNotFound)
	}
	return handler.Templ(s.views.FieldError(forms.Profile.ValidateField(req.Field, req.values()[req.Field])))
}

// updateProfile validates and echoes the personal information. Nothing is stored.
func (s *Service) updateProfile(ctx handler.Context, req ProfileRequest) handler.Response {
	values := req.values()
	res := forms.Profile.Validate(values)
	form := ProfileFormParams{Schema: forms.Profile, Values: values, Errors: res.Messages()}

	if _, err := forms.DecodeProfile(res); err != nil {
		params, err := s.pageParams(ctx, TabProfile, MeasurementFormParams{}, form)
		if err != nil {
			return handler.Error(err)
		}
		return handler.Status(http.StatusUnprocessableEntity, handler.TemplPartial(
			s.views.ProfileForm(form),
			s.views.DashboardPage(params),
		))
	}

	toast := shopper.Toast{
		Variant:     shopper.VariantDefault,
		Title:       "Profile Updated",
		Description: "Your personal information has been saved successfully.",
	}

	params, err := s.pageParams(ctx, TabProfile, MeasurementFormParams{}, form)
	if err != nil {
		return handler.Error(err)
	}
	params.Meta = params.Meta.WithToast(toast)

	return handler.TemplMultiPartial(
		s.views.DashboardPage(params),
		handler.Patch(s.views.ProfileForm(form)),
		handler.Toast(s.views.Toast(toast)),
	)
}
