package dashboard

import (
	"net/http"
	"strconv"

	"github.com/dmitrymomot/atelier/catalog"
	"github.com/dmitrymomot/atelier/forms"
	"github.com/dmitrymomot/atelier/handler"
	"github.com/dmitrymomot/atelier/shopper"
)

// MeasurementsRequest is the measurement form. Field is set only for blur validation.
type MeasurementsRequest struct {
	Field       string `path:"field" form:"-"`
	ProfileName string `form:"profileName"`
	Neck        string `form:"neck"`
	Chest       string `form:"chest"`
	Waist       string `form:"waist"`
	Hips        string `form:"hips"`
	Sleeve      string `form:"sleeve"`
	Inseam      string `form:"inseam"`
	Shoulder    string `form:"shoulder"`
	Thigh       string `form:"thigh"`
}

func (r MeasurementsRequest) values() map[string]string {
	return map[string]string{
		forms.Neck:     r.Neck,
		forms.Chest:    r.Chest,
		forms.Waist:    r.Waist,
		forms.Hips:     r.Hips,
		forms.Sleeve:   r.Sleeve,
		forms.Inseam:   r.Inseam,
		forms.Shoulder: r.Shoulder,
		forms.Thigh:    r.Thigh,
	}
}

func measurementValues(m catalog.Measurements) map[string]string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return map[string]string{
		forms.Neck:     f(m.Neck),
		forms.Chest:    f(m.Chest),
		forms.Waist:    f(m.Waist),
		forms.Hips:     f(m.Hips),
		forms.Sleeve:   f(m.Sleeve),
		forms.Inseam:   f(m.Inseam),
		forms.Shoulder: f(m.Shoulder),
		forms.Thigh:    f(m.Thigh),
	}
}

func withMeasurementSchema(p MeasurementFormParams) MeasurementFormParams {
	if p.Schema == nil {
		p.Schema = forms.Measurements
	}
	return p
}

func (s *Service) validateMeasurement(ctx handler.Context, req MeasurementsRequest) handler.Response {
	if !forms.Measurements.Has(req.Field) {
		return handler.Error(handler.ErrNotFound)
	}
	return handler.Templ(s.views.FieldError(forms.Measurements.ValidateField(req.Field, req.values()[req.Field])))
}

// saveMeasurements validates the measurements first and the profile name
// second, so a missing name is only reported for otherwise valid input.
func (s *Service) saveMeasurements(ctx handler.Context, req MeasurementsRequest) handler.Response {
	values := req.values()
	res := forms.Measurements.Validate(values)

	form := MeasurementFormParams{
		Schema:      forms.Measurements,
		ProfileName: req.ProfileName,
		Values:      values,
		Errors:      res.Messages(),
	}

	m, err := forms.DecodeMeasurements(res)
	if err != nil {
		return s.measurementsFailed(ctx, form, shopper.Toast{
			Variant:     shopper.VariantDestructive,
			Title:       "Incomplete Measurements",
			Description: "Please fill in all fields correctly before saving.",
		})
	}

	if rule := forms.ProfileName(req.ProfileName); !rule.Check() {
		form.Errors = map[string]string{rule.Error.Field: rule.Error.Message}
		return s.measurementsFailed(ctx, form, shopper.Toast{
			Variant:     shopper.VariantDestructive,
			Title:       "Profile Name Required",
			Description: rule.Error.Message,
		})
	}

	sess, err := shopper.Current(ctx)
	if err != nil {
		return handler.Error(err)
	}
	saved, err := shopper.SaveProfile(sess, req.ProfileName, m)
	if err != nil {
		return handler.Error(err)
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return handler.Error(err)
	}

	toast := shopper.Toast{
		Variant:     shopper.VariantDefault,
		Title:       "Profile Saved!",
		Description: `Measurement profile "` + saved.Name + `" has been successfully saved.`,
	}

	cleared := MeasurementFormParams{Schema: forms.Measurements}
	params, err := s.pageParams(ctx, TabMeasurements, cleared, s.accountForm())
	if err != nil {
		return handler.Error(err)
	}
	params.Meta = params.Meta.WithToast(toast)

	return handler.TemplMultiPartial(
		s.views.DashboardPage(params),
		handler.Patch(s.views.ProfileList(params.Profiles)),
		handler.Patch(s.views.MeasurementForm(cleared)),
		handler.Toast(s.views.Toast(toast)),
	)
}

func (s *Service) measurementsFailed(ctx handler.Context, form MeasurementFormParams, toast shopper.Toast) handler.Response {
	params, err := s.pageParams(ctx, TabMeasurements, form, s.accountForm())
	if err != nil {
		return handler.Error(err)
	}
	params.Meta = params.Meta.WithToast(toast)

	return handler.Status(http.StatusUnprocessableEntity, handler.TemplMultiPartial(
		s.views.DashboardPage(params),
		handler.Patch(s.views.MeasurementForm(form)),
		handler.Toast(s.views.Toast(toast)),
	))
}
