// Package binder binds HTTP request data to request structs.
//
// Three binders are provided, each reading its own struct tag:
//
//   - Form(): urlencoded and multipart bodies, `form:"name"`
//   - Query(): URL query parameters, `query:"name"`
//   - Path(extractor): router path parameters, `path:"name"`
//
// Binders share one reflection core supporting strings, integers, floats, bools,
// pointers for optional fields and slices for repeated values.
//
//	type SaveProfileRequest struct {
//		Name   string `form:"profileName"`
//		Chest  string `form:"chest"`
//		Waist  string `form:"waist"`
//		Inseam string `form:"inseam"`
//	}
//
// Measurement values are bound as raw strings so the form schema can coerce and
// report them itself.
//
// # Errors
//
// Every failure wraps one of the package errors (ErrInvalidForm, ErrInvalidQuery,
// ErrInvalidPath, ErrUnsupportedMediaType, ErrMissingContentType), so callers can
// match with errors.Is. ErrBinderNotApplicable is not a failure: it tells handler.Wrap
// that the request has nothing for this binder.
package binder
