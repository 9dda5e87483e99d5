// Package handler provides type-safe HTTP request handling for the storefront.
//
// Handlers are generic functions that receive a bound request struct and return a
// Response. The same handler serves full page loads and Datastar partial updates:
// template responses render plain HTML for regular requests and SSE element patches
// for Datastar requests (identified by Accept: text/event-stream).
//
//	type ProfileRequest struct {
//		Name  string `form:"name"`
//		Email string `form:"email"`
//	}
//
//	func updateProfile(ctx handler.Context, req ProfileRequest) handler.Response {
//		return handler.TemplMulti(
//			handler.Patch(views.ProfileForm(params), handler.WithTarget("#profile-form")),
//			handler.Toast(views.Toast(toast)),
//		)
//	}
//
//	r.Post("/profile", handler.Wrap(updateProfile,
//		handler.WithBinders[handler.Context, ProfileRequest](binder.Form()),
//		handler.WithErrorHandler[handler.Context, ProfileRequest](errorHandler),
//	))
//
// # Responses
//
//	handler.Templ(component)              // single component
//	handler.TemplPartial(partial, full)   // partial for Datastar, full page otherwise
//	handler.TemplMulti(patches...)        // several targets in one response
//	handler.Toast(component)              // patch prepended to the toast container
//	handler.Status(422, resp)             // status code for regular requests
//	handler.Redirect("/userdashboardpage") // 303 or Datastar client-side redirect
//
// # Errors
//
// Bind and render failures go to the configured ErrorHandler. NewErrorHandler renders
// a full error page for regular requests and an error toast for Datastar requests.
// HTTPError carries a status code and a translation key; ValidationError carries
// field-scoped messages.
package handler
