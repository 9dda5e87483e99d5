package binder

import (
	"net/http"
)

// Query creates a query parameter binder function.
//
// It supports struct tags for custom parameter names:
//   - `query:"name"` - binds to query parameter "name"
//   - `query:"-"` - skips the field
//   - `query:"name,omitempty"` - same as query:"name" for parsing
//
// Untagged fields bind to the lowercased field name.
//
// Example:
//
//	type DashboardRequest struct {
//		Tab string `query:"tab"` // ?tab=measurements
//	}
//
//	r.Get("/userdashboardpage", handler.Wrap(showDashboard,
//		handler.WithBinder[handler.Context, DashboardRequest](binder.Query()),
//	))
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
