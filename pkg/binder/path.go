package binder

import (
	"fmt"
	"net/http"
)

// Path creates a path parameter binder function using the provided extractor.
// The extractor function is called for each struct field to get its path parameter value.
//
// It supports struct tags for custom parameter names:
//   - `path:"name"` - binds to path parameter "name"
//   - `path:"-"` - skips the field
//
// Example with chi router:
//
//	type DeleteProfileRequest struct {
//		ID string `path:"id"`
//	}
//
//	r.Delete("/measurements/{id}", handler.Wrap(deleteProfile,
//		handler.WithBinder[handler.Context, DeleteProfileRequest](binder.Path(chi.URLParam)),
//	))
func Path(extractor func(r *http.Request, fieldName string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}

		rv, err := structTarget(v, ErrInvalidPath)
		if err != nil {
			return err
		}

		for _, bf := range boundFields(rv, "path") {
			// Only explicitly tagged fields come from the path
			if !bf.tagged {
				continue
			}
			value := extractor(r, bf.param)
			if value == "" {
				continue
			}
			if err := setFieldValue(bf.value, bf.field.Type, []string{value}); err != nil {
				return fmt.Errorf("%w: field %s: %v", ErrInvalidPath, bf.field.Name, err)
			}
		}

		return nil
	}
}
