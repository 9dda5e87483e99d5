// Package validator provides composable, translation-friendly validation rules.
//
// A Rule pairs a boolean Check with the ValidationError to report when the check
// fails. Rules are plain values: build them, then evaluate with Apply (collect every
// failure) or First (stop at the first failure).
//
// Rule families live in separate files: numeric bounds, string lengths (counted in
// characters), regular expression patterns, formats such as email, and choice lists.
//
// # Usage
//
//	err := validator.Apply(
//		validator.MinLenString("city", city, 2).WithMessage("City is required"),
//		validator.ValidEmail("email", email),
//		validator.MinNum("chest", chest, 60),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		for _, field := range verrs.Fields() {
//			// render verrs.Get(field) next to the input
//		}
//	}
//
// WithMessage replaces the human-readable message but keeps TranslationKey and
// TranslationValues, so localized rendering still works.
//
// ValidationErrors implements error and keeps insertion order, which is the order
// fields appear in a form.
package validator
