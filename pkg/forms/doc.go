// Package forms evaluates declarative form schemas built from validator rules.
//
// A Schema is an ordered list of Fields. Each Field coerces a raw input string
// (numbers are parsed, text is kept verbatim) and reports the first failing rule.
// Validation never panics and never returns an error for bad input: every call
// yields a pass/fail result per field plus an aggregate.
//
//	schema := forms.NewSchema("measurements",
//		forms.Number("neck", "Neck", 20, 60, "cm"),
//		forms.Text("city", "City", 2, "City is required"),
//	)
//
//	res := schema.ValidateField("neck", "18")  // on blur
//	// res.Valid == false, res.Message() == "Must be at least 20cm"
//
//	all := schema.Validate(map[string]string{"neck": "40", "city": "Paris"})
//	if !all.Valid {
//		return all.Err() // validator.ValidationErrors, one entry per failing field
//	}
package forms
