package forms

import (
	"fmt"

	"github.com/dmitrymomot/atelier/pkg/validator"
)

// Schema is an ordered set of fields validated together.
type Schema struct {
	name   string
	fields []Field
	index  map[string]int
}

// NewSchema builds a schema. Field names must be unique.
func NewSchema(name string, fields ...Field) *Schema {
	s := &Schema{name: name, fields: fields, index: make(map[string]int, len(fields))}
	for i, f := range fields {
		if _, dup := s.index[f.Name]; dup {
			panic(fmt.Sprintf("forms: duplicate field %q in schema %q", f.Name, name))
		}
		s.index[f.Name] = i
	}
	return s
}

// Name identifies the schema, for example in logs.
func (s *Schema) Name() string {
	return s.name
}

// Fields returns the fields in declaration order.
func (s *Schema) Fields() []Field {
	return s.fields
}

// Field looks a field up by name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Has reports whether the schema declares the field.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// ValidateField validates a single field, as on loss of focus.
// An unknown field fails with "Unknown field".
func (s *Schema) ValidateField(name, raw string) FieldResult {
	f, ok := s.Field(name)
	if !ok {
		return FieldResult{
			Field: name,
			Value: Value{Raw: raw},
			Error: validator.ValidationError{
				Field:             name,
				Message:           "Unknown field",
				TranslationKey:    "validation.unknown_field",
				TranslationValues: map[string]any{"field": name},
			},
		}
	}
	return f.Validate(raw)
}

// Validate validates every field. Missing values count as empty input; keys the
// schema does not declare are ignored.
func (s *Schema) Validate(values map[string]string) Result {
	res := Result{
		Fields: make([]FieldResult, 0, len(s.fields)),
		Values: make(map[string]Value, len(s.fields)),
		Valid:  true,
	}
	for _, f := range s.fields {
		fr := f.Validate(values[f.Name])
		res.Fields = append(res.Fields, fr)
		res.Values[f.Name] = fr.Value
		if !fr.Valid {
			res.Valid = false
			res.Errors.Add(fr.Error)
		}
	}
	return res
}

// Result aggregates a full-form validation.
type Result struct {
	// Fields holds one result per schema field, in schema order.
	Fields []FieldResult
	Values map[string]Value
	Errors validator.ValidationErrors
	Valid  bool
}

// Err returns the validation errors, or nil when the form is valid.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return r.Errors
}

// Message returns the error for a field, empty when it passed or is unknown.
func (r Result) Message(field string) string {
	for _, fr := range r.Fields {
		if fr.Field == field {
			return fr.Message()
		}
	}
	return ""
}

// Messages maps every failing field to its message.
func (r Result) Messages() map[string]string {
	m := make(map[string]string, len(r.Errors))
	for _, e := range r.Errors {
		m[e.Field] = e.Message
	}
	return m
}

// Raw returns the submitted value of a field.
func (r Result) Raw(field string) string {
	return r.Values[field].Raw
}

// Number returns the coerced number of a numeric field.
func (r Result) Number(field string) float64 {
	return r.Values[field].Number
}
