package forms

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/atelier/pkg/validator"
)

// Kind is how a field's raw value is coerced.
type Kind int

const (
	KindText Kind = iota
	KindNumber
)

// Value is a coerced input. Number is set for KindNumber fields only and is NaN
// when the input is not a finite number.
type Value struct {
	Raw    string
	Number float64
}

// Field declares one input and its rules.
type Field struct {
	Name  string
	Label string
	Kind  Kind
	// Unit is shown next to numeric inputs, for example "cm".
	Unit string
	// Hint is optional help text rendered with the input.
	Hint  string
	rules func(name string, v Value) []validator.Rule
}

// WithHint returns a copy of the field carrying help text.
func (f Field) WithHint(hint string) Field {
	f.Hint = hint
	return f
}

// FieldResult is the outcome of validating a single field.
type FieldResult struct {
	Field string
	Value Value
	Valid bool
	// Error is the zero value when Valid is true.
	Error validator.ValidationError
}

// Message is the human-readable error, empty when the field is valid.
func (r FieldResult) Message() string {
	return r.Error.Message
}

// Validate coerces raw and applies the field's rules, stopping at the first failure.
func (f Field) Validate(raw string) FieldResult {
	v := f.coerce(raw)
	res := FieldResult{Field: f.Name, Value: v, Valid: true}
	if f.rules == nil {
		return res
	}
	if failed, ok := validator.First(f.rules(f.Name, v)...); ok {
		res.Valid = false
		res.Error = failed
	}
	return res
}

// coerce trims numeric input and parses it as a decimal; empty input coerces to 0.
// "Infinity" and out-of-range values coerce to an infinity and so fail a bound.
func (f Field) coerce(raw string) Value {
	v := Value{Raw: raw}
	if f.Kind != KindNumber {
		return v
	}
	v.Number = parseNumber(strings.TrimSpace(raw))
	return v
}

func parseNumber(s string) float64 {
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	// ParseFloat also reads "inf" and "nan" spellings, which are not numbers here.
	if l := strings.ToLower(s); strings.Contains(l, "inf") || strings.Contains(l, "nan") {
		return math.NaN()
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return n
}

// Number declares a numeric field with inclusive bounds. Messages read
// "Must be at least 20cm" and "Must be at most 60cm"; non-numeric input reads
// "Must be a number".
func Number(name, label string, min, max float64, unit string) Field {
	return Field{
		Name:  name,
		Label: label,
		Kind:  KindNumber,
		Unit:  unit,
		rules: func(name string, v Value) []validator.Rule {
			return []validator.Rule{
				validator.IsNumber(name, v.Number).WithMessage("Must be a number"),
				validator.MinNum(name, v.Number, min).WithMessage(fmt.Sprintf("Must be at least %s%s", formatBound(min), unit)),
				validator.MaxNum(name, v.Number, max).WithMessage(fmt.Sprintf("Must be at most %s%s", formatBound(max), unit)),
			}
		},
	}
}

// Text declares a string field with a minimum length in characters.
func Text(name, label string, minLen int, message string) Field {
	return Field{
		Name:  name,
		Label: label,
		Kind:  KindText,
		rules: func(name string, v Value) []validator.Rule {
			return []validator.Rule{
				validator.MinLenString(name, v.Raw, minLen).WithMessage(message),
			}
		},
	}
}

// Pattern declares a string field that must fully match re.
func Pattern(name, label string, re *regexp.Regexp, message string) Field {
	return Field{
		Name:  name,
		Label: label,
		Kind:  KindText,
		rules: func(name string, v Value) []validator.Rule {
			return []validator.Rule{
				validator.MatchesPattern(name, v.Raw, re, label).WithMessage(message),
			}
		},
	}
}

// Email declares an email address field.
func Email(name, label, message string) Field {
	return Field{
		Name:  name,
		Label: label,
		Kind:  KindText,
		rules: func(name string, v Value) []validator.Rule {
			return []validator.Rule{
				validator.ValidEmail(name, v.Raw).WithMessage(message),
			}
		},
	}
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
