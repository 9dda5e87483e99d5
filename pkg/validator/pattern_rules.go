package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// MatchesPattern validates against a precompiled pattern. Empty values never match.
func MatchesPattern(field, value string, regex *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return regex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     regex.String(),
				"description": description,
			},
		},
	}
}

func NoControlChars(field, value string) Rule {
	return Rule{
		Check: func() bool {
			for _, r := range value {
				if unicode.IsControl(r) && r != '\t' && r != '\n' && r != '\r' {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not contain control characters",
			TranslationKey: "validation.no_control_chars",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
