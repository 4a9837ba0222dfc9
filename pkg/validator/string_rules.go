package validator

import "strings"

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: field + " is required",
		},
	}
}

// StringValue validates that a decoded JSON value is a string. Absent (nil)
// values pass so that RequiredString can report them.
func StringValue(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			if value == nil {
				return true
			}
			_, ok := value.(string)
			return ok
		},
		Error: ValidationError{
			Field:   field,
			Message: field + " must be a string",
		},
	}
}
