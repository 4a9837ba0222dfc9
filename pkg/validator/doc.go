// Package validator provides small declarative validation rules.
//
// A Rule pairs a Check func with the ValidationError to report when the check
// fails. ApplyFirst evaluates rules in order and stops at the first failure,
// which gives callers a fixed precedence between checks:
//
//	err := validator.ApplyFirst(
//	    validator.RequiredString("email", email),
//	    validator.EmailAddress("email", email),
//	)
//	if verr, ok := validator.AsValidationError(err); ok {
//	    // verr.Field, verr.Message
//	}
//
// Rules hold no global state and are safe for concurrent use.
package validator
