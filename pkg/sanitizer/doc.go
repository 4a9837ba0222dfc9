// Package sanitizer provides pure string transforms and helpers to chain them.
//
//	clean := sanitizer.Apply(input, sanitizer.Trim, sanitizer.NormalizeNewlines)
//	toHTML := sanitizer.Compose(sanitizer.EscapeHTML, sanitizer.NewlinesToBreaks)
//
// All functions are stateless and safe for concurrent use.
package sanitizer
