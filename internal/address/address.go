// Package address cleans up submitted email addresses and splits off their domain.
package address

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Sanitize removes backslash escaping added by the submitting form and surrounding whitespace.
func Sanitize(raw string) string {
	return strings.TrimSpace(unslash(raw))
}

// Valid reports whether addr is a syntactically valid email address.
func Valid(addr string) bool {
	return validate.Var(addr, "required,email") == nil
}

// Domain returns the text after the last '@' of addr, "" without an '@'.
func Domain(addr string) string {
	i := strings.LastIndexByte(addr, '@')
	if i < 0 {
		return ""
	}

	return addr[i+1:]
}

// unslash drops every escaping backslash, an escaped backslash is kept once.
func unslash(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder

	b.Grow(len(s))

	escaped := false

	for _, r := range s {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}

		escaped = false

		b.WriteRune(r)
	}

	return b.String()
}
