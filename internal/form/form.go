// Package form binds and validates the HTML forms submitted to the
// directory.  Each form remembers which fields were posted so that an edit
// only overwrites what the user actually sent.
package form

import (
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const maxText = 120

// fields wraps the posted values.
type fields url.Values

func (f fields) has(key string) bool {
	_, ok := f[key]
	return ok
}

func (f fields) str(key string) string {
	return strings.TrimSpace(url.Values(f).Get(key))
}

func (f fields) list(key string) []string {
	return f[key]
}

// boolean reads a checkbox.  Edit forms post a hidden "false" in front of
// the checkbox, so the last value wins.
func (f fields) boolean(key string) bool {
	vals := f[key]
	if len(vals) == 0 {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(vals[len(vals)-1])) {
	case "y", "yes", "on", "true", "1":
		return true
	}
	return false
}

// when makes rules conditional on the field being posted.
func when(present bool, rules ...validation.Rule) validation.Rule {
	return validation.When(present, rules...)
}

// Errors converts a validation error into field -> message pairs.  It
// returns nil for anything that is not a validation failure.
func Errors(err error) map[string]string {
	verrs, ok := err.(validation.Errors)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for field, e := range verrs {
		out[field] = e.Error()
	}
	return out
}

// IsInvalid reports whether err came from form validation.
func IsInvalid(err error) bool {
	_, ok := err.(validation.Errors)
	return ok
}
