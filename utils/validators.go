package utils

import (
	"net/url"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

// IsAbsoluteURL reports whether raw parses as a well-formed absolute URL
// with a host component.
func IsAbsoluteURL(raw string) bool {
	if err := Validate.Var(raw, "url"); err != nil {
		return false
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.IsAbs() && parsed.Host != ""
}
