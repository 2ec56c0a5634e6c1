package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gitfetch/gitfetch/pkg/logging"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return "validation errors:\n  - " + strings.Join(msgs, "\n  - ")
}

// Validate checks the options for errors.
func (o Options) Validate() error {
	var errs ValidationErrors

	u, err := url.Parse(o.Host)
	switch {
	case o.Host == "":
		errs = append(errs, ValidationError{"host", "is required"})
	case err != nil:
		errs = append(errs, ValidationError{"host", err.Error()})
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, ValidationError{"host", fmt.Sprintf("scheme must be http or https, got %q", u.Scheme)})
	case u.Host == "":
		errs = append(errs, ValidationError{"host", "must include a host name"})
	case u.RawQuery != "" || u.Fragment != "":
		errs = append(errs, ValidationError{"host", "must not carry a query or fragment"})
	}

	if o.TemplatesDir == "" {
		errs = append(errs, ValidationError{"templates-dir", "is required"})
	}

	if !logging.ValidLevel(o.LogLevel) {
		errs = append(errs, ValidationError{"log-level", fmt.Sprintf("unknown level %q (valid: debug, info, warn, error)", o.LogLevel)})
	}

	switch strings.ToLower(o.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, ValidationError{"log-format", fmt.Sprintf("unknown format %q (valid: text, json)", o.LogFormat)})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
