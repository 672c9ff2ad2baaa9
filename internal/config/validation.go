package config

import (
	"regexp"
	"slices"
	"strings"
)

// dynamicTokenPattern matches unexpanded template actions such as {{.Name}}.
var dynamicTokenPattern = regexp.MustCompile(`\{\{[^}]*\}\}`)

// Validate checks the configuration for correctness.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if strings.TrimSpace(cfg.NgCommand) == "" {
		errs = append(errs, ValidationError{
			Field:   "ng_command",
			Message: "must not be empty",
			Wrapped: ErrInvalidConfig,
		})
	}

	if strings.ContainsAny(cfg.APIPrefix, "'\"` \t\n") {
		errs = append(errs, ValidationError{
			Field:   "api_prefix",
			Message: "must not contain quotes or whitespace",
			Value:   cfg.APIPrefix,
			Wrapped: ErrInvalidConfig,
		})
	}

	if !slices.Contains(SupportedLocales, cfg.Locale) {
		errs = append(errs, ValidationError{
			Field:   "locale",
			Message: "must be one of: " + strings.Join(SupportedLocales, ", "),
			Value:   cfg.Locale,
			Wrapped: ErrUnsupportedLocale,
		})
	}

	for _, f := range []struct{ field, value string }{
		{"api_prefix", cfg.APIPrefix},
		{"ng_command", cfg.NgCommand},
	} {
		if dynamicTokenPattern.MatchString(f.value) {
			errs = append(errs, ValidationError{
				Field:   f.field,
				Message: "contains an unexpanded template token",
				Value:   f.value,
				Wrapped: ErrDynamicToken,
			})
		}
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
